package domain

import (
	"strconv"
	"time"
)

// Unmeasured is the resident memory value reported when the platform offers
// no way to sample it. It means "not measured", never "zero bytes in use".
const Unmeasured uint64 = 0

// Result is the record of one completed benchmark run.
//
// Results are built once by NewResult after all workers have joined and
// are never modified afterwards; the fields are exported for encoders only.
type Result struct {
	RuntimeLabel        string  `json:"runtime_label" yaml:"runtime_label"`
	ModelLabel          string  `json:"model_label" yaml:"model_label"`
	ThreadCount         int     `json:"thread_count" yaml:"thread_count"`
	EffectiveIterations int     `json:"effective_iterations" yaml:"effective_iterations"`
	Keys                int     `json:"keys" yaml:"keys"`
	ReadRatio           float64 `json:"read_ratio" yaml:"read_ratio"`
	Seed                uint64  `json:"seed" yaml:"seed"`
	DurationMS          int64   `json:"duration_ms" yaml:"duration_ms"`
	ResidentMemoryBytes uint64  `json:"resident_memory_bytes" yaml:"resident_memory_bytes"`
}

// RunInfo echoes the configuration of a run into its result.
type RunInfo struct {
	RuntimeLabel        string
	ModelLabel          string
	ThreadCount         int
	EffectiveIterations int
	Keys                int
	ReadRatio           float64
	Seed                uint64
}

// NewResult builds a result from the run echo, the measured duration and
// the resident memory sample.
func NewResult(info RunInfo, elapsed time.Duration, rss uint64) Result {
	return Result{
		RuntimeLabel:        info.RuntimeLabel,
		ModelLabel:          info.ModelLabel,
		ThreadCount:         info.ThreadCount,
		EffectiveIterations: info.EffectiveIterations,
		Keys:                info.Keys,
		ReadRatio:           info.ReadRatio,
		Seed:                info.Seed,
		DurationMS:          elapsed.Milliseconds(),
		ResidentMemoryBytes: rss,
	}
}

// MemoryMeasured reports whether ResidentMemoryBytes holds a real sample.
func (r Result) MemoryMeasured() bool {
	return r.ResidentMemoryBytes != Unmeasured
}

// OpsPerSecond returns the throughput implied by the result, or 0 when the
// run was too short to measure.
func (r Result) OpsPerSecond() float64 {
	if r.DurationMS <= 0 {
		return 0
	}
	return float64(r.EffectiveIterations) / (float64(r.DurationMS) / 1000)
}

// Fields returns the result as ordered name/value pairs for tabular output.
func (r Result) Fields() [][2]string {
	mem := "unmeasured"
	if r.MemoryMeasured() {
		mem = strconv.FormatUint(r.ResidentMemoryBytes, 10)
	}
	return [][2]string{
		{"runtime_label", r.RuntimeLabel},
		{"model_label", r.ModelLabel},
		{"thread_count", strconv.Itoa(r.ThreadCount)},
		{"effective_iterations", strconv.Itoa(r.EffectiveIterations)},
		{"keys", strconv.Itoa(r.Keys)},
		{"read_ratio", strconv.FormatFloat(r.ReadRatio, 'g', -1, 64)},
		{"seed", strconv.FormatUint(r.Seed, 10)},
		{"duration_ms", strconv.FormatInt(r.DurationMS, 10)},
		{"resident_memory_bytes", mem},
	}
}
