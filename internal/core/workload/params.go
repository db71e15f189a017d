package workload

import (
	"math"

	"github.com/yndnr/mapbench-go/internal/core/domain"
)

// Params are the inputs of one benchmark run.
type Params struct {
	Threads    int
	Iterations int
	Keys       int
	ReadRatio  float64
	Seed       uint64
	Shards     int
	Model      Model
}

// Default run parameters.
const (
	DefaultThreads    = 8
	DefaultIterations = 2_000_000
	DefaultKeys       = 100_000
	DefaultReadRatio  = 0.9
	DefaultSeed       = 42
	DefaultShards     = 64
)

// DefaultParams returns the default run parameters.
func DefaultParams() Params {
	return Params{
		Threads:    DefaultThreads,
		Iterations: DefaultIterations,
		Keys:       DefaultKeys,
		ReadRatio:  DefaultReadRatio,
		Seed:       DefaultSeed,
		Shards:     DefaultShards,
		Model:      ModelSharded,
	}
}

// Validate checks every parameter's domain and names the first offender.
func (p Params) Validate() error {
	switch {
	case p.Threads < 1:
		return domain.ErrInvalidConfig.WithDetailsf("threads must be at least 1, got %d", p.Threads)
	case p.Iterations < 1:
		return domain.ErrInvalidConfig.WithDetailsf("iterations must be at least 1, got %d", p.Iterations)
	case p.Keys < 1:
		return domain.ErrInvalidConfig.WithDetailsf("keys must be at least 1, got %d", p.Keys)
	case math.IsNaN(p.ReadRatio) || p.ReadRatio < 0 || p.ReadRatio > 1:
		return domain.ErrInvalidConfig.WithDetailsf("read_ratio must be within [0, 1], got %v", p.ReadRatio)
	case p.Shards < 1:
		return domain.ErrInvalidConfig.WithDetailsf("shards must be at least 1, got %d", p.Shards)
	}
	if _, err := ParseModel(string(p.Model)); err != nil {
		return err
	}
	return nil
}

// PerThread returns the number of operations each worker performs.
// The remainder of the division is dropped, not redistributed.
func PerThread(iterations, threads int) int {
	return iterations / threads
}

// EffectiveIterations returns the total number of operations actually
// executed, which may be less than the requested iterations.
func (p Params) EffectiveIterations() int {
	return PerThread(p.Iterations, p.Threads) * p.Threads
}

// ReadThreshold discretizes a read ratio to thousandths.
func ReadThreshold(readRatio float64) uint64 {
	return uint64(math.Floor(readRatio * 1000))
}

// IsRead reports whether the drawn value v selects a read for the given
// threshold.
func IsRead(v, threshold uint64) bool {
	return v%1000 < threshold
}
