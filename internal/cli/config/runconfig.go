// Package config defines the mapbench run configuration.
package config

import "github.com/yndnr/mapbench-go/internal/core/workload"

// RunConfig is the complete configuration of one mapbench invocation.
type RunConfig struct {
	Workload WorkloadConfig `koanf:"workload" json:"workload" yaml:"workload"`
	Output   OutputConfig   `koanf:"output" json:"output" yaml:"output"`
	Log      LogConfig      `koanf:"log" json:"log" yaml:"log"`
	Runtime  RuntimeConfig  `koanf:"runtime" json:"runtime" yaml:"runtime"`
}

// WorkloadConfig describes the generated load.
type WorkloadConfig struct {
	Threads    int     `koanf:"threads" json:"threads" yaml:"threads"`
	Iterations int     `koanf:"iterations" json:"iterations" yaml:"iterations"`
	Keys       int     `koanf:"keys" json:"keys" yaml:"keys"`
	ReadRatio  float64 `koanf:"read_ratio" json:"read_ratio" yaml:"read_ratio"`
	Seed       uint64  `koanf:"seed" json:"seed" yaml:"seed"`
	Shards     int     `koanf:"shards" json:"shards" yaml:"shards"`
	Model      string  `koanf:"model" json:"model" yaml:"model"` // sharded, syncmap
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	Format      string `koanf:"format" json:"format" yaml:"format"`                   // json, yaml, table
	MetricsFile string `koanf:"metrics_file" json:"metrics_file" yaml:"metrics_file"` // Prometheus textfile, empty disables
}

// LogConfig configures diagnostics on stderr.
type LogConfig struct {
	Level  string `koanf:"level" json:"level" yaml:"level"`
	Format string `koanf:"format" json:"format" yaml:"format"`
}

// RuntimeConfig tunes the Go runtime before the run.
type RuntimeConfig struct {
	GOMAXPROCS int `koanf:"gomaxprocs" json:"gomaxprocs" yaml:"gomaxprocs"` // 0 keeps the runtime default
	GCPercent  int `koanf:"gc_percent" json:"gc_percent" yaml:"gc_percent"` // 0 keeps GOGC, negative disables the collector
}

// Params converts the workload section into driver parameters.
func (c *RunConfig) Params() workload.Params {
	return workload.Params{
		Threads:    c.Workload.Threads,
		Iterations: c.Workload.Iterations,
		Keys:       c.Workload.Keys,
		ReadRatio:  c.Workload.ReadRatio,
		Seed:       c.Workload.Seed,
		Shards:     c.Workload.Shards,
		Model:      workload.Model(c.Workload.Model),
	}
}
