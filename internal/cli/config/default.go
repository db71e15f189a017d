// Package config defines the mapbench run configuration.
package config

import "github.com/yndnr/mapbench-go/internal/core/workload"

// Default returns the default run configuration.
func Default() *RunConfig {
	return &RunConfig{
		Workload: WorkloadConfig{
			Threads:    workload.DefaultThreads,
			Iterations: workload.DefaultIterations,
			Keys:       workload.DefaultKeys,
			ReadRatio:  workload.DefaultReadRatio,
			Seed:       workload.DefaultSeed,
			Shards:     workload.DefaultShards,
			Model:      string(workload.ModelSharded),
		},
		Output: OutputConfig{
			Format: "json",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Runtime: RuntimeConfig{
			GOMAXPROCS: 0,
			GCPercent:  0,
		},
	}
}
