// Package main provides the entry point for mapbench.
//
// mapbench measures the throughput of a sharded, mutex-protected
// key/counter map under a seeded concurrent read/write load and prints
// one result record per run.
//
// Usage:
//
//	mapbench [global flags] [command] [flags]
//	mapbench run -t 8 -n 2000000 -k 100000 -r 0.9
//	mapbench trace -t 4 -n 1000 --seed 42 -o table
//	MAPBENCH_WORKLOAD__THREADS=16 mapbench -o yaml
//
// Records go to stdout, logs to stderr.
package main
