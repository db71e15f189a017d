// Package metric exports benchmark runs as Prometheus metrics.
//
// This package implements metrics collection and exposition:
//
//   - prometheus.go: run registry and textfile export
//   - collector.go: custom collector for per-shard statistics
//
// Metrics include:
//
//   - Operations executed, by kind
//   - Run duration, throughput and iteration counts
//   - Resident memory (only when measured)
//   - Per-shard key counts and counter sums
//   - Go runtime statistics at the end of the run
//
// mapbench is a batch job, so metrics are written to a file in the text
// exposition format (for node_exporter's textfile collector) rather than
// served over HTTP.
package metric
