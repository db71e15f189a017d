// Package command provides CLI command definitions for mapbench.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global and workload flags, config resolution
//   - run.go: The benchmark run (also the default action)
//   - trace.go: Per-worker sequence digests
//   - config.go: Resolved configuration inspection
//   - version.go: Build information
//
// Result records are written to the app writer (stdout); logs go to the
// error writer (stderr).
package command
