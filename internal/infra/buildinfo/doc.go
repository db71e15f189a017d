// Package buildinfo provides build information for mapbench.
//
// This package exposes build-time information injected via ldflags:
//
//   - Version: Semantic version (e.g., "1.0.0")
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//
// GoVersion is read from the running binary.
//
// Usage:
//
//	go build -ldflags "-X github.com/yndnr/mapbench-go/internal/infra/buildinfo.Version=1.0.0"
package buildinfo
