// Package logger provides structured logging for mapbench.
//
// This package wraps log/slog:
//
//   - logger.go: Logger interface, level/format parsing, the fallback logger
//   - context.go: Context-aware logging with run IDs
//   - attrs.go: Attribute rewriting shared by all handlers
//
// Features:
//
//   - JSON and text output formats, validated up front
//   - Per-logger level filtering
//   - A discarding logger for benchmarks
//   - Context propagation of the run ID
//
// Logs are written to stderr so that stdout carries only result records.
package logger
