// Package output renders mapbench records.
//
// This package handles all CLI output formatting:
//
//   - formatter.go: Formatter interface and factory
//   - json.go: single-line JSON records (the default, one per run)
//   - yaml.go: YAML documents
//   - table.go: aligned FIELD/VALUE or column tables for humans
//
// Records go to stdout. Diagnostics never pass through this package.
package output
