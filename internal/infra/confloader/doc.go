// Package confloader provides configuration loading mechanism.
//
// This package implements a layered configuration loader on top of koanf.
//
// Features:
//
//   - Sources: YAML files, environment variables, override maps
//   - Type Safety: Unmarshaling into koanf-tagged structs
//   - Strict Mode: Unknown keys are reported instead of silently ignored
//
// Priority (highest to lowest):
//
//  1. Override map (command-line flags)
//  2. Environment variables
//  3. Configuration file
//  4. Defaults already present in the target struct
//
// Environment variables are upper-cased and nested with a double
// underscore, so MAPBENCH_WORKLOAD__READ_RATIO maps to workload.read_ratio.
package confloader
