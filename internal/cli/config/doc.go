// Package config defines the mapbench run configuration.
//
// This package defines the configuration tree shared by every command:
//
//   - runconfig.go: RunConfig struct and its sections
//   - default.go: Default values
//   - verify.go: Domain checks naming the offending key
//   - loader.go: Layered loading (file, env, flags)
//
// A configuration file is optional YAML mirroring RunConfig:
//
//	workload:
//	  threads: 8
//	  read_ratio: 0.9
//	output:
//	  format: table
package config
