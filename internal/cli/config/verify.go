// Package config defines the mapbench run configuration.
package config

import (
	"github.com/yndnr/mapbench-go/internal/cli/output"
	"github.com/yndnr/mapbench-go/internal/core/domain"
	"github.com/yndnr/mapbench-go/internal/core/workload"
	"github.com/yndnr/mapbench-go/internal/telemetry/logger"
)

// Verify checks the configuration and returns an error naming the first
// offending key.
func Verify(cfg *RunConfig) error {
	if err := cfg.Params().Validate(); err != nil {
		return err
	}

	model, _ := workload.ParseModel(cfg.Workload.Model)
	cfg.Workload.Model = string(model)

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return domain.ErrInvalidConfig.WithDetailsf("output.format: %v", err)
	}
	cfg.Output.Format = string(format)

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return domain.ErrInvalidConfig.WithDetailsf("log.level: %v", err)
	}

	logFormat, err := logger.ParseFormat(cfg.Log.Format)
	if err != nil {
		return domain.ErrInvalidConfig.WithDetailsf("log.format: %v", err)
	}
	cfg.Log.Format = logFormat

	if cfg.Runtime.GOMAXPROCS < 0 {
		return domain.ErrInvalidConfig.WithDetailsf("runtime.gomaxprocs must not be negative, got %d", cfg.Runtime.GOMAXPROCS)
	}

	return nil
}
