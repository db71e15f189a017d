// Package config defines the mapbench run configuration.
package config

import (
	"errors"

	"github.com/yndnr/mapbench-go/internal/core/domain"
	"github.com/yndnr/mapbench-go/internal/infra/confloader"
)

// Load builds the run configuration from defaults, the optional YAML file
// at path, MAPBENCH_* environment variables and flag overrides, in that
// order of increasing priority. The result is verified before it is
// returned.
func Load(path string, overrides map[string]any) (*RunConfig, error) {
	cfg := Default()

	loader := confloader.NewLoader(
		confloader.WithConfigFile(path),
		confloader.WithOverrides(overrides),
		confloader.WithStrict(true),
	)

	if err := loader.Load(cfg); err != nil {
		if errors.Is(err, confloader.ErrUnknownKeys) {
			return nil, domain.ErrUnknownConfigKey.WithDetails(err.Error()).WithCause(err)
		}
		return nil, domain.ErrInvalidConfig.WithDetails(err.Error()).WithCause(err)
	}

	if err := Verify(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
