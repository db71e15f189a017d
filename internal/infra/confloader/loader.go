// Package confloader provides configuration loading mechanism.
package confloader

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "MAPBENCH_"

// EnvNestingSeparator separates sections in environment variable names.
const EnvNestingSeparator = "__"

// ErrUnknownKeys is returned by strict unmarshaling when the loaded sources
// carry keys the target struct does not declare.
var ErrUnknownKeys = errors.New("confloader: unknown configuration keys")

// Loader loads configuration from multiple sources.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
	overrides map[string]any
	strict    bool
	loaded    bool
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the configuration file path.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// WithOverrides sets values loaded after every other source.
// Keys are dotted paths such as "workload.threads".
func WithOverrides(values map[string]any) Option {
	return func(l *Loader) {
		l.overrides = values
	}
}

// WithStrict makes Load reject keys the target struct does not declare.
func WithStrict(strict bool) Option {
	return func(l *Loader) {
		l.strict = strict
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load loads configuration from all sources and unmarshals into target.
// Loading order (later sources override earlier):
//  1. Values already set in target
//  2. Configuration file (YAML)
//  3. Environment variables
//  4. Overrides
func (l *Loader) Load(target any) error {
	if l.filePath != "" {
		if err := l.LoadFile(l.filePath); err != nil {
			return fmt.Errorf("load config file: %w", err)
		}
	}

	if err := l.LoadEnv(); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	if len(l.overrides) > 0 {
		if err := l.LoadMap(l.overrides); err != nil {
			return fmt.Errorf("load overrides: %w", err)
		}
	}

	unmarshal := l.Unmarshal
	if l.strict {
		unmarshal = l.UnmarshalStrict
	}
	if err := unmarshal(target); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	l.loaded = true
	return nil
}

// LoadFile loads configuration from a YAML file.
func (l *Loader) LoadFile(path string) error {
	if path == "" {
		return nil
	}

	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load file %s: %w", path, err)
	}

	return nil
}

// LoadEnv loads configuration from environment variables.
// Example: MAPBENCH_WORKLOAD__THREADS=16 sets workload.threads.
func (l *Loader) LoadEnv() error {
	provider := env.Provider(l.envPrefix, ".", l.envKey)
	if err := l.k.Load(provider, nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	return nil
}

// envKey maps MAPBENCH_LOG__LEVEL to log.level. Single underscores are
// kept so multi-word keys like read_ratio survive.
func (l *Loader) envKey(s string) string {
	s = strings.TrimPrefix(s, l.envPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, EnvNestingSeparator, ".")
}

// LoadMap loads configuration from a map (useful for flags or testing).
func (l *Loader) LoadMap(data map[string]any) error {
	if err := l.k.Load(mapProvider(data), nil); err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	return nil
}

// Unmarshal unmarshals the loaded configuration into the target struct.
// Uses koanf tags for struct field mapping.
func (l *Loader) Unmarshal(target any) error {
	return l.k.Unmarshal("", target)
}

// UnmarshalStrict is Unmarshal that fails with ErrUnknownKeys when a loaded
// key has no matching koanf-tagged field in target.
func (l *Loader) UnmarshalStrict(target any) error {
	if unknown := l.UnknownKeys(target); len(unknown) > 0 {
		return fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(unknown, ", "))
	}

	return l.k.UnmarshalWithConf("", target, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				exactNumberHookFunc(),
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
			Result:           target,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			ErrorUnused:      true,
		},
	})
}

// ErrLossyNumber is returned by strict unmarshaling when a value would only
// fit its numeric field by truncation, wrapping or bool coercion.
var ErrLossyNumber = errors.New("confloader: value does not fit numeric field")

// exactNumberHookFunc keeps weak typing to string parsing. Fractional
// floats into integers, negative numbers into unsigned integers and bools
// into any number are rejected instead of being coerced.
func exactNumberHookFunc() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data any) (any, error) {
		if !isNumberKind(to.Kind()) {
			return data, nil
		}

		v := reflect.ValueOf(data)
		switch {
		case from.Kind() == reflect.Bool:
			return nil, fmt.Errorf("%w: bool %v into %s", ErrLossyNumber, data, to.Kind())
		case isFloatKind(from.Kind()) && (isIntKind(to.Kind()) || isUintKind(to.Kind())):
			f := v.Float()
			if f != math.Trunc(f) || math.IsInf(f, 0) {
				return nil, fmt.Errorf("%w: %v is not a whole number", ErrLossyNumber, data)
			}
			if f < 0 && isUintKind(to.Kind()) {
				return nil, fmt.Errorf("%w: %v is negative", ErrLossyNumber, data)
			}
		case isIntKind(from.Kind()) && isUintKind(to.Kind()):
			if v.Int() < 0 {
				return nil, fmt.Errorf("%w: %v is negative", ErrLossyNumber, data)
			}
		}
		return data, nil
	}
}

func isIntKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUintKind(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func isNumberKind(k reflect.Kind) bool {
	return isIntKind(k) || isUintKind(k) || isFloatKind(k)
}

// UnknownKeys returns the sorted loaded keys that target does not declare.
func (l *Loader) UnknownKeys(target any) []string {
	known := make(map[string]struct{})
	collectKeys(reflect.TypeOf(target), "", known)

	var unknown []string
	for _, key := range l.k.Keys() {
		if _, ok := known[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

// collectKeys records the dotted koanf path of every leaf field in t.
func collectKeys(t reflect.Type, prefix string, out map[string]struct{}) {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			continue
		}

		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		ft := field.Type
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			collectKeys(ft, path, out)
			continue
		}
		out[path] = struct{}{}
	}
}

// Get returns a value from the configuration by key.
func (l *Loader) Get(key string) any {
	return l.k.Get(key)
}

// GetString returns a string value from the configuration.
func (l *Loader) GetString(key string) string {
	return l.k.String(key)
}

// GetInt returns an int value from the configuration.
func (l *Loader) GetInt(key string) int {
	return l.k.Int(key)
}

// GetBool returns a bool value from the configuration.
func (l *Loader) GetBool(key string) bool {
	return l.k.Bool(key)
}

// IsLoaded returns true if configuration has been loaded.
func (l *Loader) IsLoaded() bool {
	return l.loaded
}

// All returns all configuration as a map.
func (l *Loader) All() map[string]any {
	return l.k.All()
}

// Keys returns all configuration keys.
func (l *Loader) Keys() []string {
	return l.k.Keys()
}
