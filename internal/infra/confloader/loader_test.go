package confloader

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

type testConfig struct {
	Workload struct {
		Threads   int     `koanf:"threads"`
		ReadRatio float64 `koanf:"read_ratio"`
		Seed      uint64  `koanf:"seed"`
	} `koanf:"workload"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}
	if l.strict {
		t.Error("strict should default to false")
	}
}

func TestNewLoader_WithOptions(t *testing.T) {
	l := NewLoader(
		WithEnvPrefix("TEST_"),
		WithConfigFile("/path/to/config.yaml"),
		WithStrict(true),
	)

	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.filePath != "/path/to/config.yaml" {
		t.Errorf("filePath = %q, want %q", l.filePath, "/path/to/config.yaml")
	}
	if !l.strict {
		t.Error("strict should be true")
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
workload:
  threads: 4
  read_ratio: 0.5
log:
  level: debug
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}

	if n := l.GetInt("workload.threads"); n != 4 {
		t.Errorf("workload.threads = %d, want 4", n)
	}
	if lvl := l.GetString("log.level"); lvl != "debug" {
		t.Errorf("log.level = %q, want %q", lvl, "debug")
	}
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
}

func TestLoader_LoadFile_Empty(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	t.Setenv("MAPBENCH_WORKLOAD__READ_RATIO", "0.25")
	t.Setenv("MAPBENCH_LOG__LEVEL", "warn")

	l := NewLoader()
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if v := l.GetString("workload.read_ratio"); v != "0.25" {
		t.Errorf("workload.read_ratio = %q, want %q", v, "0.25")
	}
	if v := l.GetString("log.level"); v != "warn" {
		t.Errorf("log.level = %q, want %q", v, "warn")
	}
}

func TestLoader_LoadEnv_CustomPrefix(t *testing.T) {
	t.Setenv("MYAPP_SERVER__PORT", "9090")

	l := NewLoader(WithEnvPrefix("MYAPP_"))
	if err := l.LoadEnv(); err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}

	if port := l.GetString("server.port"); port != "9090" {
		t.Errorf("server.port = %q, want %q", port, "9090")
	}
}

func TestLoader_LoadMap_DottedKeys(t *testing.T) {
	l := NewLoader()

	if err := l.LoadMap(map[string]any{
		"workload.threads": 12,
		"log.level":        "error",
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	var cfg testConfig
	if err := l.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if cfg.Workload.Threads != 12 {
		t.Errorf("Threads = %d, want 12", cfg.Workload.Threads)
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Level = %q, want %q", cfg.Log.Level, "error")
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
workload:
  threads: 2
  seed: 7
log:
  level: debug
`)
	t.Setenv("MAPBENCH_WORKLOAD__THREADS", "3")
	t.Setenv("MAPBENCH_LOG__LEVEL", "warn")

	l := NewLoader(
		WithConfigFile(path),
		WithOverrides(map[string]any{"workload.threads": 5}),
	)

	var cfg testConfig
	cfg.Workload.ReadRatio = 0.9
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Workload.Threads != 5 {
		t.Errorf("Threads = %d, want 5 (overrides win)", cfg.Workload.Threads)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Level = %q, want %q (env beats file)", cfg.Log.Level, "warn")
	}
	if cfg.Workload.Seed != 7 {
		t.Errorf("Seed = %d, want 7 (from file)", cfg.Workload.Seed)
	}
	if cfg.Workload.ReadRatio != 0.9 {
		t.Errorf("ReadRatio = %v, want preset 0.9", cfg.Workload.ReadRatio)
	}
}

func TestLoader_Load_Strict(t *testing.T) {
	path := writeConfig(t, `
workload:
  threads: 2
  thread: 3
extra: true
`)

	l := NewLoader(WithConfigFile(path), WithStrict(true))

	var cfg testConfig
	err := l.Load(&cfg)
	if !errors.Is(err, ErrUnknownKeys) {
		t.Fatalf("Load() error = %v, want ErrUnknownKeys", err)
	}
	if l.IsLoaded() {
		t.Error("IsLoaded() should be false after a failed Load()")
	}
}

func TestLoader_Load_StrictAcceptsKnownKeys(t *testing.T) {
	path := writeConfig(t, "workload:\n  threads: 2\n")
	t.Setenv("MAPBENCH_WORKLOAD__SEED", "99")

	l := NewLoader(WithConfigFile(path), WithStrict(true))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Workload.Threads != 2 || cfg.Workload.Seed != 99 {
		t.Errorf("cfg = %+v", cfg.Workload)
	}
}

func TestLoader_Load_StrictBadValue(t *testing.T) {
	t.Setenv("MAPBENCH_WORKLOAD__THREADS", "many")

	l := NewLoader(WithStrict(true))

	var cfg testConfig
	err := l.Load(&cfg)
	if err == nil {
		t.Fatal("Load() should fail on a non-numeric thread count")
	}
	if errors.Is(err, ErrUnknownKeys) {
		t.Error("a bad value is not an unknown key")
	}
}

func TestLoader_Load_StrictLossyNumber(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
	}{
		{"fraction into int", map[string]any{"workload.threads": 2.5}},
		{"bool into int", map[string]any{"workload.threads": true}},
		{"bool into float", map[string]any{"workload.read_ratio": true}},
		{"negative int into uint", map[string]any{"workload.seed": -1}},
		{"negative float into uint", map[string]any{"workload.seed": -3.0}},
		{"fraction into uint", map[string]any{"workload.seed": 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLoader(WithOverrides(tt.values), WithStrict(true))

			var cfg testConfig
			err := l.Load(&cfg)
			if !errors.Is(err, ErrLossyNumber) {
				t.Fatalf("Load() error = %v, want ErrLossyNumber", err)
			}
		})
	}
}

func TestLoader_Load_StrictExactNumbers(t *testing.T) {
	l := NewLoader(WithOverrides(map[string]any{
		"workload.threads":    8.0,
		"workload.read_ratio": 1,
		"workload.seed":       int64(42),
	}), WithStrict(true))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Workload.Threads != 8 || cfg.Workload.ReadRatio != 1 || cfg.Workload.Seed != 42 {
		t.Errorf("cfg = %+v", cfg.Workload)
	}
}

func TestLoader_UnknownKeys(t *testing.T) {
	l := NewLoader()
	l.LoadMap(map[string]any{
		"workload.threads": 1,
		"workload.bogus":   1,
		"alpha":            "x",
	})

	got := l.UnknownKeys(&testConfig{})
	want := []string{"alpha", "workload.bogus"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnknownKeys() = %v, want %v", got, want)
	}
}

func TestLoader_IsLoaded(t *testing.T) {
	l := NewLoader()

	if l.IsLoaded() {
		t.Error("IsLoaded() should be false before Load()")
	}

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !l.IsLoaded() {
		t.Error("IsLoaded() should be true after Load()")
	}
}

func TestLoader_Keys(t *testing.T) {
	l := NewLoader()
	l.LoadMap(map[string]any{
		"key1": "value1",
		"key2": "value2",
	})

	if keys := l.Keys(); len(keys) < 2 {
		t.Errorf("Keys() returned %d keys, want at least 2", len(keys))
	}
	if all := l.All(); len(all) < 2 {
		t.Errorf("All() returned %d keys, want at least 2", len(all))
	}
	if v := l.Get("key1"); v != "value1" {
		t.Errorf("Get(key1) = %v", v)
	}
}
