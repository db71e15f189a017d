// Package command provides CLI command definitions for mapbench.
//
// It uses urfave/cli/v2 for command parsing. Running mapbench without a
// command is the same as "mapbench run".
package command

import (
	"context"
	"fmt"
	"io"

	"github.com/oklog/ulid/v2"
	"github.com/urfave/cli/v2"

	"github.com/yndnr/mapbench-go/internal/cli/config"
	"github.com/yndnr/mapbench-go/internal/cli/output"
	"github.com/yndnr/mapbench-go/internal/core/domain"
	"github.com/yndnr/mapbench-go/internal/infra/buildinfo"
	"github.com/yndnr/mapbench-go/internal/telemetry/logger"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "mapbench",
		Usage:   "Sharded mutex map microbenchmark",
		Version: buildinfo.String(),
		Flags:   append(globalFlags(), workloadFlags()...),
		Commands: []*cli.Command{
			RunCommand(),
			TraceCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
		Action: func(c *cli.Context) error {
			if c.Args().Present() {
				return fmt.Errorf("unknown command %q", c.Args().First())
			}
			return runAction(c)
		},
	}

	return app
}

// globalFlags returns the flags available to every command.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML configuration file",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-format",
			Usage: "Log format: text, json",
		},
	}
}

// workloadFlags returns the flags shared by commands that resolve a
// workload. Defaults live in config.Default so that only flags given on
// the command line override the file and environment.
func workloadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "threads",
			Aliases: []string{"t"},
			Usage:   "Worker goroutines",
		},
		&cli.IntFlag{
			Name:    "iterations",
			Aliases: []string{"n"},
			Usage:   "Total operations, truncated to a multiple of threads",
		},
		&cli.IntFlag{
			Name:    "keys",
			Aliases: []string{"k"},
			Usage:   "Distinct keys",
		},
		&cli.Float64Flag{
			Name:    "read-ratio",
			Aliases: []string{"r"},
			Usage:   "Fraction of reads in [0, 1], discretized to thousandths",
		},
		&cli.Uint64Flag{
			Name:  "seed",
			Usage: "Base seed; worker t uses seed+t",
		},
		&cli.IntFlag{
			Name:  "shards",
			Usage: "Shard count for the sharded model",
		},
		&cli.StringFlag{
			Name:  "model",
			Usage: "Store model: sharded, syncmap",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: json, yaml, table",
		},
		&cli.StringFlag{
			Name:  "metrics-file",
			Usage: "Write Prometheus metrics to this file after the run",
		},
		&cli.IntFlag{
			Name:  "gomaxprocs",
			Usage: "GOMAXPROCS for the run, 0 keeps the runtime default",
		},
		&cli.IntFlag{
			Name:  "gc-percent",
			Usage: "GOGC for the run, 0 keeps the current setting, negative disables the collector",
		},
	}
}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"log-level":    "log.level",
	"log-format":   "log.format",
	"threads":      "workload.threads",
	"iterations":   "workload.iterations",
	"keys":         "workload.keys",
	"read-ratio":   "workload.read_ratio",
	"seed":         "workload.seed",
	"shards":       "workload.shards",
	"model":        "workload.model",
	"output":       "output.format",
	"metrics-file": "output.metrics_file",
	"gomaxprocs":   "runtime.gomaxprocs",
	"gc-percent":   "runtime.gc_percent",
}

// overrides collects the flags explicitly set on the command line,
// including those given before the command name.
func overrides(c *cli.Context) map[string]any {
	values := make(map[string]any)
	lineage := c.Lineage()
	// Root first, so a flag repeated after the command name wins.
	for i := len(lineage) - 1; i >= 0; i-- {
		ctx := lineage[i]
		for flag, key := range flagKeys {
			if ctx.IsSet(flag) {
				values[key] = ctx.Value(flag)
			}
		}
	}
	return values
}

// prepare loads the configuration, installs the logger and returns a
// context carrying both the logger and a fresh run ID.
func prepare(c *cli.Context) (*config.RunConfig, context.Context, error) {
	cfg, err := config.Load(c.String("config"), overrides(c))
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: errWriter(c),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logger.WithLogger(ctx, log)
	ctx = logger.WithRunID(ctx, ulid.Make().String())

	return cfg, ctx, nil
}

// writeRecord renders data to the app's writer in the given format.
func writeRecord(c *cli.Context, format string, data any) error {
	f, err := output.ParseFormat(format)
	if err != nil {
		return domain.ErrInvalidConfig.WithDetails(err.Error())
	}
	if err := output.NewFormatter(f).Format(writer(c), data); err != nil {
		return domain.ErrOutput.Wrap(err).WithDetails(err.Error())
	}
	return nil
}

func writer(c *cli.Context) io.Writer {
	if c.App.Writer != nil {
		return c.App.Writer
	}
	return io.Discard
}

func errWriter(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return io.Discard
}
