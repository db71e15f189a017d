// Package command provides CLI command definitions for mapbench.
package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/mapbench-go/internal/core/workload"
	"github.com/yndnr/mapbench-go/internal/telemetry/logger"
)

// TraceCommand returns the trace command.
func TraceCommand() *cli.Command {
	return &cli.Command{
		Name:  "trace",
		Usage: "Print each worker's operation sequence digest without running the store",
		Description: "Two runs with the same seed, threads, iterations, keys and read ratio\n" +
			"issue identical per-worker sequences; trace makes that checkable.",
		Flags:  workloadFlags(),
		Action: traceAction,
	}
}

func traceAction(c *cli.Context) error {
	cfg, ctx, err := prepare(c)
	if err != nil {
		return err
	}

	traces, err := workload.Trace(cfg.Params())
	if err != nil {
		return err
	}
	logger.L(ctx).Debug("trace computed", "workers", len(traces))

	return writeRecord(c, cfg.Output.Format, traces)
}
