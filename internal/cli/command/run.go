// Package command provides CLI command definitions for mapbench.
package command

import (
	"context"
	"runtime"
	"runtime/debug"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/mapbench-go/internal/cli/config"
	"github.com/yndnr/mapbench-go/internal/core/domain"
	"github.com/yndnr/mapbench-go/internal/core/workload"
	"github.com/yndnr/mapbench-go/internal/infra/procmem"
	"github.com/yndnr/mapbench-go/internal/telemetry/logger"
	"github.com/yndnr/mapbench-go/internal/telemetry/metric"
)

// RunCommand returns the run command.
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Run the benchmark and print one result record",
		Flags:  workloadFlags(),
		Action: runAction,
	}
}

func runAction(c *cli.Context) error {
	cfg, ctx, err := prepare(c)
	if err != nil {
		return err
	}

	restore := applyRuntime(ctx, cfg.Runtime)
	defer restore()

	driver := workload.NewDriver(workload.WithMemorySampler(procmem.Sample))
	rep, err := driver.Run(ctx, cfg.Params())
	if err != nil {
		return err
	}

	if err := writeRecord(c, cfg.Output.Format, rep.Result); err != nil {
		return err
	}

	if cfg.Output.MetricsFile != "" {
		if err := writeMetrics(ctx, cfg.Output.MetricsFile, rep); err != nil {
			return err
		}
	}

	return nil
}

// applyRuntime sets GOMAXPROCS and the GC target for the run and returns a
// function restoring whatever it changed. Zero values leave the process
// settings alone.
func applyRuntime(ctx context.Context, rc config.RuntimeConfig) func() {
	var undo []func()

	if rc.GOMAXPROCS > 0 {
		prev := runtime.GOMAXPROCS(rc.GOMAXPROCS)
		undo = append(undo, func() { runtime.GOMAXPROCS(prev) })
	}
	if rc.GCPercent != 0 {
		prev := debug.SetGCPercent(rc.GCPercent)
		undo = append(undo, func() { debug.SetGCPercent(prev) })
	}

	logger.L(ctx).Debug("runtime configured",
		"gomaxprocs", runtime.GOMAXPROCS(0),
		"gc_percent", rc.GCPercent,
		"num_cpu", runtime.NumCPU())

	return func() {
		for _, fn := range undo {
			fn()
		}
	}
}

func writeMetrics(ctx context.Context, path string, rep *workload.Report) error {
	reg := metric.NewRegistry()
	reg.ObserveRun(rep.Result, rep.Elapsed, rep.Requested, rep.Reads, rep.Writes)
	if err := reg.ObserveShards(rep.Result.ModelLabel, rep.Shards); err != nil {
		return domain.ErrOutput.Wrap(err).WithDetails(err.Error())
	}
	if err := reg.WriteTextfile(path); err != nil {
		return domain.ErrOutput.Wrap(err).WithDetailsf("metrics file %s: %v", path, err)
	}

	logger.L(ctx).Info("metrics written", "path", path)
	return nil
}
