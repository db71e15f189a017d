package workload

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yndnr/mapbench-go/internal/core/domain"
	"github.com/yndnr/mapbench-go/internal/telemetry/logger"
	"github.com/yndnr/mapbench-go/pkg/cmap"
)

// MemorySampler returns the resident memory of the process.
// ok is false when the platform cannot measure it.
type MemorySampler func() (rss uint64, ok bool)

// Report is everything a run produced.
type Report struct {
	Result domain.Result

	// Elapsed is the timed window at full resolution. Result.DurationMS is
	// the same value rounded down to milliseconds.
	Elapsed time.Duration
	// Requested is the iteration count asked for, before truncation.
	Requested int
	// Reads and Writes count the operations executed by kind.
	Reads  int64
	Writes int64
	// MemoryMeasured is false when Result.ResidentMemoryBytes is the
	// unmeasured sentinel.
	MemoryMeasured bool
	// Shards holds per-shard statistics for the sharded model.
	Shards []cmap.ShardStats
}

// Driver runs benchmark workloads.
type Driver struct {
	sampler      MemorySampler
	runtimeLabel string
	gcBefore     bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithMemorySampler sets the resident memory sampler.
func WithMemorySampler(s MemorySampler) Option {
	return func(d *Driver) {
		d.sampler = s
	}
}

// WithRuntimeLabel overrides the runtime label written to results.
func WithRuntimeLabel(label string) Option {
	return func(d *Driver) {
		d.runtimeLabel = label
	}
}

// WithGCBeforeSample controls whether a full GC runs before memory is
// sampled. It is on by default.
func WithGCBeforeSample(enabled bool) Option {
	return func(d *Driver) {
		d.gcBefore = enabled
	}
}

// NewDriver creates a driver.
func NewDriver(opts ...Option) *Driver {
	d := &Driver{
		sampler:      func() (uint64, bool) { return domain.Unmeasured, false },
		runtimeLabel: runtime.Version(),
		gcBefore:     true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run validates p, populates a store, executes the workload and returns
// the report. It blocks until every worker has finished; ctx only carries
// the logger and run ID.
func (d *Driver) Run(ctx context.Context, p Params) (*Report, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log := logger.L(ctx).With("model", string(p.Model))

	popStart := time.Now()
	store, err := NewStore(p.Model, p.Keys, p.Shards)
	if err != nil {
		return nil, err
	}
	log.Debug("store populated", "keys", p.Keys, "shards", p.Shards, "elapsed", time.Since(popStart))

	per := PerThread(p.Iterations, p.Threads)
	if eff := p.EffectiveIterations(); eff != p.Iterations {
		log.Warn("iterations truncated to a multiple of threads",
			"requested", p.Iterations, "effective", eff, "threads", p.Threads)
	}

	log.Info("starting workers", "threads", p.Threads, "per_thread", per, "read_ratio", p.ReadRatio, "seed", p.Seed)
	elapsed, counts, err := d.execute(store, p, per)
	if err != nil {
		log.Error("run aborted", "error", err)
		return nil, err
	}

	rep := &Report{Elapsed: elapsed, Requested: p.Iterations}
	for _, c := range counts {
		rep.Reads += c.reads
		rep.Writes += c.writes
	}

	if m, ok := store.(*cmap.Map); ok {
		stats, err := m.Stats()
		if err != nil {
			return nil, domain.ErrLockPoisoned.Wrap(err)
		}
		rep.Shards = stats
	}

	if d.gcBefore {
		runtime.GC()
	}
	rss, measured := d.sampler()
	if !measured {
		rss = domain.Unmeasured
		log.Warn("resident memory unmeasured on this platform")
	}
	rep.MemoryMeasured = measured

	rep.Result = domain.NewResult(domain.RunInfo{
		RuntimeLabel:        d.runtimeLabel,
		ModelLabel:          p.Model.Label(),
		ThreadCount:         p.Threads,
		EffectiveIterations: per * p.Threads,
		Keys:                p.Keys,
		ReadRatio:           p.ReadRatio,
		Seed:                p.Seed,
	}, elapsed, rss)

	log.Info("run complete",
		"elapsed", elapsed,
		"effective_iterations", rep.Result.EffectiveIterations,
		"reads", rep.Reads,
		"writes", rep.Writes)

	// Keep the store reachable until memory has been sampled.
	runtime.KeepAlive(store)
	return rep, nil
}

type workerCounts struct {
	reads  int64
	writes int64
}

// execute runs all workers and returns the time between opening the start
// gate and joining the last worker.
func (d *Driver) execute(store Store, p Params, per int) (time.Duration, []workerCounts, error) {
	counts := make([]workerCounts, p.Threads)
	streams := make([]*Stream, p.Threads)
	for t := range streams {
		streams[t] = NewStream(p.Seed, t, p.Keys, p.ReadRatio)
	}

	var (
		g     errgroup.Group
		ready sync.WaitGroup
		gate  = make(chan struct{})
	)
	ready.Add(p.Threads)

	for t := 0; t < p.Threads; t++ {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = domain.ErrWorkerPanic.WithDetailsf("worker %d: %v", t, r)
				}
			}()

			ready.Done()
			<-gate

			reads, writes, err := work(store, streams[t], per)
			counts[t] = workerCounts{reads: reads, writes: writes}
			if err != nil {
				return classify(err).WithDetailsf("worker %d", t)
			}
			return nil
		})
	}

	ready.Wait()
	start := time.Now()
	close(gate)
	err := g.Wait()
	elapsed := time.Since(start)

	return elapsed, counts, err
}

// work is the worker loop. Counters are kept in locals and published once.
func work(store Store, s *Stream, n int) (reads, writes int64, err error) {
	for i := 0; i < n; i++ {
		op := s.Next()
		if op.Kind == domain.OpRead {
			if _, err := store.Read(op.Key); err != nil {
				return reads, writes, err
			}
			reads++
		} else {
			if err := store.Increment(op.Key); err != nil {
				return reads, writes, err
			}
			writes++
		}
	}
	return reads, writes, nil
}

func classify(err error) *domain.DomainError {
	if errors.Is(err, cmap.ErrShardPoisoned) {
		return domain.ErrLockPoisoned.Wrap(err)
	}
	return domain.ErrWorkerFailed.Wrap(err)
}
