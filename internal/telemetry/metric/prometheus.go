// Package metric exports benchmark runs as Prometheus metrics.
package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/yndnr/mapbench-go/internal/core/domain"
	"github.com/yndnr/mapbench-go/pkg/cmap"
)

const namespace = "mapbench"

// Registry holds all metrics of a benchmark process.
type Registry struct {
	registry *prometheus.Registry

	Operations          *prometheus.CounterVec
	RunDuration         *prometheus.GaugeVec
	Throughput          *prometheus.GaugeVec
	RequestedIterations *prometheus.GaugeVec
	EffectiveIterations *prometheus.GaugeVec
	ResidentMemory      *prometheus.GaugeVec
}

// NewRegistry creates a registry with the run metrics and the Go runtime
// collector registered.
func NewRegistry() *Registry {
	labels := []string{"model"}

	r := &Registry{
		registry: prometheus.NewRegistry(),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Operations executed by workers, by kind.",
		}, []string{"model", "kind"}),
		RunDuration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock time from releasing the workers to joining the last one.",
		}, labels),
		Throughput: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "throughput_ops_per_second",
			Help:      "Effective iterations divided by run duration.",
		}, labels),
		RequestedIterations: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "requested_iterations",
			Help:      "Iterations requested before truncation to a multiple of threads.",
		}, labels),
		EffectiveIterations: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "effective_iterations",
			Help:      "Iterations actually executed.",
		}, labels),
		ResidentMemory: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "resident_memory_bytes",
			Help:      "Resident memory sampled after the run. Absent when unmeasured.",
		}, labels),
	}

	r.registry.MustRegister(
		r.Operations,
		r.RunDuration,
		r.Throughput,
		r.RequestedIterations,
		r.EffectiveIterations,
		r.ResidentMemory,
		collectors.NewGoCollector(),
	)

	return r
}

// ObserveRun records a completed run. Duration and throughput use elapsed
// rather than the millisecond-rounded duration of res, so sub-millisecond
// runs still report a rate.
func (r *Registry) ObserveRun(res domain.Result, elapsed time.Duration, requested int, reads, writes int64) {
	model := res.ModelLabel

	r.Operations.WithLabelValues(model, domain.OpRead.String()).Add(float64(reads))
	r.Operations.WithLabelValues(model, domain.OpWrite.String()).Add(float64(writes))
	r.RunDuration.WithLabelValues(model).Set(elapsed.Seconds())

	var throughput float64
	if elapsed > 0 {
		throughput = float64(res.EffectiveIterations) / elapsed.Seconds()
	}
	r.Throughput.WithLabelValues(model).Set(throughput)
	r.RequestedIterations.WithLabelValues(model).Set(float64(requested))
	r.EffectiveIterations.WithLabelValues(model).Set(float64(res.EffectiveIterations))

	if res.MemoryMeasured() {
		r.ResidentMemory.WithLabelValues(model).Set(float64(res.ResidentMemoryBytes))
	}
}

// ObserveShards registers per-shard statistics captured after a run.
func (r *Registry) ObserveShards(model string, stats []cmap.ShardStats) error {
	if len(stats) == 0 {
		return nil
	}
	return r.registry.Register(NewShardCollector(model, stats))
}

// Gatherer returns the underlying gatherer.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is written atomically.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
