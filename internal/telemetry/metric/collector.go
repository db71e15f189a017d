// Package metric exports benchmark runs as Prometheus metrics.
package metric

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/mapbench-go/pkg/cmap"
)

var (
	shardKeysDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "shard", "keys"),
		"Keys stored in the shard.",
		[]string{"model", "shard"}, nil,
	)
	shardSumDesc = prometheus.NewDesc(
		prometheus.BuildFQName(namespace, "shard", "counter_sum"),
		"Sum of all counters in the shard, i.e. writes routed to it.",
		[]string{"model", "shard"}, nil,
	)
)

// ShardCollector exposes a snapshot of per-shard statistics.
type ShardCollector struct {
	model string
	stats []cmap.ShardStats
}

// NewShardCollector creates a collector over stats.
func NewShardCollector(model string, stats []cmap.ShardStats) *ShardCollector {
	return &ShardCollector{
		model: model,
		stats: stats,
	}
}

// Describe implements prometheus.Collector.
func (c *ShardCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- shardKeysDesc
	ch <- shardSumDesc
}

// Collect implements prometheus.Collector.
func (c *ShardCollector) Collect(ch chan<- prometheus.Metric) {
	for _, s := range c.stats {
		idx := strconv.Itoa(s.Index)
		ch <- prometheus.MustNewConstMetric(shardKeysDesc, prometheus.GaugeValue, float64(s.Keys), c.model, idx)
		ch <- prometheus.MustNewConstMetric(shardSumDesc, prometheus.GaugeValue, float64(s.Sum), c.model, idx)
	}
}
