package benchmark

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/yndnr/mapbench-go/internal/core/domain"
	"github.com/yndnr/mapbench-go/internal/core/workload"
)

// ShardCounts defines the shard counts for benchmarking.
var ShardCounts = []int{1, 4, 16, 64, 256}

// KeyCount is the key space used by the store benchmarks.
const KeyCount = 100_000

// ReadRatios defines the read ratios for benchmarking.
var ReadRatios = []float64{0, 0.5, 0.9, 1}

// workerSeq numbers parallel benchmark goroutines so each gets its own stream.
var workerSeq atomic.Uint64

// nextStream returns a stream for a new benchmark goroutine.
func nextStream(keys int, readRatio float64) *workload.Stream {
	worker := int(workerSeq.Add(1))
	return workload.NewStream(workload.DefaultSeed, worker, keys, readRatio)
}

// apply executes one operation against store. It may run on RunParallel
// goroutines, so failures are reported with Errorf.
func apply(b *testing.B, store workload.Store, op domain.Op) {
	var err error
	if op.Kind == domain.OpRead {
		_, err = store.Read(op.Key)
	} else {
		err = store.Increment(op.Key)
	}
	if err != nil {
		b.Errorf("operation on key %d failed: %v", op.Key, err)
	}
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithShardCounts runs a benchmark function with various shard counts.
func runWithShardCounts(b *testing.B, counts []int, benchFn func(b *testing.B, shards int)) {
	for _, shards := range counts {
		b.Run(fmt.Sprintf("shards_%d", shards), func(b *testing.B) {
			benchFn(b, shards)
		})
	}
}
