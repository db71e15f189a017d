package workload

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/spaolacci/murmur3"

	"github.com/yndnr/mapbench-go/internal/core/domain"
	"github.com/yndnr/mapbench-go/pkg/splitmix"
)

// WorkerTrace summarizes the operation sequence of one worker.
type WorkerTrace struct {
	Worker int    `json:"worker" yaml:"worker"`
	Seed   uint64 `json:"seed" yaml:"seed"`
	Ops    int    `json:"ops" yaml:"ops"`
	Reads  int    `json:"reads" yaml:"reads"`
	Writes int    `json:"writes" yaml:"writes"`
	Digest string `json:"digest" yaml:"digest"`
}

// Trace replays every worker's stream for p without touching a store.
//
// Digest is a murmur3 128-bit hash over the (key, kind) sequence, each
// operation encoded as the key as a little-endian uint64 followed by one
// kind byte (0 read, 1 write). Equal digests mean equal sequences.
func Trace(p Params) ([]WorkerTrace, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	per := PerThread(p.Iterations, p.Threads)
	traces := make([]WorkerTrace, p.Threads)
	for t := range traces {
		traces[t] = traceWorker(p, t, per)
	}
	return traces, nil
}

func traceWorker(p Params, worker, n int) WorkerTrace {
	s := NewStream(p.Seed, worker, p.Keys, p.ReadRatio)
	h := murmur3.New128()

	wt := WorkerTrace{
		Worker: worker,
		Seed:   splitmix.WorkerSeed(p.Seed, worker),
		Ops:    n,
	}

	var buf [9]byte
	for i := 0; i < n; i++ {
		op := s.Next()
		binary.LittleEndian.PutUint64(buf[:8], uint64(op.Key))
		buf[8] = byte(op.Kind)
		h.Write(buf[:])

		if op.Kind == domain.OpRead {
			wt.Reads++
		} else {
			wt.Writes++
		}
	}

	wt.Digest = hex.EncodeToString(h.Sum(nil))
	return wt
}

// WriteCounts replays worker's stream and returns how many times each key
// was chosen for a write.
func WriteCounts(p Params, worker int) map[int]int64 {
	s := NewStream(p.Seed, worker, p.Keys, p.ReadRatio)
	counts := make(map[int]int64)
	for i := PerThread(p.Iterations, p.Threads); i > 0; i-- {
		if op := s.Next(); op.Kind == domain.OpWrite {
			counts[op.Key]++
		}
	}
	return counts
}
