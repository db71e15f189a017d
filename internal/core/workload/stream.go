package workload

import (
	"github.com/yndnr/mapbench-go/internal/core/domain"
	"github.com/yndnr/mapbench-go/pkg/splitmix"
)

// Stream produces the deterministic operation sequence of one worker.
//
// Every operation consumes exactly two draws: the first picks the key, the
// second decides between read and write.
type Stream struct {
	src       *splitmix.Source
	keys      uint64
	threshold uint64
}

// NewStream returns the stream of worker t for a run with the given base
// seed, key count and read ratio.
func NewStream(seed uint64, worker, keys int, readRatio float64) *Stream {
	return &Stream{
		src:       splitmix.New(splitmix.WorkerSeed(seed, worker)),
		keys:      uint64(keys),
		threshold: ReadThreshold(readRatio),
	}
}

// Next returns the next operation.
func (s *Stream) Next() domain.Op {
	key := int(s.src.Next() % s.keys)
	kind := domain.OpWrite
	if IsRead(s.src.Next(), s.threshold) {
		kind = domain.OpRead
	}
	return domain.Op{Key: key, Kind: kind}
}
