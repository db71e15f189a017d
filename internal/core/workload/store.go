package workload

import (
	"strings"
	"sync"

	"github.com/yndnr/mapbench-go/internal/core/domain"
	"github.com/yndnr/mapbench-go/pkg/cmap"
)

// Model selects the store implementation under test.
type Model string

const (
	// ModelSharded is the mutex-sharded map from pkg/cmap.
	ModelSharded Model = "sharded"
	// ModelSyncMap is a sync.Map baseline with compare-and-swap increments.
	ModelSyncMap Model = "syncmap"
)

// Models lists the supported models.
var Models = []Model{ModelSharded, ModelSyncMap}

// ParseModel parses a model name.
func ParseModel(s string) (Model, error) {
	switch m := Model(strings.ToLower(strings.TrimSpace(s))); m {
	case ModelSharded, ModelSyncMap:
		return m, nil
	default:
		return "", domain.ErrUnknownModel.WithDetailsf("%q (want one of sharded, syncmap)", s)
	}
}

// Label returns the model label written to results.
func (m Model) Label() string {
	switch m {
	case ModelSyncMap:
		return "threads-sync.Map"
	default:
		return "threads-sharded"
	}
}

// Store is the key/counter store driven by workers.
type Store interface {
	// Read returns the current value of key.
	Read(key int) (int64, error)
	// Increment adds one to the value of key.
	Increment(key int) error
}

// NewStore creates and fully populates the store for model.
func NewStore(model Model, keys, shards int) (Store, error) {
	switch model {
	case ModelSyncMap:
		return newSyncMapStore(keys), nil
	case ModelSharded:
		m, err := cmap.New(keys, shards)
		if err != nil {
			return nil, domain.ErrInvalidConfig.Wrap(err).WithDetails(err.Error())
		}
		return m, nil
	default:
		_, err := ParseModel(string(model))
		return nil, err
	}
}

// syncMapStore is the comparison baseline. It has no shards and no locks;
// increments retry a compare-and-swap until they win.
type syncMapStore struct {
	m sync.Map
}

func newSyncMapStore(keys int) *syncMapStore {
	s := &syncMapStore{}
	for k := 0; k < keys; k++ {
		s.m.Store(k, int64(0))
	}
	return s
}

func (s *syncMapStore) Read(key int) (int64, error) {
	v, ok := s.m.Load(key)
	if !ok {
		return 0, nil
	}
	return v.(int64), nil
}

func (s *syncMapStore) Increment(key int) error {
	for {
		v, loaded := s.m.LoadOrStore(key, int64(1))
		if !loaded {
			return nil
		}
		old := v.(int64)
		if s.m.CompareAndSwap(key, old, old+1) {
			return nil
		}
	}
}
