// Package cmap provides a sharded counter map with per-shard mutexes.
package cmap

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultShardCount is the shard count used by mapbench when none is given.
const DefaultShardCount = 64

var (
	// ErrShardPoisoned is returned by every operation on a shard whose lock
	// was held by a goroutine that panicked.
	ErrShardPoisoned = errors.New("cmap: shard lock poisoned")

	// ErrInvalidSize is returned by New for non-positive key or shard counts.
	ErrInvalidSize = errors.New("cmap: key count and shard count must be at least 1")
)

// Map is a fixed-size sharded map from int keys to int64 counters.
type Map struct {
	shards []*shard
	keys   int
}

type shard struct {
	mu       sync.Mutex
	items    map[int]int64
	poisoned bool // guarded by mu
}

// New creates a map with shardCount shards and inserts every key in
// [0, keyCount) with value 0. Population finishes before New returns.
func New(keyCount, shardCount int) (*Map, error) {
	if keyCount < 1 || shardCount < 1 {
		return nil, fmt.Errorf("%w: keys=%d shards=%d", ErrInvalidSize, keyCount, shardCount)
	}

	m := &Map{
		shards: make([]*shard, shardCount),
		keys:   keyCount,
	}

	perShard := keyCount/shardCount + 1
	for i := 0; i < shardCount; i++ {
		m.shards[i] = &shard{
			items: make(map[int]int64, perShard),
		}
	}

	for k := 0; k < keyCount; k++ {
		s := m.shards[k%shardCount]
		s.mu.Lock()
		s.items[k] = 0
		s.mu.Unlock()
	}

	return m, nil
}

// ShardIndex returns the shard that owns key.
func (m *Map) ShardIndex(key int) int {
	return key % len(m.shards)
}

func (m *Map) getShard(key int) *shard {
	return m.shards[key%len(m.shards)]
}

// lock acquires the shard lock, refusing poisoned shards.
func (s *shard) lock() error {
	s.mu.Lock()
	if s.poisoned {
		s.mu.Unlock()
		return ErrShardPoisoned
	}
	return nil
}

// unlock releases the shard lock. It must be deferred directly so that a
// panic inside the critical section poisons the shard before the lock is
// released and the panic continues.
func (s *shard) unlock() {
	if r := recover(); r != nil {
		s.poisoned = true
		s.mu.Unlock()
		panic(r)
	}
	s.mu.Unlock()
}

// Read returns the current value of key.
// A key outside the populated range reads as 0.
func (m *Map) Read(key int) (int64, error) {
	s := m.getShard(key)
	if err := s.lock(); err != nil {
		return 0, err
	}
	defer s.unlock()
	return s.items[key], nil
}

// Increment adds one to the value of key, inserting 1 if key is absent.
func (m *Map) Increment(key int) error {
	s := m.getShard(key)
	if err := s.lock(); err != nil {
		return err
	}
	defer s.unlock()
	s.items[key]++
	return nil
}

// Update replaces the value of key with fn(old, exists) while holding the
// owning shard's lock and returns the new value. If fn panics the shard is
// poisoned and the panic propagates.
func (m *Map) Update(key int, fn func(value int64, exists bool) int64) (int64, error) {
	s := m.getShard(key)
	if err := s.lock(); err != nil {
		return 0, err
	}
	defer s.unlock()

	old, exists := s.items[key]
	v := fn(old, exists)
	s.items[key] = v
	return v, nil
}

// Has reports whether key is stored.
func (m *Map) Has(key int) bool {
	s := m.getShard(key)
	if err := s.lock(); err != nil {
		return false
	}
	_, ok := s.items[key]
	s.mu.Unlock()
	return ok
}

// Count returns the total number of stored keys.
func (m *Map) Count() int {
	count := 0
	for _, s := range m.shards {
		s.mu.Lock()
		count += len(s.items)
		s.mu.Unlock()
	}
	return count
}

// KeyCount returns the size of the key space the map was created with.
func (m *Map) KeyCount() int {
	return m.keys
}

// ShardCount returns the number of shards.
func (m *Map) ShardCount() int {
	return len(m.shards)
}

// Poisoned reports whether shard i has been poisoned.
func (m *Map) Poisoned(i int) bool {
	s := m.shards[i]
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.poisoned
}
