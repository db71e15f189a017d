// Package cmap provides a sharded counter map with per-shard mutexes.
package cmap

// Range calls fn for every key/value pair, one shard at a time.
//
// The callback returns false to stop iteration. Each shard is locked only
// while it is being visited, so the view is not a consistent snapshot across
// shards. Range returns ErrShardPoisoned on the first poisoned shard.
func (m *Map) Range(fn func(key int, value int64) bool) error {
	for _, s := range m.shards {
		if err := s.lock(); err != nil {
			return err
		}
		for k, v := range s.items {
			if !fn(k, v) {
				s.mu.Unlock()
				return nil
			}
		}
		s.mu.Unlock()
	}
	return nil
}

// Snapshot copies all values into a plain map.
func (m *Map) Snapshot() (map[int]int64, error) {
	out := make(map[int]int64, m.keys)
	err := m.Range(func(k int, v int64) bool {
		out[k] = v
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ShardStats describes one shard.
type ShardStats struct {
	Index int
	Keys  int
	Sum   int64 // total of all counters in the shard
}

// Stats returns per-shard key counts and counter sums.
func (m *Map) Stats() ([]ShardStats, error) {
	stats := make([]ShardStats, len(m.shards))
	for i, s := range m.shards {
		if err := s.lock(); err != nil {
			return nil, err
		}
		var sum int64
		for _, v := range s.items {
			sum += v
		}
		stats[i] = ShardStats{
			Index: i,
			Keys:  len(s.items),
			Sum:   sum,
		}
		s.mu.Unlock()
	}
	return stats, nil
}
