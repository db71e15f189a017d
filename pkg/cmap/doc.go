// Package cmap provides the sharded counter map exercised by mapbench.
//
// The key space [0, keys) is split across a fixed number of shards, each
// protected by its own sync.Mutex:
//
//   - Routing: key k always lives in shard k % shardCount
//   - Pre-population: every key exists with value 0 once New returns
//   - Minimal critical sections: one map operation per lock acquisition
//   - Poisoning: a panic while a shard lock is held marks the shard unusable
//
// Usage:
//
//	m, err := cmap.New(100_000, 64)
//	if err != nil {
//		return err
//	}
//	_ = m.Increment(17)
//	v, _ := m.Read(17)
//
// Thread Safety:
//
// Read, Increment and Update are safe for concurrent use. Operations on keys
// routed to different shards never contend.
package cmap
