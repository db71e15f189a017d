// Package workload drives the mapbench benchmark.
//
// A run has three phases:
//
//  1. Population: the store is created and every key in [0, keys) is
//     inserted with value 0. This phase is not timed.
//  2. Execution: Threads workers are spawned and parked on a start gate.
//     Once all of them are live the clock starts and the gate opens. Each
//     worker performs Iterations/Threads operations drawn from its own
//     Stream, then exits. The clock stops when the last worker is joined.
//  3. Reporting: the process is garbage collected, resident memory is
//     sampled and an immutable domain.Result is built.
//
// Each worker's sequence of (key, kind) pairs depends only on the base seed,
// the worker index, the key count and the read ratio, so it is identical
// across runs. The interleaving between workers is not controlled.
//
// Any fatal condition (a poisoned shard lock, a panicking worker) fails the
// whole run; no partial result is produced.
package workload
