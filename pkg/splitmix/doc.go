// Package splitmix provides the deterministic random source used by
// benchmark workers.
//
// The generator is SplitMix64: a 64-bit counter advanced by a fixed odd
// increment, passed through a multiply/xor-shift avalanche. It is tiny,
// allocation free and portable, so a sequence produced here can be
// reproduced bit for bit by any implementation using wrapping uint64
// arithmetic.
//
// Usage:
//
//	src := splitmix.New(splitmix.WorkerSeed(42, tid))
//	v := src.Next()
package splitmix
