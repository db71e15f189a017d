// Package benchmark provides Go benchmarks for the mapbench stores.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Compare shard counts under contention:
//
//	go test -bench=BenchmarkShardedMixed -cpu=1,4,16 ./internal/tests/benchmark/...
//
// Generate performance report:
//
//	go test -bench=. -benchmem -count=5 ./internal/tests/benchmark/... | tee benchmark.txt
//
// Compare results:
//
//	benchstat old.txt new.txt
package benchmark
