// Package benchmark provides performance benchmarks for bucketmap.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Run a single operation at a longer benchtime:
//
//	go test -bench=BenchmarkPut -benchmem -benchtime=10s ./internal/tests/benchmark/...
//
// Compare results:
//
//	benchstat old.txt new.txt
package benchmark
