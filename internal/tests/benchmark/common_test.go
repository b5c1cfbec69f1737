package benchmark

import (
	"crypto/rand"
	"fmt"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	bucketmap "github.com/yndnr/bucketmap-go"
)

// EntryCounts defines the prefill sizes for benchmarking.
var EntryCounts = []int{1000, 10000, 100000, 500000}

// SmallEntryCounts for quick benchmarks.
var SmallEntryCounts = []int{1000, 10000}

// DefaultBucketCount matches the striping a service would pick for a
// hot shared map.
const DefaultBucketCount = 64

// newKey generates a ULID-shaped key, matching the key material the
// map typically holds in production.
func newKey() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, _ := ulid.New(ulid.Timestamp(time.Now()), entropy)
	return "bm-" + strings.ToLower(id.String())
}

// newMap constructs the map under test.
func newMap(b *testing.B, buckets int, opts ...bucketmap.Option[string]) *bucketmap.Map[string, int] {
	b.Helper()
	m, err := bucketmap.New[string, int](buckets, opts...)
	if err != nil {
		b.Fatalf("New(%d): %v", buckets, err)
	}
	return m
}

// prefillMap fills a map with count entries, returning the keys.
func prefillMap(m *bucketmap.Map[string, int], count int) []string {
	keys := make([]string, count)
	for i := 0; i < count; i++ {
		keys[i] = newKey()
		m.Put(keys[i], i)
	}
	return keys
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithEntryCounts runs a benchmark function with various prefill sizes.
func runWithEntryCounts(b *testing.B, counts []int, benchFn func(b *testing.B, count int)) {
	for _, count := range counts {
		b.Run(fmt.Sprintf("entries_%d", count), func(b *testing.B) {
			benchFn(b, count)
		})
	}
}
