package metric

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	bucketmap "github.com/yndnr/bucketmap-go"
)

// pinnedMap builds a two-bucket map routed by the key's first byte, so
// the test controls exactly which bucket each entry lands in.
func pinnedMap(t *testing.T) *bucketmap.Map[string, int] {
	t.Helper()
	m, err := bucketmap.New[string, int](2, bucketmap.WithHasher(func(key string) uint64 {
		if key[0] == 'a' {
			return 0
		}
		return 1
	}))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestCollector(t *testing.T) {
	m := pinnedMap(t)
	m.Put("a1", 1)
	m.Put("a2", 2)
	m.Put("a3", 3)
	m.Put("b1", 4)

	c := NewCollector(m)

	expected := `
# HELP bucketmap_buckets Number of buckets in the map.
# TYPE bucketmap_buckets gauge
bucketmap_buckets 2
# HELP bucketmap_bucket_entries Number of entries in each bucket.
# TYPE bucketmap_bucket_entries gauge
bucketmap_bucket_entries{bucket="0"} 3
bucketmap_bucket_entries{bucket="1"} 1
# HELP bucketmap_entries Total number of entries in the map.
# TYPE bucketmap_entries gauge
bucketmap_entries 4
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics:\n%v", err)
	}
}

func TestCollectorTracksChanges(t *testing.T) {
	m := pinnedMap(t)
	c := NewCollector(m)

	m.Put("a1", 1)
	m.Put("b1", 2)
	m.Remove("a1")

	expected := `
# HELP bucketmap_buckets Number of buckets in the map.
# TYPE bucketmap_buckets gauge
bucketmap_buckets 2
# HELP bucketmap_bucket_entries Number of entries in each bucket.
# TYPE bucketmap_bucket_entries gauge
bucketmap_bucket_entries{bucket="0"} 0
bucketmap_bucket_entries{bucket="1"} 1
# HELP bucketmap_entries Total number of entries in the map.
# TYPE bucketmap_entries gauge
bucketmap_entries 1
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected metrics after mutation:\n%v", err)
	}
}

func TestCollectorWithNamespace(t *testing.T) {
	m := pinnedMap(t)
	m.Put("a1", 1)

	c := NewCollector(m, WithNamespace("cachesvc"))

	if err := testutil.CollectAndCompare(c, strings.NewReader(`
# HELP cachesvc_bucketmap_entries Total number of entries in the map.
# TYPE cachesvc_bucketmap_entries gauge
cachesvc_bucketmap_entries 1
`), "cachesvc_bucketmap_entries"); err != nil {
		t.Errorf("unexpected namespaced metrics:\n%v", err)
	}
}

func TestCollectorWithConstLabels(t *testing.T) {
	m := pinnedMap(t)
	m.Put("b1", 1)

	c := NewCollector(m, WithConstLabels(prometheus.Labels{"map": "sessions"}))

	if err := testutil.CollectAndCompare(c, strings.NewReader(`
# HELP bucketmap_entries Total number of entries in the map.
# TYPE bucketmap_entries gauge
bucketmap_entries{map="sessions"} 1
`), "bucketmap_entries"); err != nil {
		t.Errorf("unexpected labeled metrics:\n%v", err)
	}
}

func TestCollectorRegisters(t *testing.T) {
	m := pinnedMap(t)
	reg := prometheus.NewPedanticRegistry()

	if err := reg.Register(NewCollector(m)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	m.Put("a1", 1)
	if _, err := reg.Gather(); err != nil {
		t.Errorf("Gather: %v", err)
	}
}

func TestCollectorDescribe(t *testing.T) {
	c := NewCollector(pinnedMap(t))

	ch := make(chan *prometheus.Desc, 8)
	c.Describe(ch)
	close(ch)

	descs := 0
	for range ch {
		descs++
	}
	if descs != 3 {
		t.Errorf("Describe sent %d descriptors, want 3", descs)
	}
}
