package bucketmap

import "fmt"

// Map is a concurrent map striped across a fixed number of buckets.
// A key always routes to the same bucket, and every operation locks
// exactly that bucket, so operations on keys in different buckets
// proceed in parallel.
//
// The zero value is not usable; construct with New.
type Map[K comparable, V any] struct {
	buckets []*bucket[K, V]
	hasher  Hasher[K]
}

// Option configures a Map during construction.
type Option[K comparable] func(*config[K])

type config[K comparable] struct {
	hasher    Hasher[K]
	hasherSet bool
}

// WithHasher replaces the default murmur3 hasher. Passing nil makes
// New fail with ErrNilHasher.
func WithHasher[K comparable](h Hasher[K]) Option[K] {
	return func(c *config[K]) {
		c.hasher = h
		c.hasherSet = true
	}
}

// New creates a map with the given number of buckets. The count is
// fixed for the lifetime of the map; it must be positive or New
// returns ErrInvalidBucketCount.
func New[K comparable, V any](bucketCount int, opts ...Option[K]) (*Map[K, V], error) {
	if bucketCount <= 0 {
		return nil, ErrInvalidBucketCount.WithDetails(fmt.Sprintf("got %d", bucketCount))
	}

	cfg := config[K]{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.hasherSet && cfg.hasher == nil {
		return nil, ErrNilHasher
	}
	if cfg.hasher == nil {
		cfg.hasher = DefaultHasher[K]()
	}

	m := &Map[K, V]{
		buckets: make([]*bucket[K, V], bucketCount),
		hasher:  cfg.hasher,
	}
	for i := range m.buckets {
		m.buckets[i] = &bucket[K, V]{}
	}

	return m, nil
}

// bucketFor returns the bucket the key routes to. The unsigned hash
// keeps the index non-negative without an abs step.
func (m *Map[K, V]) bucketFor(key K) *bucket[K, V] {
	return m.buckets[m.hasher(key)%uint64(len(m.buckets))]
}

// ContainsKey reports whether the map holds an entry for key.
func (m *Map[K, V]) ContainsKey(key K) bool {
	b := m.bucketFor(key)
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.indexOf(key) >= 0
}

// Get returns the value mapped to key. The second return is false when
// the key is absent; a key mapped to the zero value and a missing key
// are distinguished only by it.
func (m *Map[K, V]) Get(key K) (V, bool) {
	b := m.bucketFor(key)
	b.mu.RLock()
	defer b.mu.RUnlock()

	if i := b.indexOf(key); i >= 0 {
		return b.pairAt(i).value, true
	}
	var zero V
	return zero, false
}

// Put maps key to value, returning the previous value and whether one
// existed. An existing entry is replaced in place at its current
// position rather than removed and re-appended.
func (m *Map[K, V]) Put(key K, value V) (V, bool) {
	b := m.bucketFor(key)
	b.mu.Lock()
	defer b.mu.Unlock()

	newPair := pair[K, V]{key: key, value: value}
	if i := b.indexOf(key); i >= 0 {
		prev := b.pairAt(i)
		b.putPair(i, newPair)
		return prev.value, true
	}
	b.addPair(newPair)
	var zero V
	return zero, false
}

// Remove deletes the entry for key, returning the removed value and
// whether the key was present. Removing an absent key is a no-op.
//
// The write lock is held across the scan and the removal, not just
// the removal, so a concurrent Put cannot move the target pair between
// the two steps.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	b := m.bucketFor(key)
	b.mu.Lock()
	defer b.mu.Unlock()

	if i := b.indexOf(key); i >= 0 {
		removed := b.pairAt(i)
		b.removePair(i)
		return removed.value, true
	}
	var zero V
	return zero, false
}

// GetOrPut returns the existing value for key, or inserts value and
// returns it. The second return is true when the key already existed.
func (m *Map[K, V]) GetOrPut(key K, value V) (V, bool) {
	b := m.bucketFor(key)
	b.mu.Lock()
	defer b.mu.Unlock()

	if i := b.indexOf(key); i >= 0 {
		return b.pairAt(i).value, true
	}
	b.addPair(pair[K, V]{key: key, value: value})
	return value, false
}

// Update atomically replaces the value for key with fn's result. fn
// receives the current value (or the zero value) and whether the key
// existed; it runs under the bucket's write lock, so it must not call
// back into the map.
func (m *Map[K, V]) Update(key K, fn func(value V, exists bool) V) V {
	b := m.bucketFor(key)
	b.mu.Lock()
	defer b.mu.Unlock()

	if i := b.indexOf(key); i >= 0 {
		next := pair[K, V]{key: key, value: fn(b.pairAt(i).value, true)}
		b.putPair(i, next)
		return next.value
	}
	var zero V
	next := pair[K, V]{key: key, value: fn(zero, false)}
	b.addPair(next)
	return next.value
}

// Len returns the number of entries across all buckets.
//
// Every bucket's read lock is acquired in ascending index order before
// any bucket is counted; each lock is released as its bucket's count
// is taken. The fixed acquisition order means concurrent Len calls
// cannot deadlock. The total reflects each bucket at the moment it was
// counted, so under concurrent writes it may not correspond to a
// single global instant; that weak consistency is deliberate, since
// strengthening it would need a second lock tier over the whole map.
func (m *Map[K, V]) Len() int {
	for _, b := range m.buckets {
		b.mu.RLock()
	}

	n := 0
	for _, b := range m.buckets {
		n += b.size()
		b.mu.RUnlock()
	}
	return n
}

// Clear removes all entries, emptying buckets one write lock at a
// time in ascending index order. Like Len, it is not atomic with
// respect to concurrent writers.
func (m *Map[K, V]) Clear() {
	for _, b := range m.buckets {
		b.mu.Lock()
		b.pairs = nil
		b.mu.Unlock()
	}
}

// BucketCount returns the number of buckets, as passed to New.
func (m *Map[K, V]) BucketCount() int {
	return len(m.buckets)
}

// BucketStat describes one bucket's occupancy.
type BucketStat struct {
	Index int
	Count int
}

// Stats returns the occupancy of every bucket, locking one bucket at
// a time. Useful for judging how well the hasher distributes keys.
func (m *Map[K, V]) Stats() []BucketStat {
	stats := make([]BucketStat, len(m.buckets))
	for i, b := range m.buckets {
		b.mu.RLock()
		stats[i] = BucketStat{
			Index: i,
			Count: b.size(),
		}
		b.mu.RUnlock()
	}
	return stats
}
