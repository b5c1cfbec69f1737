package bucketmap

import "sync"

// pair is an immutable key/value tuple. Replacing a key's value creates
// a new pair instead of mutating the stored one, so a pair copied out of
// a bucket never changes after the copy.
type pair[K comparable, V any] struct {
	key   K
	value V
}

// bucket holds every pair whose key routes to it, guarded by one
// reader-writer lock. sync.RWMutex blocks readers that arrive after a
// waiting writer, which is the starvation guarantee the map relies on.
//
// None of the pair accessors acquire the lock themselves: the Map layer
// locks in the required mode before calling them. Indexes outside
// [0, size()) panic, since a caller producing one has broken the scan
// invariant.
type bucket[K comparable, V any] struct {
	mu    sync.RWMutex
	pairs []pair[K, V]
}

// size returns the number of pairs currently stored.
// Caller must hold the lock in at least read mode.
func (b *bucket[K, V]) size() int {
	return len(b.pairs)
}

// pairAt returns the pair at position i.
// Caller must hold the lock in at least read mode.
func (b *bucket[K, V]) pairAt(i int) pair[K, V] {
	return b.pairs[i]
}

// putPair replaces the pair at position i in place, preserving the
// position of every other pair. Caller must hold the write lock.
func (b *bucket[K, V]) putPair(i int, p pair[K, V]) {
	b.pairs[i] = p
}

// addPair appends a pair. Caller must hold the write lock.
func (b *bucket[K, V]) addPair(p pair[K, V]) {
	b.pairs = append(b.pairs, p)
}

// removePair deletes the pair at position i, shifting later pairs down
// one slot so their relative order is preserved. Caller must hold the
// write lock.
func (b *bucket[K, V]) removePair(i int) {
	last := len(b.pairs) - 1
	copy(b.pairs[i:], b.pairs[i+1:])
	// Zero the vacated slot so removed keys and values become
	// collectable immediately.
	var zero pair[K, V]
	b.pairs[last] = zero
	b.pairs = b.pairs[:last]
}

// indexOf scans for a pair with an equal key and returns its position,
// or -1 if the key is not present. Caller must hold the lock in at
// least read mode.
func (b *bucket[K, V]) indexOf(key K) int {
	for i := range b.pairs {
		if b.pairs[i].key == key {
			return i
		}
	}
	return -1
}
