// Package bucketmap provides a fixed-bucket-count concurrent map.
//
// This package implements a lock-striped hash map optimized for
// mixed read/write workloads with the following properties:
//
//   - Fixed Striping: The bucket count is set at construction and never
//     changes, so key routing is stable for the map's lifetime
//   - Fine-grained Locking: Per-bucket RWMutex, so operations on
//     different buckets never block each other
//   - Immutable Pairs: Replacing a key's value installs a new pair
//     rather than mutating the stored one
//   - Pluggable Hashing: murmur3 routing by default, with xxhash and
//     custom hashers available via options
//
// Usage:
//
//	m, err := bucketmap.New[string, int](64)
//	if err != nil {
//		// bucket count was not positive
//	}
//	prev, replaced := m.Put("key", 1)
//	val, ok := m.Get("key")
//
// Thread Safety:
//
// All operations are safe for concurrent use. Read operations
// (Get, ContainsKey) take a bucket's read lock, write operations
// (Put, Remove, GetOrPut, Update) take its write lock. Len acquires
// every bucket's read lock in ascending index order before summing,
// so it never deadlocks against other Len calls.
package bucketmap
