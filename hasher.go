package bucketmap

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
)

// Hasher maps a key to a 64-bit hash. The hash must be deterministic
// and consistent with key equality: equal keys hash identically. The
// map routes a key to bucket hash(key) % bucketCount, so a hasher only
// affects distribution, never correctness.
type Hasher[K comparable] func(K) uint64

// DefaultHasher returns the murmur3-based hasher used when no
// WithHasher option is given.
//
// String keys hash directly. Fixed-width integer keys hash their
// big-endian encoding. Everything else goes through its fmt "%v"
// rendering, which is slower but works for any comparable type.
func DefaultHasher[K comparable]() Hasher[K] {
	return func(key K) uint64 {
		switch k := any(key).(type) {
		case string:
			return murmur3.Sum64([]byte(k))
		case int:
			return sumInt(uint64(k))
		case int8:
			return sumInt(uint64(k))
		case int16:
			return sumInt(uint64(k))
		case int32:
			return sumInt(uint64(k))
		case int64:
			return sumInt(uint64(k))
		case uint:
			return sumInt(uint64(k))
		case uint8:
			return sumInt(uint64(k))
		case uint16:
			return sumInt(uint64(k))
		case uint32:
			return sumInt(uint64(k))
		case uint64:
			return sumInt(k)
		case uintptr:
			return sumInt(uint64(k))
		default:
			h := murmur3.New64()
			fmt.Fprintf(h, "%v", key)
			return h.Sum64()
		}
	}
}

func sumInt(v uint64) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return murmur3.Sum64(buf[:])
}

// XXHashString is an alternative string hasher built on xxhash. It is
// faster than murmur3 on long keys; pick it with WithHasher when
// throughput on string-keyed maps matters more than matching the
// default routing.
func XXHashString(key string) uint64 {
	return xxhash.Sum64String(key)
}
