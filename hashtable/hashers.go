package hashtable

import (
	"bytes"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// comparableHasher hashes any comparable key with the runtime's own
// hash routines via hash/maphash. Each value carries its own random
// seed, so hash codes differ between tables and between runs; only
// bucket placement depends on them, never observable behavior.
type comparableHasher[K comparable] struct {
	seed maphash.Seed
}

// defaultHasher returns the Hasher New installs for comparable keys.
func defaultHasher[K comparable]() Hasher[K] {
	return comparableHasher[K]{seed: maphash.MakeSeed()}
}

// Hash implements Hasher.
func (h comparableHasher[K]) Hash(k K) uint64 {
	return maphash.Comparable(h.seed, k)
}

// Equal implements Hasher via the built-in == operator.
func (h comparableHasher[K]) Equal(a, b K) bool { return a == b }

// StringHasher returns a Hasher for string keys built on xxHash, a
// fast non-cryptographic hash with strong distribution. Unlike the
// default hasher it is deterministic across processes, which makes it
// the right choice when bucket placement must be reproducible.
func StringHasher() Hasher[string] {
	return HasherFunc[string]{
		HashFn:  xxhash.Sum64String,
		EqualFn: func(a, b string) bool { return a == b },
	}
}

// BytesHasher returns a Hasher for byte-slice keys built on xxHash.
// Byte slices are not comparable, so they cannot be used with New;
// pair this hasher with NewWithHasher instead. The table never
// mutates key slices, but callers must not either while the key is
// stored.
func BytesHasher() Hasher[[]byte] {
	return HasherFunc[[]byte]{
		HashFn:  xxhash.Sum64,
		EqualFn: bytes.Equal,
	}
}
