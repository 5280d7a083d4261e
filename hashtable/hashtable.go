package hashtable

import "iter"

// entry is one key/value pair stored in a bucket chain.
type entry[K, V any] struct {
	key K
	val V
}

// Table is a hash table with separate chaining. Keys are placed by a
// Hasher; keys whose hash codes land in the same bucket share a chain
// and are told apart by the Hasher's equality check.
//
// Create tables with New or NewWithHasher; the zero value is not
// ready to use. A Table is not safe for concurrent use.
type Table[K, V any] struct {
	hasher   Hasher[K]
	buckets  [][]entry[K, V]
	size     int
	onResize func(oldCap, newCap int)
}

// New returns an empty table for comparable keys, hashed by the
// runtime's own routines via hash/maphash.
//
//	ht := hashtable.New[string, int](hashtable.WithCapacity(64))
//
// Complexity: O(capacity)
func New[K comparable, V any](opts ...Option) *Table[K, V] {
	return NewWithHasher[K, V](defaultHasher[K](), opts...)
}

// NewWithHasher returns an empty table whose key placement and
// equality are defined by h. It admits key types that are not
// comparable, and custom equivalences over ones that are (for
// example case-insensitive strings).
//
// Panics with ErrNilHasher if h is nil.
//
// Complexity: O(capacity)
func NewWithHasher[K, V any](h Hasher[K], opts ...Option) *Table[K, V] {
	if h == nil {
		panic(ErrNilHasher.Error())
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Table[K, V]{
		hasher:   h,
		buckets:  make([][]entry[K, V], o.Capacity),
		onResize: o.OnResize,
	}
}

// Put stores value under key. An equal key already in the table has
// its value overwritten and the size stays the same; a new key grows
// the size by one. Once occupancy reaches the load factor the bucket
// array doubles and every entry is rehashed.
//
// Complexity: O(1) expected, amortized over growth.
func (t *Table[K, V]) Put(key K, value V) {
	// 1) Scan the chain: an equal key means overwrite, not insert.
	idx := t.bucketIndex(key, len(t.buckets))
	bucket := t.buckets[idx]
	for i := range bucket {
		if t.hasher.Equal(bucket[i].key, key) {
			bucket[i].val = value

			return
		}
	}

	// 2) New key: append to the chain.
	t.buckets[idx] = append(bucket, entry[K, V]{key: key, val: value})
	t.size++

	// 3) Grow once size/capacity >= 3/4, compared in integers.
	if t.size*loadFactorDen >= len(t.buckets)*loadFactorNum {
		t.grow()
	}
}

// Get returns the value stored under key. The second return value is
// false when the key is absent; absence is an expected outcome, not
// an error.
//
// Complexity: O(1) expected.
func (t *Table[K, V]) Get(key K) (V, bool) {
	bucket := t.buckets[t.bucketIndex(key, len(t.buckets))]
	for i := range bucket {
		if t.hasher.Equal(bucket[i].key, key) {
			return bucket[i].val, true
		}
	}

	var zero V

	return zero, false
}

// Contains reports whether key is present.
//
// Complexity: O(1) expected.
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)

	return ok
}

// Remove deletes key and returns the value it held. The second
// return value is false when the key was absent and nothing changed.
// Removals never shrink the bucket array.
//
// Complexity: O(1) expected.
func (t *Table[K, V]) Remove(key K) (V, bool) {
	idx := t.bucketIndex(key, len(t.buckets))
	bucket := t.buckets[idx]
	for i := range bucket {
		if !t.hasher.Equal(bucket[i].key, key) {
			continue
		}
		removed := bucket[i].val

		// Splice the entry out and zero the vacated tail slot so the
		// underlying array does not pin the old key and value.
		last := len(bucket) - 1
		copy(bucket[i:], bucket[i+1:])
		bucket[last] = entry[K, V]{}
		t.buckets[idx] = bucket[:last]
		t.size--

		return removed, true
	}

	var zero V

	return zero, false
}

// Len returns the number of stored entries.
//
// Complexity: O(1)
func (t *Table[K, V]) Len() int { return t.size }

// IsEmpty reports whether the table holds no entries.
//
// Complexity: O(1)
func (t *Table[K, V]) IsEmpty() bool { return t.size == 0 }

// Capacity returns the current number of buckets. It starts at the
// configured initial capacity and doubles on each growth step.
//
// Complexity: O(1)
func (t *Table[K, V]) Capacity() int { return len(t.buckets) }

// All returns an iterator over every key/value pair, in no particular
// order. The table must not be mutated during iteration.
//
//	for k, v := range ht.All() { ... }
//
// Complexity: O(n + capacity) for a full pass.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, bucket := range t.buckets {
			for _, e := range bucket {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// bucketIndex maps key to a chain index under the given capacity.
func (t *Table[K, V]) bucketIndex(key K, capacity int) int {
	return int(t.hasher.Hash(key) % uint64(capacity))
}

// grow doubles the bucket array and re-slots every entry under the
// new capacity. Keys already in the table are known to be distinct,
// so each entry appends straight to its new chain without the
// equality scan Put performs; growth never calls back into the
// public API.
func (t *Table[K, V]) grow() {
	oldCap := len(t.buckets)
	newCap := oldCap * growthFactor

	fresh := make([][]entry[K, V], newCap)
	for _, bucket := range t.buckets {
		for _, e := range bucket {
			idx := t.bucketIndex(e.key, newCap)
			fresh[idx] = append(fresh[idx], e)
		}
	}
	t.buckets = fresh

	if t.onResize != nil {
		t.onResize(oldCap, newCap)
	}
}
