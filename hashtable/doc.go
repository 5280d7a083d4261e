// Package hashtable implements a generic hash table with separate
// chaining and automatic growth.
//
// 🚀 What is a hash table?
//
// A hash table stores key/value pairs in an array of buckets. A hash
// function maps each key to a bucket index; keys that land in the same
// bucket (a collision) share it and are told apart by an equality
// check. With a good hash function and a bounded load factor, lookup,
// insertion and removal all run in O(1) expected time.
//
// ✨ Key features
//
//   - Generic Table[K, V]: any comparable key out of the box via New,
//     arbitrary key types via NewWithHasher and a custom Hasher.
//   - Separate chaining: each bucket holds a short slice of entries,
//     so collisions degrade gracefully instead of failing.
//   - Automatic growth: once size/capacity reaches 3/4 the bucket
//     array doubles and every entry is rehashed. Capacity never
//     shrinks.
//   - Absence is not an error: Get and Remove report a boolean, the
//     way map access does; Remove also hands back the removed value.
//   - Hooks: WithOnResize observes every growth step, handy for tests
//     and for tuning initial capacity.
//   - Iteration: All yields every entry as an iter.Seq2.
//
// ⚙️ Usage
//
//	ht := hashtable.New[string, int]()
//	ht.Put("alice", 30)
//	ht.Put("bob", 25)
//
//	age, ok := ht.Get("alice") // 30, true
//	_, ok = ht.Get("carol")    // 0, false: absent, not an error
//
//	old, ok := ht.Remove("bob") // 25, true
//
// Custom keys supply their own hash/equality pair:
//
//	h := hashtable.HasherFunc[Point]{
//		HashFn:  func(p Point) uint64 { return uint64(p.X)<<32 | uint64(uint32(p.Y)) },
//		EqualFn: func(a, b Point) bool { return a == b },
//	}
//	ht := hashtable.NewWithHasher[Point, string](h)
//
// Performance
//
//   - Put / Get / Remove / Contains: O(1) expected, O(n) worst case
//     when every key collides.
//   - Growth: O(n) for the rehash, amortized O(1) per insertion.
//   - Memory: O(n + capacity).
//
// Tables must be created by New or NewWithHasher; the zero value is
// not ready to use. A Table is not safe for concurrent use; guard it
// externally if multiple goroutines share one.
package hashtable
