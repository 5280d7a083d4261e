package hashtable_test

import (
	"strconv"
	"testing"

	"github.com/klassika/klassika/hashtable"
)

// BenchmarkPut inserts distinct int keys, growth rehashes included.
func BenchmarkPut(b *testing.B) {
	b.ReportAllocs()

	ht := hashtable.New[int, int]()
	for i := 0; i < b.N; i++ {
		ht.Put(i, i)
	}
}

// BenchmarkPutPresized inserts into a table sized up front, so no
// growth rehash ever runs.
func BenchmarkPutPresized(b *testing.B) {
	b.ReportAllocs()

	ht := hashtable.New[int, int](hashtable.WithCapacity(1 << 21))
	for i := 0; i < b.N; i++ {
		ht.Put(i, i)
	}
}

// BenchmarkGet measures hits against a pre-filled table.
func BenchmarkGet(b *testing.B) {
	const n = 1 << 16

	ht := hashtable.New[int, int]()
	for i := 0; i < n; i++ {
		ht.Put(i, i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ht.Get(i % n)
	}
}

// BenchmarkGetString compares the default runtime hasher against the
// deterministic xxHash StringHasher on the same workload.
func BenchmarkGetString(b *testing.B) {
	const n = 1 << 12

	keys := make([]string, n)
	for i := range keys {
		keys[i] = "key-" + strconv.Itoa(i)
	}

	b.Run("maphash", func(b *testing.B) {
		ht := hashtable.New[string, int]()
		for i, k := range keys {
			ht.Put(k, i)
		}

		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			ht.Get(keys[i%n])
		}
	})

	b.Run("xxhash", func(b *testing.B) {
		ht := hashtable.NewWithHasher[string, int](hashtable.StringHasher())
		for i, k := range keys {
			ht.Put(k, i)
		}

		b.ReportAllocs()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			ht.Get(keys[i%n])
		}
	})
}
