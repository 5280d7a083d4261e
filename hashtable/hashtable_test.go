package hashtable_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/klassika/klassika/hashtable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collideAll maps every key to one bucket, forcing a single chain.
func collideAll() hashtable.Hasher[string] {
	return hashtable.HasherFunc[string]{
		HashFn:  func(string) uint64 { return 42 },
		EqualFn: func(a, b string) bool { return a == b },
	}
}

func TestPutGetRoundtrip(t *testing.T) {
	ht := hashtable.New[string, int]()

	ht.Put("alice", 30)
	ht.Put("bob", 25)

	v, ok := ht.Get("alice")
	require.True(t, ok)
	assert.Equal(t, 30, v)

	v, ok = ht.Get("bob")
	require.True(t, ok)
	assert.Equal(t, 25, v)
}

func TestGetAbsent(t *testing.T) {
	ht := hashtable.New[string, int]()
	ht.Put("alice", 30)

	v, ok := ht.Get("carol")
	assert.False(t, ok, "absent key must report false, not fail")
	assert.Zero(t, v, "absent key must come back as the zero value")
	assert.False(t, ht.Contains("carol"))
}

func TestEmptyTableGet(t *testing.T) {
	ht := hashtable.New[string, int]()

	_, ok := ht.Get("x")
	assert.False(t, ok)
	assert.True(t, ht.IsEmpty())
}

func TestPutOverwrite(t *testing.T) {
	ht := hashtable.New[string, int]()

	ht.Put("alice", 30)
	ht.Put("alice", 31)

	v, ok := ht.Get("alice")
	require.True(t, ok)
	assert.Equal(t, 31, v, "second Put must overwrite the value")
	assert.Equal(t, 1, ht.Len(), "overwriting must not grow the size")
}

func TestRemove(t *testing.T) {
	ht := hashtable.New[string, int]()
	ht.Put("alice", 30)
	ht.Put("bob", 25)

	old, ok := ht.Remove("alice")
	require.True(t, ok)
	assert.Equal(t, 30, old, "Remove must hand back the stored value")
	assert.False(t, ht.Contains("alice"))
	assert.Equal(t, 1, ht.Len())

	// bob is untouched.
	v, ok := ht.Get("bob")
	require.True(t, ok)
	assert.Equal(t, 25, v)
}

func TestRemoveAbsent(t *testing.T) {
	ht := hashtable.New[string, int]()
	ht.Put("alice", 30)

	old, ok := ht.Remove("carol")
	assert.False(t, ok)
	assert.Zero(t, old)
	assert.Equal(t, 1, ht.Len(), "failed removal must not change the size")
}

func TestPutRemoveGetRoundTrip(t *testing.T) {
	ht := hashtable.New[string, int]()

	ht.Put("k", 9)
	old, ok := ht.Remove("k")
	require.True(t, ok)
	assert.Equal(t, 9, old)

	_, ok = ht.Get("k")
	assert.False(t, ok, "a removed key must read back as absent")
	assert.True(t, ht.IsEmpty())
}

func TestLenIsEmpty(t *testing.T) {
	ht := hashtable.New[string, int]()
	assert.True(t, ht.IsEmpty())
	assert.Equal(t, 0, ht.Len())

	ht.Put("a", 1)
	assert.False(t, ht.IsEmpty())
	assert.Equal(t, 1, ht.Len())

	ht.Put("b", 2)
	assert.Equal(t, 2, ht.Len())

	ht.Put("a", 10) // overwrite
	assert.Equal(t, 2, ht.Len())

	ht.Remove("a")
	assert.Equal(t, 1, ht.Len())

	ht.Remove("b")
	assert.True(t, ht.IsEmpty())
}

func TestZeroValueStored(t *testing.T) {
	ht := hashtable.New[string, int]()
	ht.Put("zero", 0)

	v, ok := ht.Get("zero")
	assert.True(t, ok, "a stored zero value is present, not absent")
	assert.Zero(t, v)
	assert.True(t, ht.Contains("zero"))
}

func TestCollidingKeysCoexist(t *testing.T) {
	ht := hashtable.NewWithHasher[string, int](collideAll())

	words := []string{"ant", "bee", "cat", "dog", "elk"}
	for i, w := range words {
		ht.Put(w, i)
	}

	require.Equal(t, len(words), ht.Len())
	for i, w := range words {
		v, ok := ht.Get(w)
		require.Truef(t, ok, "colliding key %q must stay retrievable", w)
		assert.Equal(t, i, v)
	}
	assert.False(t, ht.Contains("fox"), "an absent key in a full chain is still absent")
}

func TestRemoveFromChain(t *testing.T) {
	cases := []struct {
		name   string
		remove string
	}{
		{"head", "ant"},
		{"middle", "bee"},
		{"tail", "cat"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ht := hashtable.NewWithHasher[string, int](collideAll())
			ht.Put("ant", 1)
			ht.Put("bee", 2)
			ht.Put("cat", 3)

			_, ok := ht.Remove(tc.remove)
			require.True(t, ok)
			assert.False(t, ht.Contains(tc.remove))
			assert.Equal(t, 2, ht.Len())

			for w, v := range map[string]int{"ant": 1, "bee": 2, "cat": 3} {
				if w == tc.remove {
					continue
				}
				got, ok := ht.Get(w)
				require.Truef(t, ok, "%q must survive removing the chain %s", w, tc.name)
				assert.Equal(t, v, got)
			}
		})
	}
}

func TestGrowsOnceAtLoadFactor(t *testing.T) {
	var resizes [][2]int
	ht := hashtable.New[int, string](
		hashtable.WithOnResize(func(oldCap, newCap int) {
			resizes = append(resizes, [2]int{oldCap, newCap})
		}),
	)
	require.Equal(t, hashtable.DefaultCapacity, ht.Capacity())

	// Eleven entries sit below 3/4 of sixteen: no growth yet.
	for i := 0; i < 11; i++ {
		ht.Put(i, strconv.Itoa(i))
	}
	assert.Empty(t, resizes)
	assert.Equal(t, 16, ht.Capacity())

	// The twelfth entry reaches the load factor exactly.
	ht.Put(11, "11")
	require.Len(t, resizes, 1, "exactly one growth step")
	assert.Equal(t, [2]int{16, 32}, resizes[0])
	assert.Equal(t, 32, ht.Capacity())

	for i := 0; i < 12; i++ {
		v, ok := ht.Get(i)
		require.Truef(t, ok, "key %d must survive the rehash", i)
		assert.Equal(t, strconv.Itoa(i), v)
	}
	assert.Equal(t, 12, ht.Len())
}

func TestGrowthRehashesChains(t *testing.T) {
	// Every key collides, so growth must carry a 12-entry chain over.
	ht := hashtable.NewWithHasher[string, int](collideAll())

	for i := 0; i < 12; i++ {
		ht.Put(strconv.Itoa(i), i)
	}

	assert.Equal(t, 32, ht.Capacity())
	for i := 0; i < 12; i++ {
		v, ok := ht.Get(strconv.Itoa(i))
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestCapacityNeverShrinks(t *testing.T) {
	ht := hashtable.New[int, int]()
	for i := 0; i < 100; i++ {
		ht.Put(i, i)
	}
	grown := ht.Capacity()
	require.Greater(t, grown, hashtable.DefaultCapacity)

	for i := 0; i < 100; i++ {
		v, ok := ht.Remove(i)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	assert.True(t, ht.IsEmpty())
	assert.Equal(t, grown, ht.Capacity(), "removals must not shrink the bucket array")
}

func TestOverwriteDoesNotGrow(t *testing.T) {
	var resizes int
	ht := hashtable.New[int, int](
		hashtable.WithOnResize(func(_, _ int) { resizes++ }),
	)

	for i := 0; i < 11; i++ {
		ht.Put(i, i)
	}
	for n := 0; n < 50; n++ {
		ht.Put(3, n)
	}

	assert.Zero(t, resizes, "overwrites do not add entries, so they cannot trigger growth")
	assert.Equal(t, 11, ht.Len())
	assert.Equal(t, hashtable.DefaultCapacity, ht.Capacity())
}

func TestWithCapacity(t *testing.T) {
	ht := hashtable.New[string, int](hashtable.WithCapacity(4))
	require.Equal(t, 4, ht.Capacity())

	// 3/4 of four is three: the third entry doubles the table.
	ht.Put("a", 1)
	ht.Put("b", 2)
	assert.Equal(t, 4, ht.Capacity())
	ht.Put("c", 3)
	assert.Equal(t, 8, ht.Capacity())
}

func TestWithCapacityRejectsNonPositive(t *testing.T) {
	assert.PanicsWithValue(t, hashtable.ErrBadCapacity.Error(), func() {
		hashtable.WithCapacity(0)
	})
	assert.PanicsWithValue(t, hashtable.ErrBadCapacity.Error(), func() {
		hashtable.WithCapacity(-4)
	})
}

func TestNewWithHasherRejectsNil(t *testing.T) {
	assert.PanicsWithValue(t, hashtable.ErrNilHasher.Error(), func() {
		hashtable.NewWithHasher[string, int](nil)
	})
}

type point struct{ x, y int }

func TestStructKeys(t *testing.T) {
	ht := hashtable.New[point, string]()
	ht.Put(point{1, 2}, "a")
	ht.Put(point{3, 4}, "b")

	v, ok := ht.Get(point{1, 2})
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.False(t, ht.Contains(point{2, 1}), "field order matters for struct keys")
}

func TestAll(t *testing.T) {
	ht := hashtable.New[string, int]()
	want := map[string]int{"a": 1, "b": 2, "c": 3}
	for k, v := range want {
		ht.Put(k, v)
	}

	seen := make(map[string]int, len(want))
	for k, v := range ht.All() {
		seen[k] = v
	}
	assert.Equal(t, want, seen)
}

func TestAllEarlyStop(t *testing.T) {
	ht := hashtable.New[int, int]()
	for i := 0; i < 10; i++ {
		ht.Put(i, i)
	}

	var n int
	for range ht.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestMatchesBuiltinMap(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ht := hashtable.New[int, int]()
	oracle := make(map[int]int)

	for i := 0; i < 2000; i++ {
		k := rng.Intn(300)
		switch rng.Intn(3) {
		case 0, 1:
			v := rng.Int()
			ht.Put(k, v)
			oracle[k] = v
		default:
			want, present := oracle[k]
			got, ok := ht.Remove(k)
			assert.Equal(t, present, ok)
			if present {
				assert.Equal(t, want, got)
			}
			delete(oracle, k)
		}
	}

	require.Equal(t, len(oracle), ht.Len())
	for k, v := range oracle {
		got, ok := ht.Get(k)
		require.Truef(t, ok, "key %d", k)
		assert.Equal(t, v, got)
	}

	seen := make(map[int]int, ht.Len())
	for k, v := range ht.All() {
		seen[k] = v
	}
	assert.Equal(t, oracle, seen, "iterator must agree with the oracle")
}
