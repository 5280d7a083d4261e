package hashtable_test

import (
	"fmt"
	"sort"
	"strings"

	"github.com/klassika/klassika/hashtable"
)

// ExampleTable shows the basic put/get/remove cycle. An absent key is
// reported by the second return value, never by an error.
func ExampleTable() {
	ht := hashtable.New[string, int]()

	ht.Put("alice", 30)
	ht.Put("bob", 25)

	age, ok := ht.Get("alice")
	fmt.Println(age, ok)

	_, ok = ht.Get("carol")
	fmt.Println(ok)

	old, ok := ht.Remove("bob")
	fmt.Println(old, ok, ht.Len())
	// Output:
	// 30 true
	// false
	// 25 true 1
}

// ExampleTable_All iterates every entry. Order is unspecified, so the
// keys are sorted before printing.
func ExampleTable_All() {
	ht := hashtable.New[string, int]()
	ht.Put("pears", 4)
	ht.Put("plums", 7)
	ht.Put("figs", 2)

	keys := make([]string, 0, ht.Len())
	for k := range ht.All() {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v, _ := ht.Get(k)
		fmt.Println(k, v)
	}
	// Output:
	// figs 2
	// pears 4
	// plums 7
}

// ExampleNewWithHasher builds a table with case-insensitive string
// keys: the hasher folds case before hashing and compares folded.
func ExampleNewWithHasher() {
	fold := hashtable.HasherFunc[string]{
		HashFn:  func(s string) uint64 { return hashtable.StringHasher().Hash(strings.ToLower(s)) },
		EqualFn: strings.EqualFold,
	}

	ht := hashtable.NewWithHasher[string, string](fold)
	ht.Put("Content-Type", "application/json")

	v, ok := ht.Get("content-type")
	fmt.Println(v, ok)
	// Output: application/json true
}

// ExampleWithOnResize observes growth: the twelfth entry of a default
// sixteen-bucket table reaches the 3/4 load factor and doubles it.
func ExampleWithOnResize() {
	ht := hashtable.New[int, int](
		hashtable.WithOnResize(func(oldCap, newCap int) {
			fmt.Printf("grew %d -> %d\n", oldCap, newCap)
		}),
	)

	for i := 0; i < 12; i++ {
		ht.Put(i, i)
	}

	fmt.Println("capacity:", ht.Capacity())
	// Output:
	// grew 16 -> 32
	// capacity: 32
}
