package maxheap_test

import (
	"math/rand"
	"testing"

	"github.com/klassika/klassika/maxheap"
)

// BenchmarkHeap_Push measures repeated insertion into a growing heap.
func BenchmarkHeap_Push(b *testing.B) {
	rnd := rand.New(rand.NewSource(42))
	values := make([]int, b.N)
	for i := range values {
		values[i] = rnd.Int()
	}

	h := maxheap.New[int]()

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h.Push(values[i])
	}
}

// BenchmarkHeap_PushPop measures a steady-state push/pop cycle at size N.
func BenchmarkHeap_PushPop(b *testing.B) {
	const N = 1024

	rnd := rand.New(rand.NewSource(42))
	h := maxheap.New[int]()
	for i := 0; i < N; i++ {
		h.Push(rnd.Int())
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		h.Push(rnd.Int())
		_, _ = h.Pop()
	}
}

// BenchmarkFromSlice measures bottom-up heapify against element count.
func BenchmarkFromSlice(b *testing.B) {
	const N = 10000

	rnd := rand.New(rand.NewSource(42))
	input := make([]int, N)
	for i := range input {
		input[i] = rnd.Int()
	}

	b.ReportAllocs()
	b.SetBytes(int64(N))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = maxheap.FromSlice(input)
	}
}
