package maxheap

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// ErrNilLess indicates a nil ordering function was passed to NewFunc or
// FromSliceFunc. Construction panics with this message: a heap without an
// ordering cannot do anything meaningful.
var ErrNilLess = errors.New("maxheap: less function is nil")

// Heap is a binary max-heap of T. The element for which less reports no
// greater element sits at the root and is returned first by Pop.
//
// A Heap must be created by New, NewFunc, FromSlice, or FromSliceFunc.
type Heap[T any] struct {
	items []T
	less  func(a, b T) bool // strict ordering: less(a, b) means a orders below b
}

// New returns an empty max-heap ordered by the natural < of T, so Pop
// yields elements in descending order.
//
// Complexity: O(1)
func New[T constraints.Ordered]() *Heap[T] {
	return &Heap[T]{less: func(a, b T) bool { return a < b }}
}

// NewFunc returns an empty max-heap ordered by less: Pop yields the
// element that no other element exceeds under less.
// Panics with ErrNilLess if less is nil.
//
// Complexity: O(1)
func NewFunc[T any](less func(a, b T) bool) *Heap[T] {
	if less == nil {
		panic(ErrNilLess.Error())
	}

	return &Heap[T]{less: less}
}

// FromSlice builds a max-heap from items using bottom-up heapify.
// The input slice is copied; the caller's slice is never mutated.
//
// Complexity: O(n)
func FromSlice[T constraints.Ordered](items []T) *Heap[T] {
	h := New[T]()
	h.heapify(items)

	return h
}

// FromSliceFunc builds a max-heap from items under the given ordering.
// Panics with ErrNilLess if less is nil.
//
// Complexity: O(n)
func FromSliceFunc[T any](items []T, less func(a, b T) bool) *Heap[T] {
	h := NewFunc(less)
	h.heapify(items)

	return h
}

// Push adds v to the heap, restoring the heap property by sifting the new
// element up from the last slot.
//
// Complexity: O(log n) amortized
func (h *Heap[T]) Push(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the maximum element.
// The second return value is false when the heap is empty.
//
// Complexity: O(log n)
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	n := len(h.items)
	top := h.items[0]
	// Move the last leaf to the root, shrink, then sink it to its place.
	h.items[0] = h.items[n-1]
	var zero T
	h.items[n-1] = zero // release the reference for GC
	h.items = h.items[:n-1]
	if len(h.items) > 0 {
		h.siftDown(0)
	}

	return top, true
}

// Peek returns the maximum element without removing it.
// The second return value is false when the heap is empty.
//
// Complexity: O(1)
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}

	return h.items[0], true
}

// Len returns the number of elements stored.
//
// Complexity: O(1)
func (h *Heap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no elements.
//
// Complexity: O(1)
func (h *Heap[T]) IsEmpty() bool { return len(h.items) == 0 }

// heapify replaces the heap contents with a copy of items and restores
// the heap property bottom-up: sift down every internal node starting
// from the last parent. Leaves are trivially valid heaps already.
func (h *Heap[T]) heapify(items []T) {
	h.items = make([]T, len(items))
	copy(h.items, items)
	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}

// siftUp bubbles the element at index i toward the root until its parent
// orders at or above it.
func (h *Heap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		// Stop once the parent no longer orders below the child.
		if !h.less(h.items[parent], h.items[i]) {
			return
		}
		h.items[parent], h.items[i] = h.items[i], h.items[parent]
		i = parent
	}
}

// siftDown sinks the element at index i until both children order at or
// below it, always swapping with the greater child to keep the root
// maximal.
func (h *Heap[T]) siftDown(i int) {
	n := len(h.items)
	for {
		largest := i
		left, right := 2*i+1, 2*i+2
		if left < n && h.less(h.items[largest], h.items[left]) {
			largest = left
		}
		if right < n && h.less(h.items[largest], h.items[right]) {
			largest = right
		}
		if largest == i {
			return
		}
		h.items[i], h.items[largest] = h.items[largest], h.items[i]
		i = largest
	}
}
