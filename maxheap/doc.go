// Package maxheap implements a binary max-heap over a growable slice,
// with the sift-up and sift-down mechanics written out explicitly rather
// than delegated to container/heap.
//
// 🚀 What is a max-heap?
//
//	A complete binary tree stored in an array where every parent orders
//	at or above its children. The greatest element is always at index 0,
//	so Peek is O(1) and Pop is O(log n). Classic uses:
//	  • priority scheduling (largest priority first)
//	  • streaming top-k selection
//	  • heapsort
//
// ✨ Key features:
//   - New[T constraints.Ordered]() for natural ordering of numbers/strings
//   - NewFunc for caller-defined ordering over arbitrary element types
//   - FromSlice / FromSliceFunc: O(n) bottom-up heapify of existing data
//   - absence reported via ok-bool (Pop/Peek on an empty heap is not an error)
//
// ⚙️ Usage:
//
//	h := maxheap.New[int]()
//	h.Push(3)
//	h.Push(41)
//	h.Push(7)
//	top, _ := h.Pop() // 41
//
// Performance:
//
//   - Push:      O(log n) amortized
//   - Pop:       O(log n)
//   - Peek:      O(1)
//   - FromSlice: O(n)
//
// The heap performs no internal locking. Callers sharing a heap across
// goroutines must guard every operation with one exclusive lock.
package maxheap
