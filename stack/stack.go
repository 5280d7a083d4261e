package stack

// Stack is a LIFO container of T backed by a growable slice.
// The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

// New returns an empty stack whose backing slice is pre-sized to hold
// capacity elements without reallocation. Negative capacities are
// treated as zero.
//
// Complexity: O(1)
func New[T any](capacity int) *Stack[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Stack[T]{items: make([]T, 0, capacity)}
}

// Push places v on top of the stack.
//
// Complexity: amortized O(1)
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top element.
// The second return value is false when the stack is empty.
//
// Complexity: O(1)
func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	n := len(s.items)
	top := s.items[n-1]
	var zero T
	s.items[n-1] = zero // release the reference for GC
	s.items = s.items[:n-1]

	return top, true
}

// Peek returns the top element without removing it.
// The second return value is false when the stack is empty.
//
// Complexity: O(1)
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Len returns the number of elements on the stack.
//
// Complexity: O(1)
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack holds no elements.
//
// Complexity: O(1)
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
