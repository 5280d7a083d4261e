// Package stack provides a generic last-in-first-out stack backed by a slice.
//
// The zero value is an empty stack ready to use; New exists only to
// pre-size the backing slice. Pop and Peek report absence through an
// ok-bool second return instead of panicking, so callers can drain a
// stack with a plain for loop.
//
// Within this library the stack is consumed by the dfs package, which
// drives its iterative traversal off an explicit stack instead of the
// call stack.
//
// Performance:
//
//   - Push: amortized O(1)
//   - Pop, Peek, Len, IsEmpty: O(1)
//
// The stack is not safe for concurrent use; callers that share one
// across goroutines must serialize access themselves.
package stack
