package bst

import "golang.org/x/exp/constraints"

// node is a single tree node; left holds strictly smaller values,
// right strictly greater ones.
type node[T constraints.Ordered] struct {
	value T
	left  *node[T]
	right *node[T]
}

// Tree is a binary search tree of distinct ordered values.
// The zero value is an empty tree ready to use.
type Tree[T constraints.Ordered] struct {
	root *node[T]
	size int
}

// New returns an empty binary search tree.
//
// Complexity: O(1)
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Insert places v into the tree and reports whether it was added.
// A duplicate value leaves the tree unchanged and returns false.
//
// Complexity: O(h)
func (t *Tree[T]) Insert(v T) bool {
	if t.root == nil {
		t.root = &node[T]{value: v}
		t.size++

		return true
	}

	cur := t.root
	for {
		switch {
		case v < cur.value:
			if cur.left == nil {
				cur.left = &node[T]{value: v}
				t.size++

				return true
			}
			cur = cur.left
		case v > cur.value:
			if cur.right == nil {
				cur.right = &node[T]{value: v}
				t.size++

				return true
			}
			cur = cur.right
		default:
			// Equal value already present: the tree is a set.
			return false
		}
	}
}

// Contains reports whether v is stored in the tree.
//
// Complexity: O(h)
func (t *Tree[T]) Contains(v T) bool {
	cur := t.root
	for cur != nil {
		switch {
		case v < cur.value:
			cur = cur.left
		case v > cur.value:
			cur = cur.right
		default:
			return true
		}
	}

	return false
}

// Remove deletes v from the tree and reports whether it was present.
//
// The three textbook cases apply:
//  1. leaf: detach it;
//  2. one child: splice the child into the removed node's place;
//  3. two children: copy the in-order successor (minimum of the right
//     subtree) into the node, then remove the successor from the right
//     subtree, where it has at most one child.
//
// Complexity: O(h)
func (t *Tree[T]) Remove(v T) bool {
	var removed bool
	t.root, removed = removeNode(t.root, v)
	if removed {
		t.size--
	}

	return removed
}

// removeNode deletes v from the subtree rooted at n, returning the new
// subtree root and whether a node was removed.
func removeNode[T constraints.Ordered](n *node[T], v T) (*node[T], bool) {
	if n == nil {
		return nil, false
	}

	var removed bool
	switch {
	case v < n.value:
		n.left, removed = removeNode(n.left, v)
		return n, removed
	case v > n.value:
		n.right, removed = removeNode(n.right, v)
		return n, removed
	}

	// n holds v. Cases 1 and 2: at most one child, splice it up.
	if n.left == nil {
		return n.right, true
	}
	if n.right == nil {
		return n.left, true
	}

	// Case 3: two children. The in-order successor is the leftmost node
	// of the right subtree; it carries the smallest value greater than
	// n.value, so moving it here preserves the ordering invariant.
	succ := n.right
	for succ.left != nil {
		succ = succ.left
	}
	n.value = succ.value
	n.right, _ = removeNode(n.right, succ.value)

	return n, true
}

// Min returns the smallest stored value.
// The second return value is false when the tree is empty.
//
// Complexity: O(h)
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}

	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur.value, true
}

// Max returns the greatest stored value.
// The second return value is false when the tree is empty.
//
// Complexity: O(h)
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}

	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.value, true
}

// Len returns the number of stored values.
//
// Complexity: O(1)
func (t *Tree[T]) Len() int { return t.size }

// IsEmpty reports whether the tree holds no values.
//
// Complexity: O(1)
func (t *Tree[T]) IsEmpty() bool { return t.size == 0 }

// InOrder returns all values in ascending order.
//
// Complexity: O(n)
func (t *Tree[T]) InOrder() []T {
	out := make([]T, 0, t.size)
	t.WalkInOrder(func(v T) bool {
		out = append(out, v)

		return true
	})

	return out
}

// WalkInOrder visits every value in ascending order, invoking fn for
// each. Returning false from fn stops the walk early. A nil fn is a
// no-op. The tree must not be mutated during the walk.
//
// Complexity: O(n)
func (t *Tree[T]) WalkInOrder(fn func(v T) bool) {
	if fn == nil {
		return
	}
	walkInOrder(t.root, fn)
}

// walkInOrder recurses left-node-right; it reports false once fn asked
// to stop so ancestors unwind without further visits.
func walkInOrder[T constraints.Ordered](n *node[T], fn func(v T) bool) bool {
	if n == nil {
		return true
	}
	if !walkInOrder(n.left, fn) {
		return false
	}
	if !fn(n.value) {
		return false
	}

	return walkInOrder(n.right, fn)
}
