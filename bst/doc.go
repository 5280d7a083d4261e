// Package bst implements an unbalanced binary search tree over ordered
// element types.
//
// 🚀 What is a BST?
//
//	A binary tree in which every node's left subtree holds strictly
//	smaller values and its right subtree strictly greater ones. The
//	ordering invariant makes search, insert, and remove proportional to
//	tree height, and an in-order walk yields the elements sorted.
//
// ✨ Key features:
//   - Insert / Contains / Remove with the three textbook removal cases
//     (leaf, one child, two children via in-order successor)
//   - Min / Max spine walks
//   - InOrder snapshot and WalkInOrder early-stop traversal
//   - duplicates rejected: the tree is a set, Insert reports acceptance
//
// ⚙️ Usage:
//
//	t := bst.New[int]()
//	t.Insert(8)
//	t.Insert(3)
//	t.Insert(10)
//	fmt.Println(t.InOrder()) // [3 8 10]
//
// Complexity:
//
//   - Insert, Contains, Remove, Min, Max: O(h) where h is the tree
//     height: O(log n) on balanced input, O(n) worst case on sorted
//     input. No self-balancing is performed; that is the point of the
//     exercise, not an omission.
//   - InOrder, WalkInOrder: O(n)
//
// The tree performs no internal locking. Callers sharing a tree across
// goroutines must guard every operation with one exclusive lock.
package bst
