// Package klassika is an in-memory playground of classic data
// structures and the algorithms built on top of them: hash tables,
// heaps, search trees, stacks, and graph traversals.
//
// 🚀 What is klassika?
//
//	A small, beginner-friendly library that brings together:
//		• hashtable: separate-chaining hash table with dynamic resizing
//		• maxheap:   binary max-heap, also the topological sort's ready queue
//		• bst:       unbalanced binary search tree with in-order walks
//		• stack:     generic LIFO, also driving the iterative DFS walker
//		• graph:     adjacency-list graph, directed or undirected
//		• bfs / dfs: traversals with hooks, depth limits and cancellation
//
// ✨ Why choose klassika?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – sorted adjacency makes every traversal reproducible
//   - Pure Go – type-safe generics, no cgo
//   - Extensible – custom hashers, orderings and traversal hooks
//
// Everything is organized under focused subpackages:
//
//	hashtable/ — Table[K,V]: Put/Get/Remove with load-factor growth
//	maxheap/   — Heap[T]: Push/Pop/Peek priority queue
//	bst/       — Tree[T]: Insert/Contains/Remove, Min/Max, InOrder
//	stack/     — Stack[T]: Push/Pop/Peek
//	graph/     — Graph: AddVertex/AddEdge/Neighbors over adjacency sets
//	bfs/       — breadth-first search, fewest-hop paths
//	dfs/       — depth-first search, cycle detection, topological sort
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	represents a square with four vertices and four edges.
//
//	go get github.com/klassika/klassika
package klassika
