// Package graph implements an adjacency-list graph with string vertex
// IDs, the substrate the bfs and dfs packages traverse.
//
// 🚀 What is an adjacency list?
//
// An adjacency list keeps, for every vertex, the set of vertices it
// connects to. Space is O(V + E) and enumerating a vertex's neighbors
// is proportional to its degree, which makes the representation the
// right one for sparse graphs and for traversal algorithms.
//
// ✨ Key features
//
//   - Undirected by default; WithDirected(true) switches every edge
//     to one-way.
//   - Set semantics: at most one edge per vertex pair, and adding an
//     existing vertex or edge again is a no-op, not an error.
//   - Self-loops are rejected unless WithLoops() permits them.
//   - AddEdge auto-adds missing endpoints, so graphs can be built
//     from an edge list alone.
//   - Deterministic reads: Vertices and Neighbors return sorted
//     slices, so traversal order is reproducible.
//
// ⚙️ Usage
//
//	g := graph.New()
//	g.AddEdge("A", "B")
//	g.AddEdge("B", "C")
//
//	nbrs, _ := g.Neighbors("B") // ["A", "C"]
//
// Performance
//
//   - AddVertex / HasVertex / HasEdge: O(1) expected.
//   - AddEdge / RemoveEdge: O(1) expected.
//   - RemoveVertex: O(V) directed (in-edge scan), O(degree) undirected.
//   - Neighbors: O(degree log degree) for the sort.
//   - Vertices: O(V log V).
//
// A Graph is not safe for concurrent use; guard it externally if
// multiple goroutines share one.
package graph
