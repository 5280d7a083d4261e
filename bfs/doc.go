// Package bfs implements breadth-first traversal on a graph.Graph,
// producing unweighted shortest-path depths, parent links, and the
// level-by-level visit order.
//
// What:
//
//   - BFS (Breadth-First Search): visits vertices in non-decreasing
//     distance from a start vertex, one frontier at a time. Supports:
//   - OnEnqueue / OnDequeue / OnVisit hooks (OnVisit may abort)
//   - Cancellation via context.Context
//   - Depth limiting (vertices at the limit are visited, not expanded)
//   - Per-edge neighbor filtering
//   - BFSResult: Order, Depth, and Parent for every reached vertex,
//     plus PathTo for fewest-hop path reconstruction.
//
// Why:
//   - Unweighted shortest paths: Depth is the hop count, PathTo the route
//   - Reachability and connected-component membership
//   - Level layering: radius-k neighborhoods via WithMaxDepth
//
// Determinism:
//
//	graph.Neighbors returns IDs sorted, and each frontier preserves
//	discovery order, so the visit sequence is fully reproducible.
//
// Complexity:
//
//   - Time:   O(V + E) with O(1) hooks and filter
//   - Memory: O(V) for the frontiers, seen set, and result maps
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrOptionViolation      invalid option value (negative MaxDepth)
//   - ErrNeighbors            adjacency lookup failed mid-walk
//   - context.Canceled        walk cancelled via context
//   - hook errors             propagated from OnVisit
//
// Functions:
//
//   - BFS(g *graph.Graph, startID string, opts ...Option) (*BFSResult, error)
//     perform breadth-first traversal from startID
//   - (*BFSResult).PathTo(dest string) ([]string, error)
//     reconstruct a fewest-hop path from the start to dest
//   - DefaultOptions(), WithContext(), WithOnEnqueue(), WithOnDequeue(),
//     WithOnVisit(), WithMaxDepth(), WithFilterNeighbor()
package bfs
