// Package dfs implements depth-first search traversal, cycle detection,
// and topological sort on a graph.Graph, supporting both directed and
// undirected graphs where appropriate.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     branch before backtracking, driven by an explicit stack.Stack
//     rather than recursion, so deep graphs cannot exhaust the call
//     stack. Supports:
//   - Pre-order OnVisit hook with error aborts
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Full-graph (forest) traversal across disconnected components
//   - DetectCycles: enumerates all simple cycles in directed or undirected
//     graphs using vertex coloring (White, Gray, Black) with back-edge
//     recording and canonical signature deduplication.
//   - TopologicalSort: orders the vertices of a directed acyclic graph
//     (DAG) so every arc points forward, using Kahn's algorithm with a
//     min-heap of ready vertices; returns ErrCycleDetected if cycles
//     exist. Ties always resolve to the smallest vertex ID.
//
// Why:
//   - Build and analyze dependency graphs (build systems, package managers, task schedulers)
//   - Determine safe execution orders in DAGs
//   - Detect cycles to prevent infinite loops or inconsistent states
//   - Provide a foundation for SCC detection, connectivity, and pathfinding
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers for cycle detection
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, OnVisit, MaxDepth, FilterNeighbor, FullTraversal
//   - DFSResult: collects pre-order Order, Depth, Parent, Visited maps
//
// Determinism:
//
//	Because graph.Neighbors returns IDs sorted and the walker pushes
//	them in reverse, neighbors pop in ascending order and the visit
//	sequence is fully reproducible.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E + C*L²), Memory O(V+L_max)
//     (C=#cycles, L=avg cycle length)
//   - TopologicalSort: Time O(V log V + E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - ErrCycleDetected        cycle discovered in DAG operations
//   - ErrNeighborFetch        neighbor lookup failed mid-traversal
//   - context.Canceled        DFS canceled via context
//   - hook errors             propagated from OnVisit
//
// Functions:
//
//   - DFS(g *graph.Graph, startID string, opts ...Option) (*DFSResult, error)
//     perform depth-first traversal from startID
//   - DetectCycles(g *graph.Graph) (bool, [][]string, error)
//     report existence and list of simple cycles
//   - TopologicalSort(g *graph.Graph, options ...TopoOption) ([]string, error)
//     return topological order or ErrCycleDetected
//   - DefaultOptions(), WithContext(), WithOnVisit(),
//     WithMaxDepth(), WithFilterNeighbor(), WithFullTraversal()
package dfs
