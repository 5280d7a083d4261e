// Tunable options, result types, and error definitions for depth-first
// search over a graph.Graph.
package dfs

import (
	"context"
	"errors"
)

// Vertex visitation states used by DetectCycles.
const (
	White = iota // White: the vertex has not been visited yet.
	Gray         // Gray: the vertex is on the current exploration path.
	Black        // Black: the vertex and all its descendants are fully explored.
)

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to DFS,
	// TopologicalSort, or DetectCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the specified start vertex ID
	// does not exist in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// It controls hooks, limits, filtering, and full-graph mode.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context will abort DFS early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is first popped from
	// the stack (pre-order), after it is appended to result.Order.
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// MaxDepth, if non-negative, stops expansion at the given depth:
	// vertices at depth MaxDepth are visited but their neighbors are not
	// pushed. A depth of 0 visits only the start vertex. Default is -1
	// (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before push.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id string) bool

	// FullTraversal, if true, runs DFS from every unvisited vertex in the
	// graph, covering disconnected components (forest traversal). Trees are
	// rooted in ascending vertex order. Default is false.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with:
//   - Background context
//   - No pre-order hook
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
//   - Single-source traversal (FullTraversal = false)
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:            context.Background(),
		OnVisit:        nil,
		MaxDepth:       -1,
		FilterNeighbor: nil,
		FullTraversal:  false,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx // use provided context for cancellation
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a vertex is first popped from the stack.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start vertex is visited.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is skipped and counted in
// DFSResult.SkippedNeighbors.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal returns an Option that enables full-graph traversal.
// When set, DFS will restart from each unvisited vertex, covering
// disconnected components.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// It reports pre-order visit sequence, discovery depths, parent links,
// visited flags, and diagnostics like SkippedNeighbors.
type DFSResult struct {
	// Order records vertices in the sequence they were first popped
	// from the stack (pre-order).
	Order []string

	// Depth maps each vertex ID to its distance (#edges) from the root
	// of its DFS tree, measured along the discovery path.
	Depth map[string]int

	// Parent maps each vertex ID to the ID of the vertex from which it
	// was first discovered. Tree roots do not appear in this map.
	Parent map[string]string

	// Visited flags which vertices were reached during the traversal.
	Visited map[string]bool

	// SkippedNeighbors reports how many neighbors were skipped due to
	// FilterNeighbor returning false, aggregated across all trees.
	SkippedNeighbors int
}
