// Options, hooks, result types, and sentinel errors for breadth-first
// traversal over a graph.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to BFS.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex ID does not
	// exist in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrOptionViolation is returned by BFS when one of the supplied
	// options carries an invalid value, such as a negative MaxDepth.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors wraps a failure to read a vertex's adjacency from the
	// graph mid-traversal.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures optional behavior of BFS traversal.
// Use with BFS(g, startID, opts...).
type Option func(*BFSOptions)

// BFSOptions holds configurable parameters for BFS traversal.
// Hooks left nil are simply not called; traversal cost stays O(V+E)
// as long as hooks and the filter are O(1).
type BFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the walk with ctx.Err().
	Ctx context.Context

	// OnEnqueue, if non-nil, fires the moment a vertex is discovered and
	// scheduled, before it is visited. Receives the vertex ID and its
	// distance from the start.
	OnEnqueue func(id string, depth int)

	// OnDequeue, if non-nil, fires when a scheduled vertex is taken up
	// for processing, immediately before OnVisit.
	OnDequeue func(id string, depth int)

	// OnVisit, if non-nil, is invoked once per visited vertex, after it
	// is appended to BFSResult.Order. Returning an error aborts the walk
	// with that error (wrapped).
	OnVisit func(id string, depth int) error

	// MaxDepth bounds the walk: vertices at this depth are visited but
	// their neighbors are not scheduled. Zero means no limit.
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted for every edge
	// curr→neighbor before scheduling. Return false to ignore the edge.
	FilterNeighbor func(curr, neighbor string) bool

	// err holds a bad option value until BFS can surface it
	err error
}

// DefaultOptions returns a BFSOptions struct with:
//   - Background context
//   - no hooks and no filtering
//   - no depth limit (MaxDepth = 0)
func DefaultOptions() BFSOptions {
	return BFSOptions{Ctx: context.Background()}
}

// WithContext returns an Option that sets the Context for BFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue returns an Option that installs fn as the discovery hook.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		o.OnEnqueue = fn
	}
}

// WithOnDequeue returns an Option that installs fn as the pickup hook,
// fired just before each visit.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *BFSOptions) {
		o.OnDequeue = fn
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
// An error returned by fn stops the walk.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that bounds traversal depth to d edges
// from the start. d == 0 means no limit; a negative d is rejected by BFS
// with ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: negative MaxDepth %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor returns an Option that filters edges. For each edge
// curr→neighbor the walk consults fn and ignores the edge when fn
// returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		o.FilterNeighbor = fn
	}
}

// BFSResult captures the outcome of a breadth-first traversal.
type BFSResult struct {
	// Order records vertices in visit sequence, which is level by level:
	// all vertices at distance d appear before any vertex at d+1.
	Order []string

	// Depth maps each reached vertex ID to its distance in edges from
	// the start. Since BFS discovers vertices in non-decreasing
	// distance, this is the unweighted shortest-path distance.
	Depth map[string]int

	// Parent maps each reached vertex ID to the vertex that discovered
	// it. The start vertex does not appear in this map.
	Parent map[string]string
}

// PathTo reconstructs a fewest-hop path from the start vertex to dest.
// Depth[dest] fixes the path length exactly, so the slice is allocated
// once and filled back to front along Parent links.
// Returns an error if dest was never reached.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	hops, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}

	path := make([]string, hops+1)
	for v, i := dest, hops; i >= 0; i-- {
		path[i] = v
		v = r.Parent[v]
	}

	return path, nil
}
