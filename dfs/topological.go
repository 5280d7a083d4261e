// Topological ordering of directed acyclic graphs.
//
// TopologicalSort runs Kahn's algorithm: repeatedly emit a vertex with
// no remaining incoming edges and relax its outgoing arcs. Ready
// vertices wait in a min-heap keyed by ID, so among all valid orders
// the lexicographically smallest one is produced, deterministically.
//
// Complexity:
//
//   - Time:   O(V log V + E) (every vertex passes through the heap once)
//   - Memory: O(V)           (in-degree map plus the heap)
package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/klassika/klassika/graph"
	"github.com/klassika/klassika/maxheap"
)

// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
var ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort returns an ordering of all vertices in g in which
// every edge u→v places u before v. Ties between simultaneously ready
// vertices resolve to the smaller ID, so the result is deterministic.
//
// Returns ErrGraphNil for a nil graph, an error for undirected graphs,
// ErrCycleDetected when no full ordering exists, ErrNeighborFetch when
// adjacency lookup fails, and the context's error on cancellation.
func TopologicalSort(g *graph.Graph, options ...TopoOption) ([]string, error) {
	// 1. Validate the graph
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, fmt.Errorf("dfs: TopologicalSort requires directed graph")
	}

	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 3. Count incoming edges per vertex
	verts := g.Vertices()
	indegree := make(map[string]int, len(verts))
	for _, v := range verts {
		select {
		case <-opts.ctx.Done():
			return nil, opts.ctx.Err()
		default:
		}
		nbs, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, nbr := range nbs {
			indegree[nbr]++
		}
	}

	// 4. Seed the ready set. Ordering the heap by a > b turns the
	// max-heap into a min-heap on IDs: Pop always yields the smallest.
	ready := maxheap.NewFunc(func(a, b string) bool { return a > b })
	for _, v := range verts {
		if indegree[v] == 0 {
			ready.Push(v)
		}
	}

	// 5. Emit ready vertices, relaxing their outgoing arcs
	order := make([]string, 0, len(verts))
	for !ready.IsEmpty() {
		select {
		case <-opts.ctx.Done():
			return nil, opts.ctx.Err()
		default:
		}

		v, _ := ready.Pop()
		order = append(order, v)

		nbs, err := g.Neighbors(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNeighborFetch, err)
		}
		for _, nbr := range nbs {
			indegree[nbr]--
			if indegree[nbr] == 0 {
				ready.Push(nbr)
			}
		}
	}

	// 6. Vertices still waiting on an incoming edge sit on a cycle
	if len(order) != len(verts) {
		return nil, ErrCycleDetected
	}

	return order, nil
}
