// Depth-first traversal core: the walker type and its stack loop.
//
// DFS explores as deep as possible along each branch before backtracking,
// driven by an explicit stack.Stack instead of recursion, with optional
// hooks, depth limiting, neighbor filtering, and forest traversal.
package dfs

import (
	"fmt"

	"github.com/klassika/klassika/graph"
	"github.com/klassika/klassika/stack"
)

// frame pairs a vertex ID with its DFS depth and its discoverer's ID.
type frame struct {
	id     string
	depth  int
	parent string // empty for tree roots
}

// dfsWalker encapsulates mutable DFS state.
type dfsWalker struct {
	graph   *graph.Graph
	opts    DFSOptions
	stack   *stack.Stack[frame]
	res     *DFSResult
	skipped int
}

// DFS performs depth-first search on graph g. If opts include
// WithFullTraversal, it covers all disconnected components; otherwise it
// starts only from startID. Returns DFSResult or an error if aborted by
// context or hook.
func DFS(g *graph.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Single-source mode: verify startID
	if !dopts.FullTraversal && !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result and stack with capacity hints
	n := g.VertexCount()
	w := &dfsWalker{
		graph: g,
		opts:  dopts,
		stack: stack.New[frame](n),
		res: &DFSResult{
			Order:   make([]string, 0, n),
			Depth:   make(map[string]int, n),
			Parent:  make(map[string]string, n),
			Visited: make(map[string]bool, n),
		},
	}

	// 5. Traverse: forest or single tree
	if dopts.FullTraversal {
		for _, v := range g.Vertices() {
			if w.res.Visited[v] {
				continue
			}
			if err := w.traverse(v); err != nil {
				return w.res, err
			}
		}
	} else if err := w.traverse(startID); err != nil {
		return w.res, err
	}

	// 6. Expose diagnostics
	w.res.SkippedNeighbors = w.skipped

	return w.res, nil
}

// traverse runs one DFS tree rooted at rootID, draining the stack.
// A vertex may be stacked more than once before its first visit; only the
// first pop counts, and later duplicates are discarded as stale.
func (w *dfsWalker) traverse(rootID string) error {
	w.stack.Push(frame{id: rootID})

	for !w.stack.IsEmpty() {
		// cancellation check (once per pop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		f, _ := w.stack.Pop()
		if w.res.Visited[f.id] {
			continue
		}

		if err := w.visit(f); err != nil {
			return err
		}

		// Depth limit: the vertex is visited but not expanded
		if w.opts.MaxDepth >= 0 && f.depth >= w.opts.MaxDepth {
			continue
		}

		if err := w.pushNeighbors(f); err != nil {
			return err
		}
	}

	return nil
}

// visit marks f.id visited, records depth, parent, and pre-order position,
// then fires the OnVisit hook.
func (w *dfsWalker) visit(f frame) error {
	w.res.Visited[f.id] = true
	w.res.Depth[f.id] = f.depth
	if f.parent != "" {
		w.res.Parent[f.id] = f.parent
	}
	w.res.Order = append(w.res.Order, f.id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(f.id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", f.id, err)
		}
	}

	return nil
}

// pushNeighbors stacks the unvisited neighbors of f in reverse sorted
// order, so they pop in ascending order and the visit sequence matches
// recursive DFS over a sorted adjacency list. Already-visited neighbors
// (including the undirected backtrack edge and any self-loop) are skipped.
func (w *dfsWalker) pushNeighbors(f frame) error {
	nbs, err := w.graph.Neighbors(f.id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", f.id, err)
	}

	var nid string
	for i := len(nbs) - 1; i >= 0; i-- {
		nid = nbs[i]

		// Neighbor filtering
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nid) {
			w.skipped++
			continue
		}

		if w.res.Visited[nid] {
			continue
		}

		w.stack.Push(frame{id: nid, depth: f.depth + 1, parent: f.id})
	}

	return nil
}
