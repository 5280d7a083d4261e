// Breadth-first traversal core: the frontier loop.
//
// The walk advances level by level. All vertices at distance d form one
// frontier; expanding them accumulates the distance d+1 frontier. A
// single FIFO queue would interleave the same work, but keeping whole
// levels makes the depth of every hook call explicit.
package bfs

import (
	"fmt"

	"github.com/klassika/klassika/graph"
)

// traversal holds the mutable state of one BFS run.
type traversal struct {
	g        *graph.Graph
	opts     BFSOptions
	res      *BFSResult
	seen     map[string]bool
	frontier []string // vertices at the current depth, in discovery order
	next     []string // vertices discovered for the following depth
}

// BFS performs breadth-first search on graph g from startID, visiting
// vertices in non-decreasing distance. Every reached vertex is recorded
// in the BFSResult with its depth and its discoverer, so unweighted
// shortest paths fall out via PathTo.
//
// Returns ErrGraphNil, ErrStartVertexNotFound, or ErrOptionViolation on
// invalid input, ErrNeighbors when the graph fails mid-walk, the
// context's error on cancellation, or a wrapped OnVisit hook error. The
// partial result is returned alongside any traversal error.
func BFS(g *graph.Graph, startID string, opts ...Option) (*BFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options, surfacing any recorded violation
	bopts := DefaultOptions()
	for _, fn := range opts {
		fn(&bopts)
	}
	if bopts.err != nil {
		return nil, bopts.err
	}

	// 3. Verify the start vertex
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize state with capacity hints
	n := g.VertexCount()
	t := &traversal{
		g:    g,
		opts: bopts,
		seen: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// 5. Walk
	return t.res, t.run(startID)
}

// run seeds the first frontier with startID and consumes the graph level
// by level until no vertices remain, the context is cancelled, or a hook
// aborts.
func (t *traversal) run(startID string) error {
	t.schedule(startID, "", 0)

	for depth := 0; len(t.next) > 0; depth++ {
		// Promote the accumulated layer; recycle the drained one.
		t.frontier, t.next = t.next, t.frontier[:0]

		for _, id := range t.frontier {
			if err := t.interrupted(); err != nil {
				return err
			}

			if t.opts.OnDequeue != nil {
				t.opts.OnDequeue(id, depth)
			}
			t.res.Order = append(t.res.Order, id)
			if t.opts.OnVisit != nil {
				if err := t.opts.OnVisit(id, depth); err != nil {
					return fmt.Errorf("bfs: OnVisit hook for %q: %w", id, err)
				}
			}

			// Depth limit: the vertex is visited but not expanded.
			if t.opts.MaxDepth > 0 && depth >= t.opts.MaxDepth {
				continue
			}

			if err := t.expand(id, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}

// expand reads the adjacency of id and schedules every unseen neighbor
// that survives the filter. Neighbors come back sorted, so discovery
// order inside a level is reproducible.
func (t *traversal) expand(id string, depth int) error {
	nbs, err := t.g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: reading adjacency of %q: %v", ErrNeighbors, id, err)
	}

	for _, nbr := range nbs {
		if err := t.interrupted(); err != nil {
			return err
		}
		if t.opts.FilterNeighbor != nil && !t.opts.FilterNeighbor(id, nbr) {
			continue
		}
		if t.seen[nbr] {
			continue
		}
		t.schedule(nbr, id, depth)
	}

	return nil
}

// schedule marks id as discovered at the given depth from parent, fires
// OnEnqueue, and appends it to the next layer. Marking at discovery time
// keeps a vertex from being scheduled twice within one level.
func (t *traversal) schedule(id, parent string, depth int) {
	t.seen[id] = true
	t.res.Depth[id] = depth
	if parent != "" {
		t.res.Parent[id] = parent
	}
	if t.opts.OnEnqueue != nil {
		t.opts.OnEnqueue(id, depth)
	}
	t.next = append(t.next, id)
}

// interrupted reports the context error, if any, without blocking.
func (t *traversal) interrupted() error {
	select {
	case <-t.opts.Ctx.Done():
		return t.opts.Ctx.Err()
	default:
		return nil
	}
}
