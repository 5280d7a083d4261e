package graph

import "sort"

// Graph is an adjacency-list graph over string vertex IDs. Adjacency
// is a set per vertex, so parallel edges collapse into one. Create
// graphs with New; the zero value is not ready to use.
type Graph struct {
	directed   bool
	allowLoops bool
	adjacency  map[string]map[string]struct{}
	edgeCount  int
}

// New returns an empty graph, undirected unless WithDirected says
// otherwise.
func New(opts ...Option) *Graph {
	g := &Graph{adjacency: make(map[string]map[string]struct{})}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// AddVertex inserts an isolated vertex. Adding an existing vertex is
// a no-op. Returns ErrEmptyVertexID for an empty ID.
//
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.ensureVertex(id)

	return nil
}

// HasVertex reports whether id is in the graph.
//
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// RemoveVertex deletes id and every edge incident to it. Returns
// ErrVertexNotFound if the vertex is absent.
//
// Complexity: O(V) directed, O(degree) undirected.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	nbrs, ok := g.adjacency[id]
	if !ok {
		return ErrVertexNotFound
	}

	if g.directed {
		// Out-edges vanish with the vertex; in-edges need a scan.
		g.edgeCount -= len(nbrs)
		delete(g.adjacency, id)
		for _, peers := range g.adjacency {
			if _, ok := peers[id]; ok {
				delete(peers, id)
				g.edgeCount--
			}
		}

		return nil
	}

	// Undirected: every incident edge has a mirror at the neighbor,
	// except a self-loop, which lives in this vertex's set alone.
	for nbr := range nbrs {
		if nbr != id {
			delete(g.adjacency[nbr], id)
		}
	}
	g.edgeCount -= len(nbrs)
	delete(g.adjacency, id)

	return nil
}

// AddEdge inserts an edge from one vertex to another, auto-adding
// missing endpoints. In an undirected graph the edge is traversable
// both ways. Adding an edge that already exists is a no-op. Self-loops
// return ErrLoopNotAllowed unless WithLoops was set.
//
// Complexity: O(1) expected.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.ensureVertex(from)
	g.ensureVertex(to)

	if _, ok := g.adjacency[from][to]; ok {
		// Set semantics: the edge is already there.
		return nil
	}

	g.adjacency[from][to] = struct{}{}
	if !g.directed {
		g.adjacency[to][from] = struct{}{}
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether an edge runs from one vertex to another.
// In an undirected graph the answer is symmetric.
//
// Complexity: O(1) expected.
func (g *Graph) HasEdge(from, to string) bool {
	nbrs, ok := g.adjacency[from]
	if !ok {
		return false
	}
	_, ok = nbrs[to]

	return ok
}

// RemoveEdge deletes the edge between two vertices, the mirror
// included for undirected graphs. Returns ErrEdgeNotFound when no
// such edge exists.
//
// Complexity: O(1) expected.
func (g *Graph) RemoveEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	nbrs, ok := g.adjacency[from]
	if !ok {
		return ErrEdgeNotFound
	}
	if _, ok = nbrs[to]; !ok {
		return ErrEdgeNotFound
	}

	delete(nbrs, to)
	if !g.directed && from != to {
		delete(g.adjacency[to], from)
	}
	g.edgeCount--

	return nil
}

// Neighbors returns the IDs a vertex connects to, sorted. For a
// directed graph these are the out-neighbors. Returns
// ErrVertexNotFound if the vertex is absent.
//
// Complexity: O(degree log degree)
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]string, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Strings(out)

	return out, nil
}

// Vertices returns every vertex ID, sorted.
//
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1)
func (g *Graph) VertexCount() int { return len(g.adjacency) }

// EdgeCount returns the number of edges. An undirected edge counts
// once, not once per direction.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int { return g.edgeCount }

// ensureVertex inserts id with an empty adjacency set if absent.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]struct{})
	}
}
