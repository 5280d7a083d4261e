package graph

import "errors"

var (
	// ErrEmptyVertexID is returned when an operation receives an
	// empty string as a vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound is returned when an operation names a vertex
	// the graph does not contain.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound is returned by RemoveEdge when no such edge
	// exists.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed is returned by AddEdge for a self-loop unless
	// WithLoops was set.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithDirected makes every edge one-way when directed is true.
// The default is an undirected graph.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}
