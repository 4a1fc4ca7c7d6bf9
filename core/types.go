package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph construction and validation.
var (
	// ErrInvalidVertexCount describes a vertex count n < 0. NewGraph panics
	// on a negative n instead of returning it; no function in this package
	// returns this error.
	ErrInvalidVertexCount = errors.New("core: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint is outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeWeight indicates an edge was added with a negative weight.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")

	// ErrSourceOutOfRange indicates an SSSP source index is outside [0, n).
	ErrSourceOutOfRange = errors.New("core: source vertex index out of range")
)

// Edge is one outgoing arc (To, Weight) in a vertex's adjacency list.
type Edge struct {
	To     int
	Weight float64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*Graph)

// WithAdjCapacityHint pre-sizes every vertex's adjacency slice to hint,
// avoiding repeated slice growth when the average out-degree is known
// ahead of time.
func WithAdjCapacityHint(hint int) GraphOption {
	return func(g *Graph) {
		g.adjCapHint = hint
	}
}

// Graph is a dense, directed, non-negatively weighted graph. Vertices are
// integers in [0, n). A Graph is built via NewGraph/AddEdge and is treated
// as immutable once passed to an algorithm — there is no internal locking
// because, per the algorithm's concurrency model, a single Graph is only
// ever read by a single in-flight SSSP call.
type Graph struct {
	n          int
	adj        [][]Edge
	adjCapHint int
}

// NewGraph allocates an empty Graph over n vertices. n must be >= 0;
// NewGraph panics on a negative n since it indicates a programmer error
// at construction time, not a runtime input-validation condition (the
// caller controls n directly; it is never derived from untrusted input
// without the caller's own checks).
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		panic(fmt.Sprintf("core: NewGraph: negative vertex count %d", n))
	}

	g := &Graph{n: n}
	for _, opt := range opts {
		opt(g)
	}

	g.adj = make([][]Edge, n)
	if g.adjCapHint > 0 {
		for i := range g.adj {
			g.adj[i] = make([]Edge, 0, g.adjCapHint)
		}
	}

	return g
}

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// AddEdge appends a directed arc u->v with weight w. Weight must be
// non-negative and u, v must both lie in [0, N()), or AddEdge returns a
// sentinel error without mutating the graph.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return fmt.Errorf("%w: edge %d->%d, n=%d", ErrVertexOutOfRange, u, v, g.n)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d->%d weight=%g", ErrNegativeWeight, u, v, w)
	}

	g.adj[u] = append(g.adj[u], Edge{To: v, Weight: w})

	return nil
}

// Neighbors returns the outgoing edges of vertex u. The returned slice is
// shared with the Graph's internal storage and must not be mutated.
func (g *Graph) Neighbors(u int) []Edge {
	return g.adj[u]
}

// Validate scans every adjacency list and reports the first invalid edge
// found: an out-of-range target or a negative weight. It also verifies
// source lies in [0, N()). Validate is intended to run once, before any
// algorithm touches the graph, per the "fail fast, no recovery" error
// taxonomy — AddEdge already rejects bad edges at insertion time, but
// Validate re-checks the whole graph in one pass for callers who built a
// Graph by means other than AddEdge (e.g. direct struct construction in
// tests) or who want a single upfront guarantee before a long-running call.
func (g *Graph) Validate(source int) error {
	if source < 0 || source >= g.n {
		return fmt.Errorf("%w: source=%d, n=%d", ErrSourceOutOfRange, source, g.n)
	}
	for u, edges := range g.adj {
		for _, e := range edges {
			if e.To < 0 || e.To >= g.n {
				return fmt.Errorf("%w: edge %d->%d, n=%d", ErrVertexOutOfRange, u, e.To, g.n)
			}
			if e.Weight < 0 {
				return fmt.Errorf("%w: edge %d->%d weight=%g", ErrNegativeWeight, u, e.To, e.Weight)
			}
		}
	}

	return nil
}
