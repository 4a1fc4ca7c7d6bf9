// Package dssp computes single-source shortest paths on a directed,
// non-negatively weighted graph using the Duan-Mao-Mao-Shu-Yin algorithm
// ("Breaking the Sorting Barrier for Directed Single-Source Shortest
// Paths"): bounded multi-source relaxation (BMSSP) over a recursively
// shrinking distance interval, backed by a partial-sort container that
// never fully orders the frontier.
//
// The public surface is SSSP: it takes a *core.Graph and a source vertex
// and returns the vector of shortest-path distances, with math.Inf(1) for
// unreachable vertices.
//
// Under the hood:
//
//	core/        — the graph SSSP consumes: dense int vertices, adjacency
//	pqueue/      — an addressable min-heap, used by the base case's Dijkstra
//	partialsort/ — the container D driving BMSSP's bounded extraction
//	.  (here)    — pivot finding, the base case, BMSSP, and SSSP itself
//
// SSSP derives its recursion depth and pull-block parameters (k, t, l) from
// n; callers who need to override them for testing small or pathological
// graphs can use WithParams. WithVerbose enables fmt-based diagnostic
// logging of each BMSSP frame and base-case call; it has no effect on the
// returned distances.
package dssp
