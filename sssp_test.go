package dssp_test

import (
	"container/heap"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	dssp "github.com/kilmmer/Single-Source-Shortest-Paths"
	"github.com/kilmmer/Single-Source-Shortest-Paths/core"
)

// refDijkstraItem/refDijkstraHeap implement a plain textbook Dijkstra over
// core.Graph, used only from tests as an independent oracle to cross-check
// SSSP's distances. It intentionally shares no code with the package under
// test.
type refDijkstraItem struct {
	v int
	d float64
}

type refDijkstraHeap []refDijkstraItem

func (h refDijkstraHeap) Len() int            { return len(h) }
func (h refDijkstraHeap) Less(i, j int) bool  { return h[i].d < h[j].d }
func (h refDijkstraHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *refDijkstraHeap) Push(x interface{}) { *h = append(*h, x.(refDijkstraItem)) }
func (h *refDijkstraHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

func refDijkstra(g *core.Graph, source int) []float64 {
	n := g.N()
	dist := make([]float64, n)
	visited := make([]bool, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	dist[source] = 0

	h := &refDijkstraHeap{{v: source, d: 0}}
	for h.Len() > 0 {
		it := heap.Pop(h).(refDijkstraItem)
		if visited[it.v] {
			continue
		}
		visited[it.v] = true
		for _, e := range g.Neighbors(it.v) {
			if nd := dist[it.v] + e.Weight; nd < dist[e.To] {
				dist[e.To] = nd
				heap.Push(h, refDijkstraItem{v: e.To, d: nd})
			}
		}
	}

	return dist
}

func mustGraph(t *testing.T, n int, edges [][3]float64) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}
	return g
}

func TestSSSP_LinearChain(t *testing.T) {
	g := mustGraph(t, 4, [][3]float64{{0, 1, 1}, {1, 2, 2}, {2, 3, 1}})
	d, err := dssp.SSSP(g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 3, 4}, d)
}

func TestSSSP_ParallelPaths(t *testing.T) {
	g := mustGraph(t, 4, [][3]float64{
		{0, 1, 1}, {0, 2, 4}, {1, 2, 2}, {1, 3, 5}, {2, 3, 1},
	})
	d, err := dssp.SSSP(g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 3, 4}, d)
}

func TestSSSP_UnreachableVertex(t *testing.T) {
	g := mustGraph(t, 3, [][3]float64{{0, 1, 7}})
	d, err := dssp.SSSP(g, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, d[0])
	require.Equal(t, 7.0, d[1])
	require.True(t, math.IsInf(d[2], 1))
}

func TestSSSP_ZeroWeightEdge(t *testing.T) {
	g := mustGraph(t, 3, [][3]float64{{0, 1, 0}, {1, 2, 5}})
	d, err := dssp.SSSP(g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 5}, d)
}

func TestSSSP_DiamondEqualCostPaths(t *testing.T) {
	g := mustGraph(t, 4, [][3]float64{
		{0, 1, 2}, {0, 2, 2}, {1, 3, 3}, {2, 3, 3},
	})
	d, err := dssp.SSSP(g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2, 2, 5}, d)
}

func TestSSSP_Singleton(t *testing.T) {
	g := mustGraph(t, 1, nil)
	d, err := dssp.SSSP(g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0}, d)
}

func TestSSSP_SourceOutOfRange(t *testing.T) {
	g := mustGraph(t, 3, [][3]float64{{0, 1, 1}})
	d, err := dssp.SSSP(g, 9)
	require.Nil(t, d)
	require.ErrorIs(t, err, core.ErrSourceOutOfRange)
}

func TestSSSP_RejectedEdgesNeverReachTheGraph(t *testing.T) {
	// AddEdge itself is the enforcement point for core.ErrNegativeWeight and
	// core.ErrVertexOutOfRange (see core's own tests); SSSP's call to
	// Validate is a second, independent line of defense for graphs built by
	// other means. From outside the core package there is no way to force
	// an invalid edge past AddEdge, so this only confirms the rejected call
	// leaves the graph undisturbed and SSSP still succeeds on what remains.
	g := core.NewGraph(2)
	require.ErrorIs(t, g.AddEdge(0, 1, -1), core.ErrNegativeWeight)
	d, err := dssp.SSSP(g, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, math.Inf(1)}, d)
}

func TestSSSP_Idempotence(t *testing.T) {
	g := mustGraph(t, 6, [][3]float64{
		{0, 1, 1}, {0, 2, 4}, {1, 2, 2}, {1, 3, 5}, {2, 3, 1},
		{3, 4, 2}, {4, 5, 1}, {2, 5, 9},
	})
	d1, err := dssp.SSSP(g, 0)
	require.NoError(t, err)
	d2, err := dssp.SSSP(g, 0)
	require.NoError(t, err)
	require.Equal(t, d1, d2)
}

func TestSSSP_MatchesReferenceDijkstra_RandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 30; trial++ {
		n := 2 + rng.Intn(40)
		g := core.NewGraph(n)
		edgeCount := rng.Intn(n * 3)
		for i := 0; i < edgeCount; i++ {
			u := rng.Intn(n)
			v := rng.Intn(n)
			if u == v {
				continue
			}
			w := rng.Float64() * 20
			require.NoError(t, g.AddEdge(u, v, w))
		}
		source := rng.Intn(n)

		got, err := dssp.SSSP(g, source)
		require.NoError(t, err)
		want := refDijkstra(g, source)

		for v := 0; v < n; v++ {
			if math.IsInf(want[v], 1) {
				require.True(t, math.IsInf(got[v], 1), "trial %d vertex %d: want +Inf, got %g", trial, v, got[v])
				continue
			}
			require.InDelta(t, want[v], got[v], 1e-9, "trial %d vertex %d", trial, v)
		}
	}
}

func TestSSSP_SourceDistanceIsZero(t *testing.T) {
	g := mustGraph(t, 5, [][3]float64{{0, 1, 3}, {1, 2, 3}, {2, 3, 3}, {3, 4, 3}})
	d, err := dssp.SSSP(g, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, d[2])
}

func TestSSSP_WithParamsOverride(t *testing.T) {
	g := mustGraph(t, 4, [][3]float64{{0, 1, 1}, {1, 2, 2}, {2, 3, 1}})
	d, err := dssp.SSSP(g, 0, dssp.WithParams(2, 2))
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 3, 4}, d)
}

func TestSSSP_VerboseDoesNotAffectResult(t *testing.T) {
	g := mustGraph(t, 4, [][3]float64{
		{0, 1, 2}, {0, 2, 2}, {1, 3, 3}, {2, 3, 3},
	})
	d, err := dssp.SSSP(g, 0, dssp.WithVerbose())
	require.NoError(t, err)
	require.Equal(t, []float64{0, 2, 2, 5}, d)
}
