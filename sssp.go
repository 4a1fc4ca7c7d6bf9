package dssp

import (
	"math"
	"os"

	"github.com/kilmmer/Single-Source-Shortest-Paths/core"
)

// SSSP computes shortest-path distances from source to every vertex
// reachable in g. It returns a slice of length g.N() holding each vertex's
// finite distance or math.Inf(1) if unreachable.
//
// g must already satisfy core.Graph's construction-time invariants
// (non-negative weights, in-range endpoints); SSSP calls g.Validate(source)
// first and returns its error unchanged — negative weights, an
// out-of-range source, or an out-of-range edge target are all surfaced
// before any relaxation happens, no recovery attempted.
func SSSP(g *core.Graph, source int, opts ...Option) ([]float64, error) {
	if err := g.Validate(source); err != nil {
		return nil, err
	}

	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.N()
	d := make([]float64, n)
	depth := make([]int, n)
	pred := make([]int, n)
	for v := range d {
		d[v] = math.Inf(1)
		pred[v] = -1
	}
	d[source] = 0

	if n <= 1 {
		// n == 1 means source == 0 (already range-checked above); no edges
		// can exist, and no recursion is needed. n == 0 is unreachable
		// here since Validate would already have rejected any source.
		return d, nil
	}

	k, t, l := computeParams(n)
	if cfg.KOverride > 0 {
		k = cfg.KOverride
	}
	if cfg.TOverride > 0 {
		t = cfg.TOverride
		l = int(math.Ceil(math.Log2(float64(n)) / float64(t)))
		if l < 0 {
			l = 0
		}
	}

	logWriter := cfg.LogWriter
	if logWriter == nil {
		logWriter = os.Stdout
	}

	st := &state{
		graph:     g,
		d:         d,
		depth:     depth,
		pred:      pred,
		k:         k,
		t:         t,
		verbose:   cfg.Verbose,
		logWriter: logWriter,
	}

	if cfg.Verbose {
		st.logf("sssp: n=%d k=%d t=%d l=%d", n, k, t, l)
	}

	st.bmssp(l, math.Inf(1), []int{source})

	return d, nil
}
