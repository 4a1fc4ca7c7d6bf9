package dssp

import (
	"io"

	"github.com/kilmmer/Single-Source-Shortest-Paths/core"
)

// Options configures SSSP. The zero value matches the defaults: derived
// k/t/l and no diagnostic logging.
type Options struct {
	Verbose   bool
	LogWriter io.Writer
	KOverride int
	TOverride int
}

// Option is a functional option for SSSP, mirroring the teacher's
// dijkstra.Option / flow.FlowOptions.Verbose pattern.
type Option func(*Options)

// WithVerbose enables Fprintf-based diagnostic logging of each BMSSP frame
// and base-case call, written to os.Stdout unless WithLogWriter overrides
// the destination. It has no effect on the returned distances.
func WithVerbose() Option {
	return func(o *Options) { o.Verbose = true }
}

// WithLogWriter redirects WithVerbose's diagnostic stream to w instead of
// the default os.Stdout. Callers whose own stdout is a machine-readable
// result stream (cmd/dssp's distance output, for instance) use this to keep
// diagnostics off it.
func WithLogWriter(w io.Writer) Option {
	return func(o *Options) { o.LogWriter = w }
}

// WithParams overrides the derived k and t parameters. Intended for tests
// and benchmarks exercising small or pathological n. A k or t that is <= 0
// is ignored and the derived value is used instead.
func WithParams(k, t int) Option {
	return func(o *Options) {
		o.KOverride = k
		o.TOverride = t
	}
}

// state holds the mutable per-vertex arrays shared by every recursive
// BMSSP frame, plus the graph and derived parameters. d, depth, and pred
// are the only state shared across frames; everything else (a frame's own
// partial-sort container D and worksets) is local to that frame's call.
type state struct {
	graph *core.Graph

	d     []float64
	depth []int
	pred  []int

	k, t      int
	verbose   bool
	logWriter io.Writer
}

// pathLess implements the (distance, depth, predecessor) tie-break triple:
// a candidate (d1, depth1, pred1) beats an incumbent (d2, depth2, pred2)
// iff it is lexicographically smaller.
func pathLess(d1 float64, depth1, pred1 int, d2 float64, depth2, pred2 int) bool {
	if d1 != d2 {
		return d1 < d2
	}
	if depth1 != depth2 {
		return depth1 < depth2
	}

	return pred1 < pred2
}
