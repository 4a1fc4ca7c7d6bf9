package dssp

import "github.com/kilmmer/Single-Source-Shortest-Paths/pqueue"

// baseCase is the bounded-Dijkstra base case: a Dijkstra run from x,
// restricted so extracted distances stay < B, capped at k+1 extractions.
// Unlike findPivots and BMSSP's edge walk, it skips relaxing an edge
// entirely when the candidate distance is >= B, since here the bound is a
// hard stopping condition on a bounded Dijkstra rather than a
// classification threshold over an unconditional relax.
func (s *state) baseCase(B float64, x int) (float64, []int) {
	h := pqueue.New(len(s.d))
	popped := make([]bool, len(s.d)) // true once extracted; never re-inserted
	h.Insert(x, s.d[x])

	var extracted []int
	for !h.IsEmpty() && len(extracted) < s.k+1 {
		u, err := h.ExtractMin()
		if err != nil {
			break
		}
		if s.d[u] >= B {
			break
		}

		popped[u] = true
		extracted = append(extracted, u)

		if s.verbose {
			s.logf("basecase: extract v=%d d=%g (count=%d)", u, s.d[u], len(extracted))
		}

		for _, e := range s.graph.Neighbors(u) {
			candidate := s.d[u] + e.Weight
			if candidate >= B {
				continue
			}
			updated, _ := s.relax(u, e.To, e.Weight)
			if !updated || popped[e.To] {
				continue
			}
			if h.Has(e.To) {
				h.DecreaseKey(e.To, s.d[e.To])
			} else {
				h.Insert(e.To, s.d[e.To])
			}
		}
	}

	if len(extracted) <= s.k {
		return B, extracted
	}

	// len(extracted) == k+1: the cap was hit. Only the strictly-smaller
	// prefix is finalized; the (k+1)-th extraction's distance becomes the
	// refined boundary.
	dStar := s.d[extracted[s.k]]
	finalized := make([]int, 0, s.k)
	for _, v := range extracted {
		if s.d[v] < dStar {
			finalized = append(finalized, v)
		}
	}

	return dStar, finalized
}
