package dssp

// findPivots is the Pivot Finding step: starting from the frame's frontier
// S, it runs k rounds of synchronous relaxation: round i relaxes the outgoing
// edges of the vertices discovered in round i-1, and a target v joins the
// next round's layer iff its candidate distance is < B and it has not
// already joined this round. Every visited vertex accumulates into the
// workset W (a superset of S).
//
// If W ever grows past k*|S|, the frontier has expanded too much to prune
// usefully: every source becomes a pivot (P = S) and findPivots returns
// early. Otherwise every explored vertex is a pivot (P = W).
//
// relax is called unconditionally here even when a candidate is >= B —
// see relax.go's doc comment — so findPivots has the global side effect of
// advancing d/depth/Pred even for vertices it ultimately excludes from W.
func (s *state) findPivots(B float64, src []int) (pivots, workset []int) {
	inW := make(map[int]bool, len(src))
	w := make([]int, 0, len(src))
	for _, x := range src {
		if !inW[x] {
			inW[x] = true
			w = append(w, x)
		}
	}

	limit := s.k * len(src)
	frontier := append([]int(nil), src...)

	for round := 0; round < s.k && len(frontier) > 0; round++ {
		seenThisRound := make(map[int]bool)
		var next []int

		for _, u := range frontier {
			for _, e := range s.graph.Neighbors(u) {
				_, candidate := s.relax(u, e.To, e.Weight)
				if candidate < B && !seenThisRound[e.To] {
					seenThisRound[e.To] = true
					next = append(next, e.To)
				}
			}
		}

		for _, v := range next {
			if !inW[v] {
				inW[v] = true
				w = append(w, v)
			}
		}

		if len(w) > limit {
			return append([]int(nil), src...), w
		}

		frontier = next
	}

	return append([]int(nil), w...), w
}
