package dssp

// relax attempts to improve v's tentative distance via the edge u->v of
// weight w, applying the (distance, depth, predecessor) tie-break triple
// that substitutes for strict distance comparison when path weights can
// tie. It always computes and returns the candidate distance d[u]+w, and
// reports whether it actually won the tie-break and updated
// d[v]/depth[v]/pred[v].
//
// Callers in pivot finding and BMSSP call this unconditionally, even when
// the candidate is >= the frame's bound: pivot finding (and, by the same
// relaxation step, BMSSP's edge walk) deliberately has this global side
// effect on d, since it serves the shared distance array rather than just
// the local workset. The base case is the one caller that skips relax
// entirely for candidates >= its bound, since there it is driving a bounded
// Dijkstra rather than a relax-and-test sweep.
func (s *state) relax(u, v int, w float64) (updated bool, candidate float64) {
	candidate = s.d[u] + w
	if pathLess(candidate, s.depth[u]+1, u, s.d[v], s.depth[v], s.pred[v]) {
		s.d[v] = candidate
		s.depth[v] = s.depth[u] + 1
		s.pred[v] = u

		return true, candidate
	}

	return false, candidate
}
