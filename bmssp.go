package dssp

import "github.com/kilmmer/Single-Source-Shortest-Paths/partialsort"

// bmssp is the Bounded Multi-Source Shortest Paths recursion (Duan, Mao,
// Mao, Shu & Yin, "Breaking the Sorting Barrier for Directed Single-Source
// Shortest Paths"). At level 0 it delegates to the base case, which expects
// a singleton frontier. At higher levels it finds pivots, seeds a fresh
// partial-sort container D with them, and repeatedly pulls a bounded block
// from D, recurses on it with a tighter bound, and feeds the recursion's
// output edges back into D (or a pending BatchPrepend) until the level's
// vertex budget is exhausted or D drains.
//
// D is local to this frame and is never shared with callers or callees —
// only d/depth/pred cross frame boundaries.
func (s *state) bmssp(l int, b float64, frontier []int) (float64, []int) {
	if s.verbose {
		s.logf("bmssp: level=%d bound=%g |S|=%d", l, b, len(frontier))
	}

	if l == 0 {
		return s.baseCase(b, frontier[0])
	}

	pivots, workset := s.findPivots(b, frontier)

	m := pow2Capped((l - 1) * s.t)
	d := partialsort.New(len(s.d), m, b)
	for _, x := range pivots {
		d.Insert(x, s.d[x])
	}

	seenInU := make(map[int]bool)
	var u []int
	addU := func(v int) {
		if !seenInU[v] {
			seenInU[v] = true
			u = append(u, v)
		}
	}

	budget := s.k * pow2Capped(l*s.t)
	lastBPrime := b

	for len(u) < budget && !d.IsEmpty() {
		bi, si := d.Pull()
		bPrimeI, ui := s.bmssp(l-1, bi, si)
		for _, v := range ui {
			addU(v)
		}
		lastBPrime = bPrimeI

		var queued []partialsort.Pair
		for _, uu := range ui {
			for _, e := range s.graph.Neighbors(uu) {
				_, candidate := s.relax(uu, e.To, e.Weight)
				if bi <= candidate && candidate < b {
					d.Insert(e.To, candidate)
				}
				if bPrimeI <= candidate && candidate < bi {
					queued = append(queued, partialsort.Pair{Key: e.To, Value: candidate})
				}
			}
		}
		for _, x := range si {
			if bPrimeI <= s.d[x] && s.d[x] < bi {
				queued = append(queued, partialsort.Pair{Key: x, Value: s.d[x]})
			}
		}
		d.BatchPrepend(queued)
	}

	bFinal := lastBPrime
	if b < bFinal {
		bFinal = b
	}
	for _, x := range workset {
		if s.d[x] < bFinal {
			addU(x)
		}
	}

	return bFinal, u
}
