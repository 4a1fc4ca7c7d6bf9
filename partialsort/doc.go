// Package partialsort implements the D container from Duan, Mao, Mao, Shu &
// Yin's "Breaking the Sorting Barrier for Directed Single-Source Shortest
// Paths": a partial-sort priority structure that never fully orders its
// contents. It supports Insert, BatchPrepend, and a block-bounded Pull that
// returns a boundary value alongside a block of near-minimum keys, which is
// what lets BMSSP recurse on a bounded slice of the frontier without ever
// sorting the whole thing.
//
// No file in this module's ancestry implements this structure directly — it
// is specific to the source paper — so it follows the surrounding packages'
// documentation conventions (doc.go + types.go + one file per concern, as in
// prim_kruskal and flow) rather than any single teacher algorithm. It
// declares no sentinel errors.
package partialsort
