// Package pqueue implements an addressable binary min-heap: a
// container/heap.Interface heap augmented with a vertex->position index so
// that Has and DecreaseKey run in O(1) and O(log n) respectively, instead
// of the lazy "push a duplicate, skip stale pops on extraction" pattern
// used elsewhere in this codebase's ancestry (dijkstra's nodePQ,
// prim_kruskal's edgePQ) — the bounded-Dijkstra base case needs true
// decrease-key so that its extraction cap counts distinct vertices, not
// stale duplicates.
//
// Priority is a scalar float64 distance; the heap does not apply the
// (distance, depth, predecessor) tie-break — callers resolve ties before
// deciding whether to Insert or DecreaseKey.
package pqueue
