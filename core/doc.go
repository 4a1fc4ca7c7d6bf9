// Package core defines the Graph type consumed by the dssp algorithm:
// a dense-indexed, immutable-after-construction directed graph with
// non-negative edge weights.
//
// Vertices are integers in [0, n). There is no vertex metadata and no
// mutation once a Graph is handed to an algorithm — callers build a Graph
// via NewGraph and AddEdge, then treat it as read-only.
package core
