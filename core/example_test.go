package core_test

import (
	"fmt"

	"github.com/kilmmer/Single-Source-Shortest-Paths/core"
)

// ExampleGraph demonstrates building a small directed, weighted graph and
// inspecting one vertex's outgoing edges.
func ExampleGraph() {
	g := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 4)
	_ = g.AddEdge(0, 2, 1)
	_ = g.AddEdge(2, 1, 2)

	for _, e := range g.Neighbors(0) {
		fmt.Printf("0->%d (%g)\n", e.To, e.Weight)
	}
	// Output:
	// 0->1 (4)
	// 0->2 (1)
}
