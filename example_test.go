package dssp_test

import (
	"fmt"

	dssp "github.com/kilmmer/Single-Source-Shortest-Paths"
	"github.com/kilmmer/Single-Source-Shortest-Paths/core"
)

// ExampleSSSP computes shortest-path distances over a small diamond graph.
func ExampleSSSP() {
	g := core.NewGraph(4)
	_ = g.AddEdge(0, 1, 2)
	_ = g.AddEdge(0, 2, 2)
	_ = g.AddEdge(1, 3, 3)
	_ = g.AddEdge(2, 3, 3)

	d, err := dssp.SSSP(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d)
	// Output:
	// [0 2 2 5]
}

// ExampleSSSP_unreachable shows an unreachable vertex surfacing as +Inf.
func ExampleSSSP_unreachable() {
	g := core.NewGraph(3)
	_ = g.AddEdge(0, 1, 7)

	d, _ := dssp.SSSP(g, 0)
	fmt.Println(d)
	// Output:
	// [0 7 +Inf]
}
