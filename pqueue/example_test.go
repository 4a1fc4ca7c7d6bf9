package pqueue_test

import (
	"fmt"

	"github.com/kilmmer/Single-Source-Shortest-Paths/pqueue"
)

// ExampleHeap demonstrates Insert, DecreaseKey, and in-order ExtractMin.
func ExampleHeap() {
	h := pqueue.New(3)
	h.Insert(0, 5)
	h.Insert(1, 8)
	h.Insert(2, 1)
	h.DecreaseKey(1, 2) // 1 now beats 0

	for !h.IsEmpty() {
		v, _ := h.ExtractMin()
		fmt.Println(v)
	}
	// Output:
	// 2
	// 1
	// 0
}
