package pqueue

import "errors"

// ErrEmpty is returned by ExtractMin when the heap holds no items.
var ErrEmpty = errors.New("pqueue: heap is empty")

// item is one (vertex, priority) entry stored in the heap's backing slice.
type item struct {
	vertex   int
	priority float64
}
