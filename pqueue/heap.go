package pqueue

import "container/heap"

// unplaced marks a vertex absent from the heap in the position index.
const unplaced = -1

// Heap is an addressable min-heap over the dense vertex space [0, n).
// It is not safe for concurrent use; the algorithms that drive it
// (the bounded-Dijkstra base case) are single-threaded by design.
type Heap struct {
	items []item
	pos   []int // vertex -> index into items, or unplaced
}

// New allocates a Heap addressable over vertices [0, n).
func New(n int) *Heap {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = unplaced
	}

	return &Heap{pos: pos}
}

// Len reports how many items are currently in the heap.
func (h *Heap) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no items.
func (h *Heap) IsEmpty() bool { return len(h.items) == 0 }

// Has reports whether v is currently present in the heap.
func (h *Heap) Has(v int) bool { return h.pos[v] != unplaced }

// Insert adds v with priority p. Behavior is undefined if v is already
// present — callers guarantee first-insertion and use DecreaseKey/Has for
// any subsequent update.
func (h *Heap) Insert(v int, p float64) {
	heap.Push(h, item{vertex: v, priority: p})
}

// DecreaseKey lowers v's priority to p if v is present and p is strictly
// less than v's current priority. Otherwise it is a no-op, including when
// v is absent.
func (h *Heap) DecreaseKey(v int, p float64) {
	i := h.pos[v]
	if i == unplaced || p >= h.items[i].priority {
		return
	}
	h.items[i].priority = p
	h.siftUp(i)
}

// ExtractMin removes and returns the vertex with the lowest priority.
// It returns ErrEmpty if the heap holds no items.
func (h *Heap) ExtractMin() (int, error) {
	if h.IsEmpty() {
		return unplaced, ErrEmpty
	}

	return heap.Pop(h).(item).vertex, nil
}

// --- container/heap.Interface ---

func (h *Heap) Less(i, j int) bool { return h.items[i].priority < h.items[j].priority }

func (h *Heap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.pos[h.items[i].vertex] = i
	h.pos[h.items[j].vertex] = j
}

func (h *Heap) Push(x interface{}) {
	it := x.(item)
	h.pos[it.vertex] = len(h.items)
	h.items = append(h.items, it)
}

func (h *Heap) Pop() interface{} {
	n := len(h.items)
	it := h.items[n-1]
	h.items = h.items[:n-1]
	h.pos[it.vertex] = unplaced

	return it
}

// siftUp restores the heap invariant upward from index i, used after a
// DecreaseKey lowers a priority in place.
func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.Less(i, parent) {
			break
		}
		h.Swap(i, parent)
		i = parent
	}
}
