package partialsort_test

import (
	"testing"

	"github.com/kilmmer/Single-Source-Shortest-Paths/partialsort"
)

// BenchmarkContainer_InsertDrain10000 measures inserting 10,000 keys in
// descending value order (the worst case for block placement) followed by
// draining the container via repeated Pull calls.
func BenchmarkContainer_InsertDrain10000(b *testing.B) {
	const n = 10000

	for i := 0; i < b.N; i++ {
		c := partialsort.New(n, 64, float64(n+1))
		for v := 0; v < n; v++ {
			c.Insert(v, float64(n-v))
		}
		for !c.IsEmpty() {
			_, _ = c.Pull()
		}
	}
}

// BenchmarkContainer_BatchPrependChurn measures repeated BatchPrepend calls
// against a container that already holds a large D1 population.
func BenchmarkContainer_BatchPrependChurn(b *testing.B) {
	const n = 4000
	c := partialsort.New(n, 32, float64(n+1))
	for v := 0; v < n; v++ {
		c.Insert(v, float64(n-v))
	}

	pairs := make([]partialsort.Pair, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range pairs {
			pairs[j] = partialsort.Pair{Key: j, Value: float64(j)}
		}
		c.BatchPrepend(pairs)
	}
}
