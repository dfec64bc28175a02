package percentile

import (
	"container/heap"
	"sort"
)

// heapSelector collects the m smallest elements with a bounded max-heap and
// sorts only those, where m covers the highest requested rank. Every
// requested rank is below m by construction, so indexing the sorted prefix
// is equivalent to indexing the fully sorted sequence.
type heapSelector struct{}

func (heapSelector) Select(values []float64, ranks []int) map[int]float64 {
	m := maxRank(ranks) + 1
	prefix := smallestN(values, m)
	sort.Float64s(prefix)

	out := make(map[int]float64, len(ranks))
	for _, k := range ranks {
		out[k] = prefix[k]
	}
	return out
}

// smallestN returns the m smallest elements of values in arbitrary order,
// without mutating values.
func smallestN(values []float64, m int) []float64 {
	if m >= len(values) {
		return append([]float64(nil), values...)
	}

	h := make(maxHeap, m)
	copy(h, values[:m])
	heap.Init(&h)
	for _, v := range values[m:] {
		// the root is the largest of the m smallest seen so far
		if v < h[0] {
			h[0] = v
			heap.Fix(&h, 0)
		}
	}
	return h
}

type maxHeap []float64

func (h maxHeap) Len() int           { return len(h) }
func (h maxHeap) Less(i, j int) bool { return h[i] > h[j] }
func (h maxHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *maxHeap) Push(x interface{}) {
	*h = append(*h, x.(float64))
}

func (h *maxHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
