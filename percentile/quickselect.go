package percentile

// quickSelector runs an iterative quickselect per distinct requested rank.
// Partitioning is destructive, so each selection works on its own scratch
// copy of the sequence.
type quickSelector struct{}

func (quickSelector) Select(values []float64, ranks []int) map[int]float64 {
	out := make(map[int]float64, len(ranks))
	for _, k := range ranks {
		if _, done := out[k]; done {
			continue
		}
		scratch := append([]float64(nil), values...)
		out[k] = quickselect(scratch, k)
	}
	return out
}

// quickselect returns the kth smallest element of arr, reordering arr in
// the process. Iterative, narrowing [lo, hi] around the 3-way partition
// zones: k always stays inside the current window, so arr[k] is the answer
// once the window collapses or k lands in the equal zone.
func quickselect(arr []float64, k int) float64 {
	lo, hi := 0, len(arr)-1
	for lo < hi {
		lt, gt := partition3(arr, lo, hi)
		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			return arr[k]
		}
	}
	return arr[k]
}

// partition3 splits arr[lo..hi] around a median-of-three pivot into
// less-than, equal and greater-than zones. On return, arr[lo:lt] < pivot,
// arr[lt:gt+1] == pivot and arr[gt+1:hi+1] > pivot. The equal zone is what
// keeps duplicate-heavy input from degrading toward quadratic time.
func partition3(arr []float64, lo, hi int) (lt, gt int) {
	mid := lo + (hi-lo)/2
	if arr[lo] > arr[mid] {
		arr[lo], arr[mid] = arr[mid], arr[lo]
	}
	if arr[mid] > arr[hi] {
		arr[mid], arr[hi] = arr[hi], arr[mid]
	}
	if arr[lo] > arr[mid] {
		arr[lo], arr[mid] = arr[mid], arr[lo]
	}

	pivot := arr[mid]
	arr[mid], arr[hi] = arr[hi], arr[mid]

	lt, gt = lo, hi
	for i := lo; i <= gt; {
		switch {
		case arr[i] < pivot:
			arr[lt], arr[i] = arr[i], arr[lt]
			lt++
			i++
		case arr[i] > pivot:
			arr[i], arr[gt] = arr[gt], arr[i]
			gt--
		default:
			i++
		}
	}
	return lt, gt
}
