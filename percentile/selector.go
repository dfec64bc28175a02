package percentile

import (
	"sort"

	"github.com/pkg/errors"
)

// Strategy names a selection algorithm.
type Strategy string

const (
	// StrategySort fully sorts a copy of the sequence. O(n log n).
	StrategySort Strategy = "sort"

	// StrategyHeap keeps the m smallest elements in a bounded heap and
	// sorts only those, m being the highest rank needed plus one.
	// O(n log m + m log m).
	StrategyHeap Strategy = "heap"

	// StrategyQuickselect partitions a scratch copy per requested rank.
	// O(n) average per rank.
	StrategyQuickselect Strategy = "quickselect"
)

// Selector resolves order statistics: every returned value equals the value
// at that zero-based rank of the ascending-sorted sequence. Implementations
// never mutate values. Ranks must be within [0, len(values)-1].
type Selector interface {
	Select(values []float64, ranks []int) map[int]float64
}

func selectorFor(s Strategy) (Selector, error) {
	switch s {
	case StrategySort:
		return sortSelector{}, nil
	case StrategyHeap:
		return heapSelector{}, nil
	case StrategyQuickselect:
		return quickSelector{}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownStrategy, "%q", string(s))
	}
}

// sortSelector indexes into a fully sorted copy.
type sortSelector struct{}

func (sortSelector) Select(values []float64, ranks []int) map[int]float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	out := make(map[int]float64, len(ranks))
	for _, k := range ranks {
		out[k] = sorted[k]
	}
	return out
}

func maxRank(ranks []int) int {
	max := ranks[0]
	for _, k := range ranks[1:] {
		if k > max {
			max = k
		}
	}
	return max
}
