package percentile

import (
	"math"

	"github.com/pkg/errors"
)

// DefaultFractions are the quartile fractions used when Calculate is called
// without an explicit request.
var DefaultFractions = []float64{0.25, 0.50, 0.75}

// Quartiles is the fixed quartile triple for the default request.
type Quartiles struct {
	Q1     float64
	Median float64
	Q3     float64
}

// Calculator computes interpolated quantiles over raw sample collections.
// It holds no state across calls; a single Calculator is safe for
// concurrent use.
type Calculator struct {
	strategy Strategy
	selector Selector
}

// NewCalculator builds a Calculator using the given selection strategy.
// Strategy only affects performance; results are identical across all of
// them.
func NewCalculator(strategy Strategy) (*Calculator, error) {
	sel, err := selectorFor(strategy)
	if err != nil {
		return nil, err
	}
	return &Calculator{strategy: strategy, selector: sel}, nil
}

// Strategy reports the selection strategy this Calculator was built with.
func (c *Calculator) Strategy() Strategy {
	return c.strategy
}

// Calculate resolves the requested quantile fractions against the raw
// sample collection, returning a fraction→value map. Without explicit
// fractions it computes the quartiles (0.25, 0.50, 0.75).
//
// Rank resolution is batched: the low/high ranks of every fraction are
// unioned into one Selector call, so the heap strategy sizes its prefix
// once from the overall maximum rank.
func (c *Calculator) Calculate(raw interface{}, fractions ...float64) (map[float64]float64, error) {
	if len(fractions) == 0 {
		fractions = DefaultFractions
	}
	for _, f := range fractions {
		if math.IsNaN(f) || f < 0 || f > 1 {
			return nil, errors.Wrapf(ErrFractionRange, "fraction %v", f)
		}
	}

	clean, err := Sanitize(raw)
	if err != nil {
		return nil, err
	}
	if len(clean) == 0 {
		return nil, ErrEmptyData
	}

	results := make(map[float64]float64, len(fractions))
	if len(clean) == 1 {
		for _, f := range fractions {
			results[f] = clean[0]
		}
		return results, nil
	}

	positions := make([]rankPosition, len(fractions))
	ranks := make([]int, 0, 2*len(fractions))
	seen := make(map[int]struct{}, 2*len(fractions))
	for i, f := range fractions {
		p := rankFor(f, len(clean))
		positions[i] = p
		for _, k := range [2]int{p.low, p.high} {
			if _, ok := seen[k]; !ok {
				seen[k] = struct{}{}
				ranks = append(ranks, k)
			}
		}
	}

	resolved := c.selector.Select(clean, ranks)
	for i, f := range fractions {
		p := positions[i]
		results[f] = interpolate(resolved[p.low], resolved[p.high], p.weight)
	}
	return results, nil
}

// Quartiles computes the default quartile triple.
func (c *Calculator) Quartiles(raw interface{}) (Quartiles, error) {
	res, err := c.Calculate(raw)
	if err != nil {
		return Quartiles{}, err
	}
	return Quartiles{Q1: res[0.25], Median: res[0.50], Q3: res[0.75]}, nil
}

// rankPosition is the floor/ceil/weight decomposition of a fractional rank.
type rankPosition struct {
	low    int
	high   int
	weight float64
}

// rankFor maps a quantile fraction to its position in the sorted sequence
// of length n, position = (n-1) × fraction.
func rankFor(fraction float64, n int) rankPosition {
	pos := float64(n-1) * fraction
	low := int(math.Floor(pos))
	high := int(math.Ceil(pos))
	return rankPosition{low: low, high: high, weight: pos - float64(low)}
}

// interpolate blends two adjacent order statistics linearly. The engine
// guarantees weight is in [0, 1] by construction.
func interpolate(low, high, weight float64) float64 {
	return low + (high-low)*weight
}
