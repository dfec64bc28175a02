package percentile

import (
	"math"
	"sort"
)

// referenceQuantiles is the trusted oracle used to validate the selection
// strategies: a full sort plus the same interpolation formula, written
// independently of the production path and kept deliberately simple.
func referenceQuantiles(values []float64, fractions []float64) []float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	n := len(sorted)

	out := make([]float64, len(fractions))
	for i, f := range fractions {
		if n == 1 {
			out[i] = sorted[0]
			continue
		}
		pos := float64(n-1) * f
		lo := int(math.Floor(pos))
		hi := int(math.Ceil(pos))
		w := pos - float64(lo)
		out[i] = sorted[lo] + (sorted[hi]-sorted[lo])*w
	}
	return out
}
