package main

import (
	"math"

	"percentile_worker/percentile"
)

// Summary is the descriptive statistics row stored per sample set. The
// quartiles come from the percentile engine; the moments are computed here
// because the result schema stores them alongside.
type Summary struct {
	Min       float64
	Max       float64
	Mean      float64
	StdDev    float64
	Quartiles percentile.Quartiles
}

func summarize(calc *percentile.Calculator, raw interface{}) (Summary, error) {
	values, err := percentile.Sanitize(raw)
	if err != nil {
		return Summary{}, err
	}

	q, err := calc.Quartiles(values)
	if err != nil {
		return Summary{}, err
	}

	n := len(values)
	min := values[0]
	max := values[0]
	mean := 0.0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		mean += v
	}
	mean /= float64(n)

	var sumsq float64
	for _, v := range values {
		d := v - mean
		sumsq += d * d
	}
	stddev := math.Sqrt(sumsq / float64(n))

	return Summary{Min: min, Max: max, Mean: mean, StdDev: stddev, Quartiles: q}, nil
}
