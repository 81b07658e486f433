// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abdata

import (
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
)

// A Description holds descriptive statistics of one sample.
type Description struct {
	N      int
	Mean   float64
	StdDev float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// Describe summarizes xs. Quartiles use go-moremath's sample quantile
// definition. An empty xs yields N = 0 and NaN statistics.
func Describe(xs []float64) Description {
	if len(xs) == 0 {
		nan := math.NaN()
		return Description{Mean: nan, StdDev: nan, Min: nan, Q1: nan, Median: nan, Q3: nan, Max: nan}
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	s := stats.Sample{Xs: sorted, Sorted: true}
	lo, hi := s.Bounds()
	return Description{
		N:      len(xs),
		Mean:   s.Mean(),
		StdDev: s.StdDev(),
		Min:    lo,
		Q1:     s.Quantile(0.25),
		Median: s.Quantile(0.5),
		Q3:     s.Quantile(0.75),
		Max:    hi,
	}
}

// Describe summarizes metric for group.
func (d *Dataset) Describe(group, metric string) (Description, error) {
	xs, err := d.Sample(group, metric)
	if err != nil {
		return Description{}, err
	}
	return Describe(xs), nil
}
