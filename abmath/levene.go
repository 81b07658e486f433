// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// A Center selects the location Levene's test measures absolute
// deviations from.
type Center int

const (
	// CenterMedian uses each group's median. This is the
	// Brown-Forsythe variant, robust to skewed data.
	CenterMedian Center = iota

	// CenterMean uses each group's mean, as in Levene's
	// original test.
	CenterMean
)

func (c Center) String() string {
	switch c {
	case CenterMedian:
		return "median"
	case CenterMean:
		return "mean"
	}
	return fmt.Sprintf("Center(%d)", int(c))
}

// ParseCenter returns the Center named by s, "median" or "mean".
func ParseCenter(s string) (Center, error) {
	switch s {
	case "median":
		return CenterMedian, nil
	case "mean":
		return CenterMean, nil
	}
	return 0, fmt.Errorf("unknown Levene center %q", s)
}

// Levene performs Levene's test of the null hypothesis that all
// samples come from populations with equal variances. It returns the
// W statistic and its p-value from the upper tail of the F
// distribution with k-1 and N-k degrees of freedom.
//
// If every absolute deviation equals its group's mean deviation, the
// statistic is 0 with p = 1 when the groups also agree, and +Inf with
// p = 0 when they don't.
func Levene(center Center, samples ...[]float64) (stat, p float64, err error) {
	k := len(samples)
	if k < 2 {
		return 0, 0, fmt.Errorf("Levene test needs >= 2 samples, got %d", k)
	}

	n := 0
	zs := make([][]float64, k)
	zbars := make([]float64, k)
	for i, xs := range samples {
		if len(xs) == 0 {
			return 0, 0, fmt.Errorf("%w: Levene test sample %d is empty", ErrInsufficientData, i)
		}
		n += len(xs)
		var c float64
		switch center {
		case CenterMean:
			c = stats.Mean(xs)
		default:
			c = median(xs)
		}
		z := make([]float64, len(xs))
		for j, x := range xs {
			z[j] = math.Abs(x - c)
		}
		zs[i] = z
		zbars[i] = stats.Mean(z)
	}
	if n <= k {
		return 0, 0, fmt.Errorf("%w: Levene test needs more than %d observations, got %d", ErrInsufficientData, k, n)
	}

	var zbar float64
	for i, z := range zs {
		zbar += zbars[i] * float64(len(z))
	}
	zbar /= float64(n)

	var between, within float64
	for i, z := range zs {
		d := zbars[i] - zbar
		between += float64(len(z)) * d * d
		for _, zij := range z {
			d := zij - zbars[i]
			within += d * d
		}
	}

	if within == 0 {
		if between == 0 {
			return 0, 1, nil
		}
		return math.Inf(1), 0, nil
	}

	d1, d2 := float64(k-1), float64(n-k)
	stat = d2 / d1 * between / within
	p = distuv.F{D1: d1, D2: d2}.Survival(stat)
	return stat, p, nil
}

// median returns the midpoint median of xs without modifying it.
func median(xs []float64) float64 {
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	m := len(s) / 2
	if len(s)%2 == 1 {
		return s[m]
	}
	return (s[m-1] + s[m]) / 2
}

func (c Center) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
