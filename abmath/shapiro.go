// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sample size limits of the Shapiro-Wilk approximation. Above
// shapiroMaxN the p-value is still computed but may be inaccurate.
const (
	shapiroMinN = 3
	shapiroMaxN = 5000
)

// Polynomial coefficients of Royston's approximation (AS R94).
var (
	swC1 = []float64{0, 0.221157, -0.147981, -2.07119, 4.434685, -2.706056}
	swC2 = []float64{0, 0.042981, -0.293762, -1.752461, 5.682633, -3.582633}
	swC3 = []float64{0.544, -0.39978, 0.025054, -6.714e-4}
	swC4 = []float64{1.3822, -0.77857, 0.062767, -0.0020322}
	swC5 = []float64{-1.5861, -0.31082, -0.083751, 0.0038915}
	swC6 = []float64{-0.4803, -0.082676, 0.0030302}
	swG  = []float64{-2.273, 0.459}
)

// ShapiroWilk performs the Shapiro-Wilk test of the null hypothesis
// that xs was drawn from a normal distribution. It returns the W
// statistic and its p-value, using Royston's 1995 approximation.
//
// xs must have at least 3 values. If all values are equal, ShapiroWilk
// returns W = 1 and p = 1.
func ShapiroWilk(xs []float64) (w, p float64, err error) {
	n := len(xs)
	if n < shapiroMinN {
		return 0, 0, fmt.Errorf("%w: Shapiro-Wilk test needs >= %d observations, got %d", ErrInsufficientData, shapiroMinN, n)
	}
	x := append([]float64(nil), xs...)
	sort.Float64s(x)
	if x[n-1]-x[0] == 0 {
		return 1, 1, nil
	}

	a := shapiroCoefficients(n)

	var mean float64
	for _, v := range x {
		mean += v
	}
	mean /= float64(n)
	var ssq float64
	for _, v := range x {
		d := v - mean
		ssq += d * d
	}

	var num float64
	for i, ai := range a {
		num += ai * (x[n-1-i] - x[i])
	}
	w = num * num / ssq
	if w > 1 {
		w = 1
	}
	return w, shapiroP(w, n), nil
}

// shapiroCoefficients returns the first n/2 antisymmetric weights a_i
// of the W statistic. The weight of the i'th order statistic from
// the top is a[i]; that of the i'th from the bottom is -a[i].
func shapiroCoefficients(n int) []float64 {
	nn2 := n / 2
	a := make([]float64, nn2)
	if n == 3 {
		a[0] = math.Sqrt2 / 2
		return a
	}

	an25 := float64(n) + 0.25
	m := make([]float64, nn2)
	var summ2 float64
	for i := range m {
		m[i] = distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / an25)
		summ2 += m[i] * m[i]
	}
	summ2 *= 2
	ssumm2 := math.Sqrt(summ2)
	rsn := 1 / math.Sqrt(float64(n))

	a1 := poly(swC1, rsn) - m[0]/ssumm2
	var first int
	var fac float64
	if n > 5 {
		first = 2
		a2 := -m[1]/ssumm2 + poly(swC2, rsn)
		fac = math.Sqrt((summ2 - 2*m[0]*m[0] - 2*m[1]*m[1]) / (1 - 2*a1*a1 - 2*a2*a2))
		a[1] = a2
	} else {
		first = 1
		fac = math.Sqrt((summ2 - 2*m[0]*m[0]) / (1 - 2*a1*a1))
	}
	a[0] = a1
	for i := first; i < nn2; i++ {
		a[i] = -m[i] / fac
	}
	return a
}

// shapiroP returns the upper-tail p-value of W for a sample of size n.
func shapiroP(w float64, n int) float64 {
	if n == 3 {
		// Exact for n = 3.
		p := 6 / math.Pi * (math.Asin(math.Sqrt(w)) - math.Pi/3)
		return math.Max(0, math.Min(1, p))
	}

	an := float64(n)
	y := math.Log(1 - w)
	var m, s float64
	if n <= 11 {
		gamma := poly(swG, an)
		if y >= gamma {
			return 1e-99
		}
		y = -math.Log(gamma - y)
		m = poly(swC3, an)
		s = math.Exp(poly(swC4, an))
	} else {
		ln := math.Log(an)
		m = poly(swC5, ln)
		s = math.Exp(poly(swC6, ln))
	}
	return distuv.UnitNormal.Survival((y - m) / s)
}

// poly evaluates the polynomial c[0] + c[1]*x + c[2]*x² + ...
func poly(c []float64, x float64) float64 {
	var r float64
	for i := len(c) - 1; i >= 0; i-- {
		r = r*x + c[i]
	}
	return r
}
