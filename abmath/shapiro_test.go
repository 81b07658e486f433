// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestShapiroWilk(t *testing.T) {
	check := func(xs []float64, wantW, wantP float64) {
		t.Helper()
		w, p, err := ShapiroWilk(xs)
		if err != nil {
			t.Errorf("%v: unexpected error %v", xs, err)
			return
		}
		if !aeq(w, wantW) || !aeq(p, wantP) {
			t.Errorf("%v: want W=%v p=%v, got W=%v p=%v", xs, wantW, wantP, w, p)
		}
	}

	// n = 3 uses the exact distribution.
	check([]float64{1, 2, 4}, 0.9642857142857146, 0.6368868450289714)
	check([]float64{1, 2, 3}, 1, 1)
	// Small-sample approximation.
	check([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.970164611230666, 0.8923673075239242)
	check([]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1000}, 0.3657206274142635, 1.0036928133061451e-07)
	// Large-sample approximation.
	check(seq(1, 20), 0.9603751831064349, 0.5513717430400848)
	// Constant samples are trivially normal.
	check([]float64{10, 10, 10, 10, 10}, 1, 1)
}

func TestShapiroWilkOrderAndShift(t *testing.T) {
	// W is invariant under permutation and translation.
	c := []float64{100, 102, 98, 101, 99, 97, 103, 100, 102, 98}
	d := []float64{110, 108, 112, 109, 111, 107, 113, 110, 108, 112}
	w1, p1, _ := ShapiroWilk(c)
	w2, p2, _ := ShapiroWilk(d)
	if w1 != w2 || p1 != p2 {
		t.Errorf("want equal results, got W=%v p=%v and W=%v p=%v", w1, p1, w2, p2)
	}
	if !aeq(w1, 0.9542508188572564) || !aeq(p1, 0.718856511328482) {
		t.Errorf("got W=%v p=%v", w1, p1)
	}
	if c[0] != 100 {
		t.Errorf("ShapiroWilk modified its input")
	}
}

func TestShapiroWilkNormalScores(t *testing.T) {
	// Expected normal order statistics are as normal as a sample
	// gets.
	xs := normalScores(30, 0, 1)
	_, p, err := ShapiroWilk(xs)
	if err != nil {
		t.Fatal(err)
	}
	if p < 0.99 {
		t.Errorf("want p near 1 for normal scores, got %v", p)
	}
}

func TestShapiroWilkTooSmall(t *testing.T) {
	for _, xs := range [][]float64{nil, {1}, {1, 2}} {
		_, _, err := ShapiroWilk(xs)
		if !errors.Is(err, ErrInsufficientData) {
			t.Errorf("%v: want ErrInsufficientData, got %v", xs, err)
		}
	}
}

func TestPoly(t *testing.T) {
	if got := poly([]float64{1, 2, 3}, 2); got != 17 {
		t.Errorf("want 17, got %v", got)
	}
	if got := poly(nil, 2); got != 0 {
		t.Errorf("want 0, got %v", got)
	}
}

func seq(lo, hi int) []float64 {
	var xs []float64
	for i := lo; i <= hi; i++ {
		xs = append(xs, float64(i))
	}
	return xs
}

// normalScores returns n approximate expected order statistics of
// N(mu, sigma²), in a scrambled order.
func normalScores(n int, mu, sigma float64) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		q := distuv.UnitNormal.Quantile((float64(i+1) - 0.375) / (float64(n) + 0.25))
		// 7 is coprime with the sizes used in tests.
		xs[(i*7)%n] = mu + sigma*q
	}
	return xs
}
