// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"errors"
	"testing"
)

func TestCheckAssumptions(t *testing.T) {
	a := []float64{8.88, 9.12, 9.04, 8.98, 9.00, 9.08, 9.01, 8.85, 9.06, 8.99}
	b := []float64{8.88, 8.95, 9.29, 9.44, 9.15, 9.58, 8.36, 9.18, 8.67, 9.05}

	check := func(thr Thresholds, wantCenter Center, wantStat, wantP float64) {
		t.Helper()
		res, err := CheckAssumptions(NewSample(a, &thr), NewSample(b, &thr))
		if err != nil {
			t.Fatal(err)
		}
		v := res.Variance
		if !v.Computed || v.Center != wantCenter || !aeq(v.Stat, wantStat) || !aeq(v.P, wantP) {
			t.Errorf("want Levene(%v) stat=%v p=%v, got %+v", wantCenter, wantStat, wantP, v)
		}
		if v.Equal != (v.P > thr.VarianceAlpha) {
			t.Errorf("Equal=%v inconsistent with p=%v at %v", v.Equal, v.P, thr.VarianceAlpha)
		}
		for _, n := range []NormalityResult{res.Control, res.Test} {
			if n.Normal != (n.P > thr.NormalityAlpha) {
				t.Errorf("Normal=%v inconsistent with p=%v at %v", n.Normal, n.P, thr.NormalityAlpha)
			}
		}
	}

	check(DefaultThresholds, CenterMedian, 8.461374333228713, 0.009364737715584402)

	// The mean-centered variant and a lower variance level.
	thr := DefaultThresholds
	thr.Center = CenterMean
	thr.VarianceAlpha = 0.001
	check(thr, CenterMean, 8.83873787256358, 0.008149720958328825)
}

func TestCheckNormalLarge(t *testing.T) {
	// Beyond shapiroMaxN the test still runs but carries a warning.
	xs := normalScores(shapiroMaxN+1, 0, 1)
	res, err := checkNormal(Control, NewSample(xs, nil), 0.05)
	if err != nil {
		t.Fatal(err)
	}
	if !(res.W > 0.99 && res.W <= 1) || !(res.P > 0 && res.P <= 1) {
		t.Errorf("want W near 1 and a p-value in (0, 1], got %+v", res)
	}
	if res.Normal != (res.P > 0.05) {
		t.Errorf("Normal=%v inconsistent with p=%v", res.Normal, res.P)
	}
	if len(res.Warnings) == 0 {
		t.Errorf("n=%d: want a warning", len(xs))
	}

	res, err = checkNormal(Control, NewSample(xs[:shapiroMaxN], nil), 0.05)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("n=%d: unexpected warnings %q", shapiroMaxN, res.Warnings)
	}
}

func TestCheckAssumptionsTooSmall(t *testing.T) {
	check := func(control, test []float64, wantGroup Group) {
		t.Helper()
		_, err := CheckAssumptions(NewSample(control, nil), NewSample(test, nil))
		var ide *InsufficientDataError
		if !errors.As(err, &ide) {
			t.Fatalf("want InsufficientDataError, got %v", err)
		}
		if ide.Group != wantGroup || ide.Min != 3 {
			t.Errorf("got %+v", ide)
		}
	}
	check([]float64{1, 2}, seq(1, 5), Control)
	check(seq(1, 5), []float64{1}, Test)
}
