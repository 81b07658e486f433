// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"testing"
)

func TestNewSampleCopies(t *testing.T) {
	in := []float64{3, 1, 2}
	s := NewSample(in, nil)
	in[0] = 100
	if s.Values[0] != 3 {
		t.Errorf("sample changed with its input: got %v", s.Values)
	}
	// Values keep input order.
	if s.Values[1] != 1 || s.Values[2] != 2 {
		t.Errorf("want input order [3 1 2], got %v", s.Values)
	}
	if *s.Thresholds != DefaultThresholds {
		t.Errorf("want default thresholds, got %+v", *s.Thresholds)
	}
}

func TestSampleMoments(t *testing.T) {
	s := NewSample([]float64{100, 102, 98, 101, 99, 97, 103, 100, 102, 98}, nil)
	if got := s.Mean(); !aeq(got, 100) {
		t.Errorf("want mean 100, got %v", got)
	}
	if got := s.StdDev(); !aeq(got, 2) {
		t.Errorf("want std dev 2, got %v", got)
	}
	if s.constant() {
		t.Errorf("sample reported constant")
	}
	if !NewSample([]float64{10, 10, 10}, nil).constant() {
		t.Errorf("constant sample not reported constant")
	}
}

func TestSampleLiteral(t *testing.T) {
	// A Sample built without NewSample uses DefaultThresholds.
	s := &Sample{Values: []float64{10, 10, 10}}
	if got := s.thresholds(); got != DefaultThresholds {
		t.Errorf("want default thresholds, got %+v", got)
	}
	if !s.constant() || s.Mean() != 10 || s.Len() != 3 {
		t.Errorf("constant=%v mean=%v len=%d", s.constant(), s.Mean(), s.Len())
	}
	// Values are read when used.
	s.Values[2] = 13
	if s.constant() || s.Mean() != 11 {
		t.Errorf("after edit: constant=%v mean=%v", s.constant(), s.Mean())
	}
}

func TestMeanCI(t *testing.T) {
	// This is a thin wrapper around stats.Sample.MeanCI, so just
	// do a smoke test.
	s := NewSample([]float64{-8, 2, 3, 4, 5, 6}, nil)
	got := s.MeanCI(0.95)
	want := Summary{Center: 2, Lo: -3.351092806089359, Hi: 7.351092806089359, Confidence: 0.95}
	if !aeq(got.Center, want.Center) || !aeq(got.Lo, want.Lo) || !aeq(got.Hi, want.Hi) || got.Confidence != want.Confidence {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func aeq(x, y float64) bool {
	if x < 0 && y < 0 {
		x, y = -x, -y
	}
	// Check that x and y are equal to 6 digits.
	const factor = 1 - 1e-6
	return x*factor <= y && y*factor <= x
}
