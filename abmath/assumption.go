// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import "fmt"

// A NormalityResult is the outcome of the Shapiro-Wilk test on one
// sample.
type NormalityResult struct {
	W float64
	P float64

	// Normal is P > Thresholds.NormalityAlpha.
	Normal bool

	// Warnings is a list of warnings about this result that should
	// be reported to the user.
	Warnings []string `json:",omitempty"`
}

// A VarianceResult is the outcome of Levene's test across the two
// samples.
type VarianceResult struct {
	Stat float64
	P    float64

	// Equal is P > Thresholds.VarianceAlpha.
	Equal bool

	// Computed is false if the test was not run.
	Computed bool

	Center Center
}

// An AssumptionResult collects the assumption checks that select
// the hypothesis test.
type AssumptionResult struct {
	Control  NormalityResult
	Test     NormalityResult
	Variance VarianceResult
}

// BothNormal reports whether neither sample failed the normality
// check.
func (a AssumptionResult) BothNormal() bool {
	return a.Control.Normal && a.Test.Normal
}

// CheckAssumptions tests each sample for normality and the pair for
// equal variances. Thresholds come from control.
//
// Levene's test is run even when a sample is not normal. The decision
// table ignores it in that case, but it is reported.
func CheckAssumptions(control, test *Sample) (AssumptionResult, error) {
	thr := control.thresholds()
	var res AssumptionResult
	var err error
	if res.Control, err = checkNormal(Control, control, thr.NormalityAlpha); err != nil {
		return AssumptionResult{}, err
	}
	if res.Test, err = checkNormal(Test, test, thr.NormalityAlpha); err != nil {
		return AssumptionResult{}, err
	}

	stat, p, err := Levene(thr.Center, control.Values, test.Values)
	if err != nil {
		return AssumptionResult{}, err
	}
	res.Variance = VarianceResult{
		Stat:     stat,
		P:        p,
		Equal:    p > thr.VarianceAlpha,
		Computed: true,
		Center:   thr.Center,
	}
	return res, nil
}

func checkNormal(g Group, s *Sample, alpha float64) (NormalityResult, error) {
	if s.Len() < shapiroMinN {
		return NormalityResult{}, &InsufficientDataError{Group: g, N: s.Len(), Min: shapiroMinN}
	}
	w, p, err := ShapiroWilk(s.Values)
	if err != nil {
		return NormalityResult{}, err
	}
	res := NormalityResult{W: w, P: p, Normal: p > alpha}
	if s.Len() > shapiroMaxN {
		res.Warnings = append(res.Warnings, fmt.Sprintf("p-value may be inaccurate for n > %d", shapiroMaxN))
	}
	return res, nil
}
