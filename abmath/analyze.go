// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

// A Result is the complete outcome of comparing two groups.
type Result struct {
	Assumptions AssumptionResult
	Outcome     TestOutcome
	Verdict     Verdict

	// ControlMean and TestMean are the observed group means.
	ControlMean, TestMean float64

	// ControlN and TestN are the group sizes.
	ControlN, TestN int
}

// Analyze checks the assumptions on control and test, selects and
// runs the hypothesis test, and interprets it at
// control's Alpha. The first error aborts the analysis.
func Analyze(control, test *Sample) (*Result, error) {
	a, err := CheckAssumptions(control, test)
	if err != nil {
		return nil, err
	}
	o, err := RunTest(control, test, SelectMethod(a))
	if err != nil {
		return nil, err
	}
	cm, tm := control.Mean(), test.Mean()
	return &Result{
		Assumptions: a,
		Outcome:     o,
		Verdict:     Interpret(o, control.thresholds().Alpha, cm, tm),
		ControlMean: cm,
		TestMean:    tm,
		ControlN:    control.Len(),
		TestN:       test.Len(),
	}, nil
}
