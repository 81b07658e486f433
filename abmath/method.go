// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"errors"
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// A Method is a two-sample hypothesis test.
type Method int

const (
	// TTestEqualVar is the independent two-sample t-test with
	// pooled variance.
	TTestEqualVar Method = iota

	// TTestUnequalVar is Welch's t-test.
	TTestUnequalVar

	// MannWhitneyU is the Mann-Whitney U rank-sum test.
	MannWhitneyU
)

func (m Method) String() string {
	switch m {
	case TTestEqualVar:
		return "t-test (equal variance)"
	case TTestUnequalVar:
		return "Welch t-test"
	case MannWhitneyU:
		return "Mann-Whitney U test"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Name returns a short identifier for m, suitable for
// machine-readable output.
func (m Method) Name() string {
	switch m {
	case TTestEqualVar:
		return "ttest-equal-var"
	case TTestUnequalVar:
		return "ttest-unequal-var"
	case MannWhitneyU:
		return "mann-whitney-u"
	}
	return m.String()
}

func (m Method) MarshalText() ([]byte, error) {
	return []byte(m.Name()), nil
}

// parametric reports whether m estimates variance from the samples.
func (m Method) parametric() bool {
	return m == TTestEqualVar || m == TTestUnequalVar
}

// SelectMethod chooses the hypothesis test for a pair of samples from
// the outcome of their assumption checks:
//
//  1. if either sample is not normal, MannWhitneyU;
//  2. else if the variances are equal, TTestEqualVar;
//  3. else TTestUnequalVar.
func SelectMethod(a AssumptionResult) Method {
	switch {
	case !a.BothNormal():
		return MannWhitneyU
	case a.Variance.Equal:
		return TTestEqualVar
	default:
		return TTestUnequalVar
	}
}

// A TestOutcome is the result of a two-sided two-sample test.
type TestOutcome struct {
	Method Method

	// Statistic is t for the t-tests and U for the rank test. It
	// is oriented as control versus test, so a negative t means
	// the test group has the larger mean.
	Statistic float64

	// P is the two-sided p-value of the null hypothesis that the
	// samples have the same location.
	P float64

	// DoF is the degrees of freedom of the t distribution. It is
	// 0 for the rank test.
	DoF float64 `json:",omitempty"`

	// Warnings is a list of warnings about this outcome.
	Warnings []string `json:",omitempty"`
}

// RunTest runs the two-sided test m on the raw values of control and
// test. Neither sample is modified.
//
// If every observation of both samples has the same value, there is
// no difference to detect and RunTest reports P = 1. Otherwise a
// constant sample under a t-test is a *DegenerateSampleError.
//
// The Mann-Whitney U test uses the exact distribution of U, which
// accounts for ties, when both samples are small: at most
// stats.MannWhitneyExactLimit observations each, or
// stats.MannWhitneyTiesExactLimit if any values are tied. Larger
// samples use the normal approximation with tie and continuity
// corrections. Tools that always use the normal approximation when
// there are ties report different p-values for small tied samples.
func RunTest(control, test *Sample, m Method) (TestOutcome, error) {
	if control.Len() == 0 {
		return TestOutcome{}, &InsufficientDataError{Group: Control, N: 0, Min: 1}
	}
	if test.Len() == 0 {
		return TestOutcome{}, &InsufficientDataError{Group: Test, N: 0, Min: 1}
	}

	allEqual := control.constant() && test.constant() && control.Values[0] == test.Values[0]
	if allEqual {
		out := TestOutcome{Method: m, P: 1, Warnings: []string{"all observations are equal"}}
		if m.parametric() {
			out.DoF = float64(control.Len() + test.Len() - 2)
		} else {
			out.Statistic = float64(control.Len()*test.Len()) / 2
		}
		return out, nil
	}

	if m.parametric() {
		if control.constant() {
			return TestOutcome{}, &DegenerateSampleError{Group: Control, Method: m}
		}
		if test.constant() {
			return TestOutcome{}, &DegenerateSampleError{Group: Test, Method: m}
		}
	}

	switch m {
	case TTestEqualVar, TTestUnequalVar:
		ttest := stats.TwoSampleTTest
		if m == TTestUnequalVar {
			ttest = stats.TwoSampleWelchTTest
		}
		r, err := ttest(control.sample(), test.sample(), stats.LocationDiffers)
		if err != nil {
			return TestOutcome{}, translateErr(err, control, test, m)
		}
		return TestOutcome{Method: m, Statistic: r.T, P: r.P, DoF: r.DoF}, nil

	case MannWhitneyU:
		r, err := stats.MannWhitneyUTest(control.Values, test.Values, stats.LocationDiffers)
		if err != nil {
			return TestOutcome{}, translateErr(err, control, test, m)
		}
		return TestOutcome{Method: m, Statistic: r.U, P: r.P}, nil
	}
	return TestOutcome{}, fmt.Errorf("unknown method %v", m)
}

// translateErr maps go-moremath's sentinel errors to this package's
// error types.
func translateErr(err error, control, test *Sample, m Method) error {
	switch {
	case errors.Is(err, stats.ErrSampleSize):
		g, n := Control, control.Len()
		if test.Len() < n {
			g, n = Test, test.Len()
		}
		return &InsufficientDataError{Group: g, N: n, Min: 2}
	case errors.Is(err, stats.ErrZeroVariance):
		g := Control
		if test.constant() {
			g = Test
		}
		return &DegenerateSampleError{Group: g, Method: m}
	}
	return fmt.Errorf("%v: %w", m, err)
}
