// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import "fmt"

// A Group identifies one arm of the experiment.
type Group int

const (
	// Control is the baseline arm, maximum bidding in the
	// bidding experiment.
	Control Group = iota
	// Test is the treatment arm, average bidding in the bidding
	// experiment.
	Test
	// Tie is used as a Verdict's HigherGroup when the two means
	// are equal.
	Tie
)

func (g Group) String() string {
	switch g {
	case Control:
		return "control"
	case Test:
		return "test"
	case Tie:
		return "tie"
	}
	return fmt.Sprintf("Group(%d)", int(g))
}

func (g Group) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// A Verdict interprets a TestOutcome at a significance level.
type Verdict struct {
	// Significant is true if the null hypothesis of equal means
	// is rejected.
	Significant bool

	// HigherGroup is the group with the larger observed mean.
	HigherGroup Group

	Alpha float64
}

// Decision returns "reject H0" or "fail to reject H0".
func (v Verdict) Decision() string {
	if v.Significant {
		return "reject H0"
	}
	return "fail to reject H0"
}

// Interpret decides whether o is significant at level alpha and
// which group has the higher observed mean. If alpha is not in (0,1),
// DefaultThresholds.Alpha is used.
func Interpret(o TestOutcome, alpha, controlMean, testMean float64) Verdict {
	if !(alpha > 0 && alpha < 1) {
		alpha = DefaultThresholds.Alpha
	}
	v := Verdict{Significant: o.P < alpha, Alpha: alpha}
	switch {
	case controlMean > testMean:
		v.HigherGroup = Control
	case testMean > controlMean:
		v.HigherGroup = Test
	default:
		v.HigherGroup = Tie
	}
	return v
}
