// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/bidlab/bidstat/abdata"
	"github.com/bidlab/bidstat/abmath"
)

// confidence is the level of the per-group mean intervals.
const confidence = 0.95

// A report is everything the output formats print.
type report struct {
	Metric string
	Result *abmath.Result
	Groups [2]groupReport
}

type groupReport struct {
	Label     string
	Role      abmath.Group
	N         int
	CI        abmath.Summary
	Normality abmath.NormalityResult
	Describe  *abdata.Description
}

func newReport(metric, controlLabel, testLabel string, control, test *abmath.Sample, res *abmath.Result) *report {
	return &report{
		Metric: metric,
		Result: res,
		Groups: [2]groupReport{
			{
				Label:     controlLabel,
				Role:      abmath.Control,
				N:         res.ControlN,
				CI:        control.MeanCI(confidence),
				Normality: res.Assumptions.Control,
			},
			{
				Label:     testLabel,
				Role:      abmath.Test,
				N:         res.TestN,
				CI:        test.MeanCI(confidence),
				Normality: res.Assumptions.Test,
			},
		},
	}
}

func (r *report) describe(control, test []float64) {
	for i, xs := range [][]float64{control, test} {
		d := abdata.Describe(xs)
		r.Groups[i].Describe = &d
	}
}

func (r *report) hasDescribe() bool {
	return r.Groups[0].Describe != nil
}

// higher returns the label of the group with the higher mean, or
// "tie".
func (r *report) higher() string {
	switch r.Result.Verdict.HigherGroup {
	case abmath.Control:
		return r.Groups[0].Label
	case abmath.Test:
		return r.Groups[1].Label
	}
	return abmath.Tie.String()
}

// warnings collects the warnings of every stage, prefixed by where
// they came from.
func (r *report) warnings() []string {
	var ws []string
	for _, g := range r.Groups {
		for _, w := range g.Normality.Warnings {
			ws = append(ws, fmt.Sprintf("%s: %s", g.Label, w))
		}
	}
	ws = append(ws, r.Result.Outcome.Warnings...)
	return ws
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// num formats a statistic. P-values can be tiny, so small magnitudes
// switch to exponent form instead of printing 0.0000.
func num(v float64) string {
	switch {
	case math.IsInf(v, 0) || math.IsNaN(v):
		return fmt.Sprint(v)
	case v != 0 && math.Abs(v) < 1e-4:
		return fmt.Sprintf("%.2e", v)
	}
	return fmt.Sprintf("%.4f", v)
}

// jsonReport is the JSON form of a report.
type jsonReport struct {
	Metric      string
	Groups      []jsonGroup
	Variance    abmath.VarianceResult
	Outcome     abmath.TestOutcome
	Verdict     abmath.Verdict
	Decision    string
	HigherLabel string
}

type jsonGroup struct {
	Label     string
	Role      abmath.Group
	N         int
	Mean      float64
	CI        [2]float64
	Normality abmath.NormalityResult
	Describe  *abdata.Description `json:",omitempty"`
}

func (r *report) jsonValue() jsonReport {
	j := jsonReport{
		Metric:      r.Metric,
		Variance:    r.Result.Assumptions.Variance,
		Outcome:     r.Result.Outcome,
		Verdict:     r.Result.Verdict,
		Decision:    r.Result.Verdict.Decision(),
		HigherLabel: r.higher(),
	}
	// JSON has no infinities.
	if math.IsInf(j.Variance.Stat, 0) {
		j.Variance.Stat = math.MaxFloat64
	}
	for _, g := range r.Groups {
		j.Groups = append(j.Groups, jsonGroup{
			Label:     g.Label,
			Role:      g.Role,
			N:         g.N,
			Mean:      g.CI.Center,
			CI:        [2]float64{g.CI.Lo, g.CI.Hi},
			Normality: g.Normality,
			Describe:  g.Describe,
		})
	}
	return j
}
