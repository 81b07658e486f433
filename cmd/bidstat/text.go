// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bidlab/bidstat/internal/texttab"
)

func formatText(w io.Writer, r *report) error {
	res := r.Result
	fmt.Fprintf(w, "%s: %s vs %s\n\n", r.Metric, r.Groups[0].Label, r.Groups[1].Label)

	if r.hasDescribe() {
		var tab texttab.Table
		tab.Row()
		for _, h := range []string{"group", "n", "mean", "std", "min", "25%", "50%", "75%", "max"} {
			tab.Cell(h)
		}
		for _, g := range r.Groups {
			d := g.Describe
			tab.Row().Cell(g.Label).Cell(strconv.Itoa(d.N), texttab.Right)
			for _, v := range []float64{d.Mean, d.StdDev, d.Min, d.Q1, d.Median, d.Q3, d.Max} {
				tab.Cell(num(v), texttab.Right)
			}
		}
		if err := tab.Format(w); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	var tab texttab.Table
	tab.Row().Cell("group").Cell("n").Cell("mean").Cell(fmt.Sprintf("%.0f%% CI", confidence*100), texttab.Center).
		Cell("Shapiro-Wilk W").Cell("p").Cell("normal")
	for _, g := range r.Groups {
		tab.Row().Cell(g.Label).
			Cell(strconv.Itoa(g.N), texttab.Right).
			Cell(num(g.CI.Center), texttab.Right).
			Cell(fmt.Sprintf("[%s, %s]", num(g.CI.Lo), num(g.CI.Hi))).
			Cell(num(g.Normality.W), texttab.Right).
			Cell(num(g.Normality.P), texttab.Right).
			Cell(yesNo(g.Normality.Normal))
	}
	if err := tab.Format(w); err != nil {
		return err
	}

	v := res.Assumptions.Variance
	fmt.Fprintf(w, "\nLevene (%v): stat=%s p=%s equal variances: %s\n\n", v.Center, num(v.Stat), num(v.P), yesNo(v.Equal))

	o := res.Outcome
	tab = texttab.Table{}
	tab.Row().Cell("method").Cell("statistic").Cell("p").Cell("α").Cell("decision").Cell("higher")
	tab.Row().Cell(o.Method.String()).
		Cell(num(o.Statistic), texttab.Right).
		Cell(num(o.P), texttab.Right).
		Cell(strconv.FormatFloat(res.Verdict.Alpha, 'g', -1, 64), texttab.Right).
		Cell(res.Verdict.Decision()).
		Cell(r.higher())
	if err := tab.Format(w); err != nil {
		return err
	}

	if res.Verdict.Significant {
		fmt.Fprintf(w, "\nThe difference is significant: %s has the higher mean %s.\n", r.higher(), r.Metric)
	} else {
		fmt.Fprintf(w, "\nNo significant difference in mean %s.\n", r.Metric)
	}
	for _, warn := range r.warnings() {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
	return nil
}
