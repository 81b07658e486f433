// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/csv"
	"io"
	"strconv"
)

// formatCSV writes one row per group followed by one row for the
// comparison. Both row kinds share a header, leaving inapplicable
// cells empty.
func formatCSV(w io.Writer, r *report) error {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	res := r.Result
	cw := csv.NewWriter(w)
	cw.Write([]string{"metric", "row", "group", "n", "mean", "ci_lo", "ci_hi", "w", "stat", "p", "verdict"})
	for _, g := range r.Groups {
		cw.Write([]string{r.Metric, "shapiro-wilk", g.Label, strconv.Itoa(g.N),
			f(g.CI.Center), f(g.CI.Lo), f(g.CI.Hi),
			f(g.Normality.W), "", f(g.Normality.P), yesNo(g.Normality.Normal)})
	}
	v := res.Assumptions.Variance
	cw.Write([]string{r.Metric, "levene-" + v.Center.String(), "", "", "", "", "", "",
		f(v.Stat), f(v.P), yesNo(v.Equal)})
	o := res.Outcome
	cw.Write([]string{r.Metric, o.Method.Name(), r.higher(), "", "", "", "", "",
		f(o.Statistic), f(o.P), res.Verdict.Decision()})
	cw.Flush()
	return cw.Error()
}
