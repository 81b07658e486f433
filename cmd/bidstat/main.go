// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Bidstat decides whether the groups of a bidding A/B test differ in
// one metric.
//
// Usage:
//
//	bidstat [flags] input.xlsx|input.csv|-
//
// The input is either a workbook with one sheet per group (by default
// "Control Group" for maximum bidding and "Test Group" for average
// bidding), or a CSV file with a "group" column and one column per
// metric. The file name "-" reads CSV from standard input. Groups are
// labeled "control" and "test" unless -control-label and -test-label
// say otherwise; for CSV input the labels select rows by their group
// column.
//
// Bidstat first checks the assumptions of the two-sample t-test on
// the chosen metric (by default, Purchase): it tests each group for
// normality with the Shapiro-Wilk test and the pair for equal
// variances with Levene's test. It then picks the test:
//
//	either group not normal           Mann-Whitney U test
//	both normal, equal variances      two-sample t-test
//	both normal, unequal variances    Welch's t-test
//
// and reports whether the difference in means is significant at level
// -alpha, along with which group has the higher observed mean.
// Assumption checks always use the 0.05 level.
//
// The -format flag selects text (the default), csv, html, or json
// output. The -describe flag adds descriptive statistics of each
// group, and -chart writes a box plot of the groups to a png, svg, or
// pdf file.
//
// Flag defaults may be set with the environment variables
// BIDSTAT_ALPHA, BIDSTAT_METRIC, BIDSTAT_FORMAT, BIDSTAT_CENTER,
// BIDSTAT_CONTROL_SHEET, and BIDSTAT_TEST_SHEET, which are also read
// from a .env file in the current directory.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"

	"github.com/bidlab/bidstat/abchart"
	"github.com/bidlab/bidstat/abdata"
	"github.com/bidlab/bidstat/abmath"
	"github.com/bidlab/bidstat/internal/config"
)

func main() {
	// Log to stderr rather than to files unless asked otherwise.
	flag.Set("logtostderr", "true")
	defer glog.Flush()

	if err := bidstat(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var ue usageError
		if errors.As(err, &ue) {
			if ue.error != nil {
				fmt.Fprintf(os.Stderr, "bidstat: %s\n", ue.error)
			}
			os.Exit(2)
		}
		glog.Errorf("%s", err)
		glog.Flush()
		os.Exit(1)
	}
}

// A usageError is returned for bad command lines.
type usageError struct {
	error
}

var formats = []string{"text", "csv", "html", "json"}

func bidstat(w, wErr io.Writer, args []string) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("bidstat", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(flags.Output(), "usage: bidstat [flags] input.xlsx|input.csv|-\n")
		flags.PrintDefaults()
	}
	// Expose glog's flags (-v, -logtostderr, ...).
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		flags.Var(f.Value, f.Name, f.Usage)
	})

	flagAlpha := flags.Float64("alpha", cfg.Alpha, "consider the difference significant if p < `α`")
	flagMetric := flags.String("metric", cfg.Metric, "compare the `column` named")
	flagCenter := flags.String("center", cfg.Center, "Levene test `center`: median or mean")
	flagControlSheet := flags.String("control-sheet", cfg.ControlSheet, "workbook `sheet` of the control group")
	flagTestSheet := flags.String("test-sheet", cfg.TestSheet, "workbook `sheet` of the test group")
	flagControl := flags.String("control-label", "control", "`label` of the control group")
	flagTest := flags.String("test-label", "test", "`label` of the test group")
	flagFormat := flags.String("format", cfg.Format, "print results in `format`: "+strings.Join(formats, ", "))
	flagChart := flags.String("chart", "", "write a box plot of the groups to `file` (.png, .svg, .pdf)")
	flagDescribe := flags.Bool("describe", false, "print descriptive statistics of each group")
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return usageError{}
		}
		return usageError{err}
	}

	if flags.NArg() != 1 {
		flags.Usage()
		return usageError{fmt.Errorf("want exactly one input, got %d", flags.NArg())}
	}
	if !(*flagAlpha > 0 && *flagAlpha < 1) {
		return usageError{fmt.Errorf("-alpha %v not in (0, 1)", *flagAlpha)}
	}
	center, err := abmath.ParseCenter(*flagCenter)
	if err != nil {
		return usageError{err}
	}
	if !validFormat(*flagFormat) {
		return usageError{fmt.Errorf("unknown -format %q", *flagFormat)}
	}

	sheets := []abdata.Sheet{
		{Name: *flagControlSheet, Group: *flagControl},
		{Name: *flagTestSheet, Group: *flagTest},
	}
	ds, err := load(flags.Arg(0), sheets)
	if err != nil {
		return err
	}
	glog.V(1).Infof("read %d rows, groups %q, metrics %q", ds.Len(), ds.Groups(), ds.Metrics())

	controlXs, err := ds.Sample(*flagControl, *flagMetric)
	if err != nil {
		return err
	}
	testXs, err := ds.Sample(*flagTest, *flagMetric)
	if err != nil {
		return err
	}

	thr := abmath.DefaultThresholds
	thr.Alpha = *flagAlpha
	thr.Center = center
	control := abmath.NewSample(controlXs, &thr)
	test := abmath.NewSample(testXs, &thr)
	res, err := abmath.Analyze(control, test)
	if err != nil {
		return fmt.Errorf("%s: %w", *flagMetric, err)
	}
	logResult(res)

	rep := newReport(*flagMetric, *flagControl, *flagTest, control, test, res)
	if *flagDescribe {
		rep.describe(controlXs, testXs)
	}

	var buf bytes.Buffer
	switch *flagFormat {
	case "text":
		err = formatText(&buf, rep)
	case "csv":
		err = formatCSV(&buf, rep)
	case "html":
		err = formatHTML(&buf, rep)
	case "json":
		err = formatJSON(&buf, rep)
	}
	if err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return err
	}

	if *flagChart != "" {
		series := []abchart.Series{
			{Label: *flagControl, Values: controlXs},
			{Label: *flagTest, Values: testXs},
		}
		if err := abchart.Save(*flagChart, *flagMetric, series); err != nil {
			return err
		}
		glog.V(1).Infof("wrote chart %s", *flagChart)
	}
	return nil
}

func validFormat(f string) bool {
	for _, v := range formats {
		if v == f {
			return true
		}
	}
	return false
}

// load reads a Dataset from path, choosing the reader by extension.
func load(path string, sheets []abdata.Sheet) (*abdata.Dataset, error) {
	if path == "-" {
		return abdata.ReadCSV("stdin", os.Stdin)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return abdata.ReadXLSX(path, sheets)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return abdata.ReadCSV(path, f)
	}
	return nil, fmt.Errorf("%s: unknown input format (want .xlsx or .csv)", path)
}

func logResult(r *abmath.Result) {
	if !glog.V(1) {
		return
	}
	a := r.Assumptions
	glog.Infof("Shapiro-Wilk control: W=%.4f p=%.4f normal=%v", a.Control.W, a.Control.P, a.Control.Normal)
	glog.Infof("Shapiro-Wilk test: W=%.4f p=%.4f normal=%v", a.Test.W, a.Test.P, a.Test.Normal)
	glog.Infof("Levene (%v): stat=%.4f p=%.4f equal=%v", a.Variance.Center, a.Variance.Stat, a.Variance.P, a.Variance.Equal)
	glog.Infof("%v: stat=%.4f p=%.4f", r.Outcome.Method, r.Outcome.Statistic, r.Outcome.P)
}

func formatJSON(w io.Writer, r *report) error {
	data, err := json.MarshalIndent(r.jsonValue(), "", "\t")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
