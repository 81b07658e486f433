// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abdata reads A/B test observations and extracts the
// per-group samples that package abmath compares.
//
// Observations of all groups are combined into one labeled table with
// a "group" column and one float64 column per metric, the layout an
// analyst gets by concatenating the per-group sheets of a workbook.
package abdata

import (
	"errors"
	"fmt"

	"github.com/aclements/go-gg/table"
)

// GroupColumn is the name of the column holding each row's group
// label in a combined Dataset.
const GroupColumn = "group"

var (
	ErrNoGroup  = errors.New("no such group")
	ErrNoMetric = errors.New("no such metric")
)

// A Group is the table of observations for one arm of the
// experiment. Every column of Table holds float64 values.
type Group struct {
	Label string
	Table *table.Table
}

// NewGroup builds a Group from rows of values in the order of cols.
func NewGroup(label string, cols []string, rows [][]float64) (Group, error) {
	data := make([][]float64, len(cols))
	for i := range data {
		data[i] = make([]float64, 0, len(rows))
	}
	for r, row := range rows {
		if len(row) != len(cols) {
			return Group{}, fmt.Errorf("group %s row %d: have %d values, want %d", label, r+1, len(row), len(cols))
		}
		for i, v := range row {
			data[i] = append(data[i], v)
		}
	}
	seen := make(map[string]bool)
	var b table.Builder
	for i, col := range cols {
		if seen[col] {
			return Group{}, fmt.Errorf("group %s: duplicate column %q", label, col)
		}
		seen[col] = true
		b.Add(col, data[i])
	}
	return Group{Label: label, Table: b.Done()}, nil
}

// A Dataset is the combined, labeled table of all groups.
type Dataset struct {
	t       *table.Table
	groups  []string
	metrics []string
}

// Concat combines groups into a single Dataset, adding GroupColumn.
// All groups must have the same metric columns.
func Concat(groups ...Group) (*Dataset, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("no groups to combine")
	}
	metrics := groups[0].Table.Columns()
	seen := map[string]bool{}
	var tabs []table.Grouping
	var labels []string
	for _, g := range groups {
		if seen[g.Label] {
			return nil, fmt.Errorf("duplicate group %q", g.Label)
		}
		seen[g.Label] = true
		if err := sameColumns(metrics, g.Table.Columns()); err != nil {
			return nil, fmt.Errorf("group %s: %w", g.Label, err)
		}
		for _, col := range g.Table.Columns() {
			if col == GroupColumn {
				return nil, fmt.Errorf("group %s: metric column name %q is reserved", g.Label, GroupColumn)
			}
		}
		label := make([]string, g.Table.Len())
		for i := range label {
			label[i] = g.Label
		}
		tabs = append(tabs, table.NewBuilder(g.Table).Add(GroupColumn, label).Done())
		labels = append(labels, g.Label)
	}
	t := table.Flatten(table.Concat(tabs...))
	return &Dataset{t: t, groups: labels, metrics: append([]string(nil), metrics...)}, nil
}

func sameColumns(want, got []string) error {
	have := map[string]bool{}
	for _, c := range got {
		have[c] = true
	}
	if len(want) != len(got) {
		return fmt.Errorf("columns %q differ from %q", got, want)
	}
	for _, c := range want {
		if !have[c] {
			return fmt.Errorf("columns %q differ from %q", got, want)
		}
	}
	return nil
}

// Groups returns the group labels of d in the order they were added.
func (d *Dataset) Groups() []string {
	return append([]string(nil), d.groups...)
}

// Metrics returns the metric column names of d.
func (d *Dataset) Metrics() []string {
	return append([]string(nil), d.metrics...)
}

// Len returns the total number of rows across all groups.
func (d *Dataset) Len() int {
	return d.t.Len()
}

// Table returns the combined table. Callers must not modify it.
func (d *Dataset) Table() *table.Table {
	return d.t
}

// Sample returns the values of metric for the rows of group, in input
// order. The returned slice is a copy.
func (d *Dataset) Sample(group, metric string) ([]float64, error) {
	if !d.hasMetric(metric) {
		return nil, fmt.Errorf("%w %q (have %q)", ErrNoMetric, metric, d.metrics)
	}
	if !d.hasGroup(group) {
		return nil, fmt.Errorf("%w %q (have %q)", ErrNoGroup, group, d.groups)
	}
	rows := table.Flatten(table.FilterEq(d.t, GroupColumn, group))
	col := rows.MustColumn(metric).([]float64)
	return append([]float64(nil), col...), nil
}

func (d *Dataset) hasGroup(group string) bool {
	for _, g := range d.groups {
		if g == group {
			return true
		}
	}
	return false
}

func (d *Dataset) hasMetric(metric string) bool {
	for _, m := range d.metrics {
		if m == metric {
			return true
		}
	}
	return false
}
