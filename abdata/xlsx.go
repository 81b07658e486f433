// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abdata

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// A Sheet maps one worksheet of a workbook to a group label.
type Sheet struct {
	Name  string
	Group string
}

// DefaultSheets is the workbook layout of the bidding experiment:
// maximum bidding on "Control Group", average bidding on "Test Group".
var DefaultSheets = []Sheet{
	{Name: "Control Group", Group: "control"},
	{Name: "Test Group", Group: "test"},
}

// ReadXLSX reads one group per sheet from the workbook at path. The
// first non-blank row of each sheet names the metric columns; blank
// rows are skipped. If sheets is empty, DefaultSheets is used.
func ReadXLSX(path string, sheets []Sheet) (*Dataset, error) {
	if len(sheets) == 0 {
		sheets = DefaultSheets
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	var groups []Group
	for _, s := range sheets {
		rows, err := f.GetRows(s.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: reading sheet %q: %w", path, s.Name, err)
		}
		g, err := sheetGroup(s, rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return Concat(groups...)
}

func sheetGroup(s Sheet, rows [][]string) (Group, error) {
	var names []string
	var idx []int
	var data [][]float64
	for i, row := range rows {
		if blank(row) {
			continue
		}
		if names == nil {
			var err error
			if names, idx, err = header(s.Name, row); err != nil {
				return Group{}, err
			}
			continue
		}
		vals, err := parseRow(s.Name, i+1, names, idx, row)
		if err != nil {
			return Group{}, err
		}
		data = append(data, vals)
	}
	if names == nil {
		return Group{}, fmt.Errorf("sheet %q has no header row", s.Name)
	}
	return NewGroup(s.Group, names, data)
}
