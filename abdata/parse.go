// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abdata

import (
	"fmt"
	"strconv"
	"strings"
)

// A SyntaxError reports a cell that isn't a number.
type SyntaxError struct {
	Source string // sheet or file name
	Row    int    // 1-based, counting the header
	Column string
	Value  string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: column %s: cannot parse %q: %v", e.Source, e.Row, e.Column, e.Value, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// header returns the trimmed, non-empty column names of row and their
// cell indexes. Column names must be unique.
func header(source string, row []string) (names []string, idx []int, err error) {
	seen := make(map[string]bool)
	for i, c := range row {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if seen[c] {
			return nil, nil, fmt.Errorf("%s: duplicate column %q", source, c)
		}
		seen[c] = true
		names = append(names, c)
		idx = append(idx, i)
	}
	return names, idx, nil
}

// blank reports whether every cell in row is empty.
func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parseRow parses the cells of row at idx as float64s. line is the
// row's 1-based position in source.
func parseRow(source string, line int, names []string, idx []int, row []string) ([]float64, error) {
	vals := make([]float64, len(idx))
	for i, j := range idx {
		var cell string
		if j < len(row) {
			cell = strings.TrimSpace(row[j])
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, &SyntaxError{Source: source, Row: line, Column: names[i], Value: cell, Err: err}
		}
		vals[i] = v
	}
	return vals, nil
}
