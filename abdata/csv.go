// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadCSV reads a combined table in CSV form. The header must include
// a GroupColumn column; every other column is a metric. Groups appear
// in the order of their first row.
func ReadCSV(name string, r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	var names []string
	var idx []int
	groupIdx := -1
	var order []string
	rows := map[string][][]float64{}
	for i, rec := range records {
		if blank(rec) {
			continue
		}
		if groupIdx < 0 {
			all, allIdx, err := header(name, rec)
			if err != nil {
				return nil, err
			}
			for k, n := range all {
				if strings.EqualFold(n, GroupColumn) {
					if groupIdx >= 0 {
						return nil, fmt.Errorf("%s: duplicate %q column", name, GroupColumn)
					}
					groupIdx = allIdx[k]
					continue
				}
				names = append(names, n)
				idx = append(idx, allIdx[k])
			}
			if groupIdx < 0 {
				return nil, fmt.Errorf("%s: header has no %q column", name, GroupColumn)
			}
			continue
		}
		var label string
		if groupIdx < len(rec) {
			label = strings.TrimSpace(rec[groupIdx])
		}
		if label == "" {
			return nil, fmt.Errorf("%s:%d: empty %s", name, i+1, GroupColumn)
		}
		vals, err := parseRow(name, i+1, names, idx, rec)
		if err != nil {
			return nil, err
		}
		if _, ok := rows[label]; !ok {
			order = append(order, label)
		}
		rows[label] = append(rows[label], vals)
	}
	if groupIdx < 0 {
		return nil, fmt.Errorf("%s: no header row", name)
	}

	var groups []Group
	for _, label := range order {
		g, err := NewGroup(label, names, rows[label])
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("%s: no observations", name)
	}
	return Concat(groups...)
}
