// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a align, w int, want string) {
		t.Helper()
		got := a.pad(s, w)
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", alignLeft, 6, "abc   ")
	check("abc", alignCenter, 6, " abc  ")
	check("abc", alignCenter, 7, "  abc  ")
	check("abc", alignRight, 6, "   abc")
	check("☃", alignRight, 4, "   ☃")
	check("toolong", alignRight, 3, "toolong")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%sgot:\n%s", want, got)
		}
		// Reset tab.
		tab = Table{}
	}

	// Basic test.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("a  b  c\nd  e  f\n")

	// Cell padding, without trailing spaces.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("long").Cell("e").Cell("long")
	check("a     b  c\nlong  e  long\n")

	// Alignment.
	tab.Row().Cell("a", Left).Cell("b", Center).Cell("c", Right)
	tab.Row().Cell("xxx").Cell("xxx").Cell("xxx")
	check("a     b     c\nxxx  xxx  xxx\n")

	// Short rows and blank rows.
	tab.Row().Cell("a")
	tab.Row()
	tab.Row().Cell("d").Cell("e")
	check("a\n\nd  e\n")

	// Cell without Row starts one.
	tab.Cell("x")
	check("x\n")
}
