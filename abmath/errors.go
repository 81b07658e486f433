// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package abmath

import (
	"errors"
	"fmt"
)

var (
	// ErrInsufficientData matches any *InsufficientDataError
	// under errors.Is.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrDegenerateSample matches any *DegenerateSampleError
	// under errors.Is.
	ErrDegenerateSample = errors.New("degenerate sample")
)

// An InsufficientDataError reports that a group has fewer
// observations than a statistical test requires.
type InsufficientDataError struct {
	Group Group
	N     int // observations given
	Min   int // observations required
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s group has %d observations, need >= %d", e.Group, e.N, e.Min)
}

func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// A DegenerateSampleError reports that a group's observations are all
// equal, so a test that estimates variance from them is undefined.
type DegenerateSampleError struct {
	Group  Group
	Method Method
}

func (e *DegenerateSampleError) Error() string {
	return fmt.Sprintf("%s group has zero variance, %s is undefined", e.Group, e.Method)
}

func (e *DegenerateSampleError) Is(target error) bool {
	return target == ErrDegenerateSample
}
