// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abmath decides whether two groups of an A/B test differ in
// the mean of one metric.
//
// This package is opinionated. Callers don't pick a statistical test.
// Instead, the package checks the distributional assumptions of the
// parametric test on each sample and chooses the appropriate test from
// a fixed decision table:
//
//	either sample not normal       -> Mann-Whitney U test
//	both normal, equal variances   -> two-sample t-test (pooled)
//	both normal, unequal variances -> Welch's t-test
//
// Every test is two-sided. All results are plain values; nothing is
// formatted and nothing is logged.
package abmath

import (
	"github.com/aclements/go-moremath/stats"
)

// A Sample is the sequence of observations of one metric for one
// group of an experiment.
//
// A Sample may be constructed directly. Every operation reads Values
// at the time it is called, so a Sample should not be modified while
// an analysis of it is running.
type Sample struct {
	// Values are the observations, in the order they were given.
	Values []float64

	// Thresholds stores the significance levels used by tests on
	// this sample. If nil, DefaultThresholds is used.
	Thresholds *Thresholds
}

// NewSample constructs a Sample from a set of observations. It copies
// values, so later changes to the slice don't affect the Sample.
// If t is nil, the Sample uses DefaultThresholds.
func NewSample(values []float64, t *Thresholds) *Sample {
	if t == nil {
		def := DefaultThresholds
		t = &def
	}
	return &Sample{Values: append([]float64(nil), values...), Thresholds: t}
}

// Len returns the number of observations in s.
func (s *Sample) Len() int {
	return len(s.Values)
}

func (s *Sample) thresholds() Thresholds {
	if s.Thresholds == nil {
		return DefaultThresholds
	}
	return *s.Thresholds
}

// sample returns the observations of s as a stats.Sample. The
// underlying slice is shared with s.
func (s *Sample) sample() stats.Sample {
	return stats.Sample{Xs: s.Values}
}

// Mean returns the arithmetic mean of s.
func (s *Sample) Mean() float64 {
	return s.sample().Mean()
}

// StdDev returns the sample standard deviation of s, with Bessel's
// correction.
func (s *Sample) StdDev() float64 {
	return s.sample().StdDev()
}

// constant reports whether every observation in s has the same value.
func (s *Sample) constant() bool {
	for _, v := range s.Values {
		if v != s.Values[0] {
			return false
		}
	}
	return true
}

// A Thresholds configures the significance levels used by the checks
// and the final test.
//
// This should be initialized to DefaultThresholds because it may be
// extended with other fields in the future.
type Thresholds struct {
	// Alpha is the significance level of the final hypothesis
	// test. The null hypothesis of equal means is rejected if
	// the test's p-value is below Alpha.
	Alpha float64

	// NormalityAlpha is the level of the Shapiro-Wilk test. A
	// sample is treated as normal if its p-value is above it.
	NormalityAlpha float64

	// VarianceAlpha is the level of Levene's test. Variances are
	// treated as equal if its p-value is above it.
	VarianceAlpha float64

	// Center is the location Levene's test measures deviations
	// from.
	Center Center
}

// DefaultThresholds contains the conventional 0.05 levels.
var DefaultThresholds = Thresholds{
	Alpha:          0.05,
	NormalityAlpha: 0.05,
	VarianceAlpha:  0.05,
	Center:         CenterMedian,
}

// A Summary summarizes a Sample by its mean and a confidence interval
// for the mean.
type Summary struct {
	// Center is the sample mean.
	Center float64

	// Lo and Hi give the bounds of the confidence interval around
	// Center.
	Lo, Hi float64

	// Confidence is the confidence level of the interval, in the
	// range [0,1].
	Confidence float64
}

// MeanCI returns the mean of s and its Student t confidence interval
// at the given confidence level, e.g. 0.95.
func (s *Sample) MeanCI(confidence float64) Summary {
	mean, lo, hi := s.sample().MeanCI(confidence)
	return Summary{Center: mean, Lo: lo, Hi: hi, Confidence: confidence}
}
