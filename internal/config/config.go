// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config resolves bidstat's flag defaults from the
// environment, optionally populated from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvAlpha        = "BIDSTAT_ALPHA"
	EnvMetric       = "BIDSTAT_METRIC"
	EnvFormat       = "BIDSTAT_FORMAT"
	EnvCenter       = "BIDSTAT_CENTER"
	EnvControlSheet = "BIDSTAT_CONTROL_SHEET"
	EnvTestSheet    = "BIDSTAT_TEST_SHEET"
)

// Config holds the defaults of bidstat's command-line flags.
type Config struct {
	Alpha        float64
	Metric       string
	Format       string
	Center       string
	ControlSheet string
	TestSheet    string
}

// Default is the configuration used when nothing is set.
var Default = Config{
	Alpha:        0.05,
	Metric:       "Purchase",
	Format:       "text",
	Center:       "median",
	ControlSheet: "Control Group",
	TestSheet:    "Test Group",
}

// Load loads envFiles into the process environment (a missing file is
// not an error; variables already set win) and returns Default
// overridden by any BIDSTAT_* variables.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv returns Default overridden by the variables lookup finds.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default
	if v, ok := lookup(EnvAlpha); ok {
		a, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvAlpha, err)
		}
		if !(a > 0 && a < 1) {
			return Config{}, fmt.Errorf("%s: %v not in (0, 1)", EnvAlpha, a)
		}
		c.Alpha = a
	}
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	str(EnvMetric, &c.Metric)
	str(EnvFormat, &c.Format)
	str(EnvCenter, &c.Center)
	str(EnvControlSheet, &c.ControlSheet)
	str(EnvTestSheet, &c.TestSheet)
	return c, nil
}
