// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abchart draws the distributions of an A/B test's groups.
package abchart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Series is the observations of one group.
type Series struct {
	Label  string
	Values []float64
}

// Formats lists the image formats BoxPlot can write.
var Formats = []string{"png", "svg", "pdf"}

const (
	width  = 12 * vg.Centimeter
	height = 10 * vg.Centimeter
	boxW   = 40
)

// BoxPlot writes a box plot with one box per series to w, in the
// given image format. Each box is marked with its series' mean.
func BoxPlot(w io.Writer, format, metric string, series []Series) error {
	if !validFormat(format) {
		return fmt.Errorf("unsupported chart format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
	p, err := newPlot(metric, series)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// Save writes a box plot to path. The format is taken from the file
// extension.
func Save(path, metric string, series []Series) (err error) {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if !validFormat(format) {
		return fmt.Errorf("%s: unsupported chart format %q (want one of %s)", path, format, strings.Join(Formats, ", "))
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return BoxPlot(f, format, metric, series)
}

func validFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

func newPlot(metric string, series []Series) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("no series to plot")
	}
	p := plot.New()
	p.Title.Text = metric + " by group"
	p.Y.Label.Text = metric

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	var names []string
	means := make(plotter.XYs, 0, len(series))
	for i, s := range series {
		if len(s.Values) == 0 {
			return nil, fmt.Errorf("series %q is empty", s.Label)
		}
		b, err := plotter.NewBoxPlot(vg.Points(boxW), float64(i), plotter.Values(s.Values))
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Label, err)
		}
		p.Add(b)
		names = append(names, s.Label)
		means = append(means, plotter.XY{X: float64(i), Y: stats.Mean(s.Values)})
	}

	sc, err := plotter.NewScatter(means)
	if err != nil {
		return nil, err
	}
	sc.GlyphStyle.Shape = draw.CrossGlyph{}
	sc.GlyphStyle.Radius = vg.Points(4)
	p.Add(sc)
	p.Legend.Add("mean", sc)
	p.Legend.Top = true

	p.NominalX(names...)
	return p, nil
}
