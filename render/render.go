/*
Package render draws airfoil sections as line plots.

Every call builds its own plot, so a Renderer may be shared between
goroutines.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package render

import (
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/npillmayer/airfoil"
	"github.com/npillmayer/schuko/tracing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// tracer writes to trace with key 'render'
func tracer() tracing.Trace {
	return tracing.Select("render")
}

// Margin is the fraction of the chord left free around a section.
const Margin = 0.03

// Layer is a named series within a plot.
type Layer struct {
	Name   string
	Series airfoil.Series
}

// Renderer holds the canvas size for saved plots.
type Renderer struct {
	Width, Height vg.Length
}

// Default is a renderer for 8 × 4 inch images.
var Default = Renderer{Width: 8 * vg.Inch, Height: 4 * vg.Inch}

// Plot creates a plot of a single section.
func (r Renderer) Plot(s airfoil.Series, title string) (*plot.Plot, error) {
	return r.PlotLayers(title, Layer{Name: "outline", Series: s})
}

// PlotLayers creates a plot with one line per layer. The axes are fitted to
// the longest chord, with y spanning the same range as x, so sections show
// undistorted for square canvases.
func (r Renderer) PlotLayers(title string, layers ...Layer) (*plot.Plot, error) {
	if len(layers) == 0 {
		return nil, airfoil.ErrEmptySeries
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())
	chord := 0.0
	for i, l := range layers {
		if len(l.Series) == 0 {
			return nil, fmt.Errorf("%w: layer %q", airfoil.ErrEmptySeries, l.Name)
		}
		line, err := plotter.NewLine(xys(l.Series))
		if err != nil {
			return nil, fmt.Errorf("render: layer %q: %w", l.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(i)
		p.Add(line)
		if len(layers) > 1 {
			p.Legend.Add(l.Name, line)
		}
		chord = math.Max(chord, l.Series.Chord())
	}
	if chord <= 0 {
		return nil, fmt.Errorf("%w: chord %g", airfoil.ErrDegenerateChord, chord)
	}
	margin := Margin * chord
	p.X.Min, p.X.Max = -margin, chord+margin
	p.Y.Min, p.Y.Max = -(chord+margin)/2, (chord+margin)/2
	tracer().Debugf("plot %q: %d layer(s), chord %g", title, len(layers), chord)
	return p, nil
}

// Save plots s to a file. The image format is taken from the file extension.
func (r Renderer) Save(s airfoil.Series, title, path string) error {
	p, err := r.Plot(s, title)
	if err != nil {
		return err
	}
	tracer().Infof("saving plot to %s", path)
	return p.Save(r.Width, r.Height, path)
}

// SaveLayers plots all layers to a file, see PlotLayers.
func (r Renderer) SaveLayers(title, path string, layers ...Layer) error {
	p, err := r.PlotLayers(title, layers...)
	if err != nil {
		return err
	}
	tracer().Infof("saving plot of %d layer(s) to %s", len(layers), path)
	return p.Save(r.Width, r.Height, path)
}

// Encode plots s and writes the image in the given format ("png", "svg",
// "pdf", …) to w.
func (r Renderer) Encode(w io.Writer, s airfoil.Series, title, format string) (int64, error) {
	p, err := r.Plot(s, title)
	if err != nil {
		return 0, err
	}
	wt, err := p.WriterTo(r.Width, r.Height, strings.ToLower(format))
	if err != nil {
		return 0, err
	}
	return wt.WriteTo(w)
}

// PlotName derives the image file name for a coordinate file.
func PlotName(path, format string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + strings.ToLower(format)
}

func xys(s airfoil.Series) plotter.XYs {
	pts := make(plotter.XYs, len(s))
	for i, p := range s {
		pts[i].X, pts[i].Y = p.F()
	}
	return pts
}
