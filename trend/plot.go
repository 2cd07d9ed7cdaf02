// SPDX-License-Identifier: MIT

package trend

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plot defaults.
const (
	DefaultPlotWidth   = 6 * vg.Inch
	DefaultPlotHeight  = 4 * vg.Inch
	DefaultPlotSamples = 100
)

// ErrResultMismatch is returned when the observations do not belong to the result.
var ErrResultMismatch = errors.New("trend: observations do not match the result")

const panicPlotSize = "trend: WithPlotSize: width and height must be positive"

// PlotOption configures fit-curve rendering.
type PlotOption func(*plotOptions)

type plotOptions struct {
	title         string
	width, height vg.Length
	samples       int
}

// WithPlotTitle sets the chart title (default: "<kind> trend").
func WithPlotTitle(title string) PlotOption {
	return func(o *plotOptions) { o.title = title }
}

// WithPlotSize sets the canvas size. Panics on non-positive sizes.
func WithPlotSize(width, height vg.Length) PlotOption {
	if width <= 0 || height <= 0 {
		panic(panicPlotSize)
	}

	return func(o *plotOptions) { o.width, o.height = width, height }
}

func gatherPlotOptions(res Result, opts ...PlotOption) plotOptions {
	o := plotOptions{
		title:   res.Kind.String() + " trend",
		width:   DefaultPlotWidth,
		height:  DefaultPlotHeight,
		samples: DefaultPlotSamples,
	}
	for _, set := range opts {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// NewPlot draws the observations, the fitted curve over [0, N] and the
// forecast point at t = N.
//
// Errors:
//   - ErrEmptyInput for an empty series; ErrResultMismatch when len(ys) != res.N.
func NewPlot(ys []float64, res Result, opts ...PlotOption) (*plot.Plot, error) {
	if len(ys) == 0 {
		return nil, fmt.Errorf("NewPlot: %w", ErrEmptyInput)
	}
	if len(ys) != res.N {
		return nil, fmt.Errorf("NewPlot: %d observations for a fit over %d: %w", len(ys), res.N, ErrResultMismatch)
	}
	o := gatherPlotOptions(res, opts...)

	p := plot.New()
	p.Title.Text = o.title
	p.X.Label.Text = "t"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(ys))
	for i, y := range ys {
		pts[i].X = float64(i)
		pts[i].Y = y
	}
	observed, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, fmt.Errorf("NewPlot: %w", err)
	}
	observed.GlyphStyle.Shape = draw.CircleGlyph{}

	curve := plotter.NewFunction(res.At)
	curve.XMin, curve.XMax = 0, float64(res.N)
	curve.Samples = o.samples
	curve.Color = color.RGBA{B: 200, A: 255}
	curve.Width = vg.Points(1.5)

	next, err := plotter.NewScatter(plotter.XYs{{X: float64(res.N), Y: res.Forecast}})
	if err != nil {
		return nil, fmt.Errorf("NewPlot: %w", err)
	}
	next.GlyphStyle.Shape = draw.CrossGlyph{}
	next.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
	next.GlyphStyle.Radius = vg.Points(4)

	p.Add(observed, curve, next)
	p.Legend.Add("observed", observed)
	p.Legend.Add(fmt.Sprintf("fit (R²=%.3f)", res.RSquared), curve)
	p.Legend.Add("forecast", next)
	p.Legend.Top = true

	return p, nil
}

// SavePlot renders the chart to path; the format follows the file extension
// (.png, .svg, .pdf, ...).
func SavePlot(path string, ys []float64, res Result, opts ...PlotOption) error {
	p, err := NewPlot(ys, res, opts...)
	if err != nil {
		return err
	}
	o := gatherPlotOptions(res, opts...)
	if err = p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("SavePlot(%s): %w", path, err)
	}

	return nil
}

// WritePlot renders the chart in the given format ("png", "svg", "pdf", ...) to w.
func WritePlot(w io.Writer, format string, ys []float64, res Result, opts ...PlotOption) error {
	p, err := NewPlot(ys, res, opts...)
	if err != nil {
		return err
	}
	o := gatherPlotOptions(res, opts...)
	wt, err := p.WriterTo(o.width, o.height, format)
	if err != nil {
		return fmt.Errorf("WritePlot(%s): %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("WritePlot(%s): %w", format, err)
	}

	return nil
}
