// core/plotting/plotting.go
// Package plotting draws measurement series and fitted curves. Save
// picks the backend from the file extension; .tex emits PGF source for
// direct \input into a report, .png/.pdf/.svg rasterize or embed.
package plotting

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"labtool/core/fitting"
)

// Options label and dress a plot.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	// InLabel and OutLabel name the measured points and the sampled
	// curve in the legend.
	InLabel  string
	OutLabel string
	Grid     bool
	Legend   bool
}

// DefaultOptions is the usual look for quick fit inspection.
var DefaultOptions = Options{
	InLabel:  "measured",
	OutLabel: "fitted",
	Grid:     true,
	Legend:   true,
}

func newPlot(opt Options) *plot.Plot {
	p := plot.New()
	p.Title.Text = opt.Title
	p.X.Label.Text = opt.XLabel
	p.Y.Label.Text = opt.YLabel
	if opt.Grid {
		p.Add(plotter.NewGrid())
	}
	if opt.Legend {
		p.Legend.Top = true
	}
	return p
}

func xys(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("plotting: %d x values vs %d y values", len(x), len(y))
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts, nil
}

// XYPlot builds a single-line plot of y against x.
func XYPlot(x, y []float64, opt Options) (*plot.Plot, error) {
	pts, err := xys(x, y)
	if err != nil {
		return nil, err
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("plotting: line: %w", err)
	}
	p := newPlot(opt)
	p.Add(line)
	if opt.Legend && opt.OutLabel != "" {
		p.Legend.Add(opt.OutLabel, line)
	}
	return p, nil
}

// FitPlot overlays the measured points of a fitted or interpolated
// series with its sampled curve.
func FitPlot(s fitting.Series, opt Options) (*plot.Plot, error) {
	inPts, err := xys(s.XIn, s.YIn)
	if err != nil {
		return nil, err
	}
	outPts, err := xys(s.XOut, s.YOut)
	if err != nil {
		return nil, err
	}
	scatter, err := plotter.NewScatter(inPts)
	if err != nil {
		return nil, fmt.Errorf("plotting: scatter: %w", err)
	}
	line, err := plotter.NewLine(outPts)
	if err != nil {
		return nil, fmt.Errorf("plotting: line: %w", err)
	}
	p := newPlot(opt)
	p.Add(scatter, line)
	if opt.Legend {
		if opt.InLabel != "" {
			p.Legend.Add(opt.InLabel, scatter)
		}
		if opt.OutLabel != "" {
			p.Legend.Add(opt.OutLabel, line)
		}
	}
	return p, nil
}

// Save writes the plot at 15x10 cm under the format the extension
// names.
func Save(p *plot.Plot, path string) error {
	if err := p.Save(15*vg.Centimeter, 10*vg.Centimeter, path); err != nil {
		return fmt.Errorf("plotting: save %s: %w", path, err)
	}
	return nil
}
