// core/fitting/fitting.go
// Package fitting wraps least-squares model fits and interpolation of
// measurement series behind one Series shape: the measured points plus
// a densely sampled curve ready for plotting or export.
package fitting

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Model evaluates a parameterized curve at x.
type Model func(x float64, params []float64) float64

// defaultDivisions is the sampling density of the output curve.
const defaultDivisions = 3000

// Series carries the measured points and the sampled curve of a fit or
// interpolation. XOut spans [min(XIn), max(XIn)] evenly.
type Series struct {
	XIn  []float64
	YIn  []float64
	XOut []float64
	YOut []float64

	fn func(float64) float64
}

// At evaluates the fitted curve at x.
func (s Series) At(x float64) float64 { return s.fn(x) }

// Len returns the number of measured points.
func (s Series) Len() int { return len(s.XIn) }

func newSeries(x, y []float64, fn func(float64) float64, divisions int) Series {
	if divisions < 2 {
		divisions = defaultDivisions
	}
	xOut := make([]float64, divisions)
	floats.Span(xOut, floats.Min(x), floats.Max(x))
	yOut := make([]float64, divisions)
	for i, xv := range xOut {
		yOut[i] = fn(xv)
	}
	return Series{
		XIn:  append([]float64(nil), x...),
		YIn:  append([]float64(nil), y...),
		XOut: xOut,
		YOut: yOut,
		fn:   fn,
	}
}

type config struct {
	divisions int
	names     []string
}

// Option adjusts a fit or interpolation.
type Option func(*config)

// Divisions sets how many samples the output curve gets (default 3000).
func Divisions(n int) Option {
	return func(c *config) { c.divisions = n }
}

// ParamNames labels the fitted parameters in reports. Without it they
// are named p0, p1, ...
func ParamNames(names ...string) Option {
	return func(c *config) { c.names = append([]string(nil), names...) }
}

func checkSeries(x, y []float64) error {
	if len(x) == 0 {
		return fmt.Errorf("fitting: empty series")
	}
	if len(x) != len(y) {
		return fmt.Errorf("fitting: %d x values vs %d y values", len(x), len(y))
	}
	return nil
}
