// core/fitting/interp.go
package fitting

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Kind selects an interpolation scheme.
type Kind string

const (
	Linear   Kind = "linear"   // piecewise linear
	Cubic    Kind = "cubic"    // natural cubic spline
	Akima    Kind = "akima"    // Akima spline, robust against outliers
	Monotone Kind = "monotone" // Fritsch-Butland, shape preserving
)

// Interpolation is an interpolated measurement series.
type Interpolation struct {
	Series
	Kind Kind
}

// Interpolate builds an interpolant through the points, which must have
// strictly increasing x values.
func Interpolate(x, y []float64, kind Kind, opts ...Option) (*Interpolation, error) {
	if err := checkSeries(x, y); err != nil {
		return nil, err
	}
	if len(x) < 2 {
		return nil, fmt.Errorf("fitting: interpolation needs at least 2 points")
	}
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return nil, fmt.Errorf("fitting: x values must be strictly increasing (index %d)", i)
		}
	}
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	var pred interp.FittablePredictor
	switch kind {
	case Linear:
		pred = &interp.PiecewiseLinear{}
	case Cubic:
		pred = &interp.NaturalCubic{}
	case Akima:
		pred = &interp.AkimaSpline{}
	case Monotone:
		pred = &interp.FritschButland{}
	default:
		return nil, fmt.Errorf("fitting: unknown interpolation kind %q", kind)
	}
	if err := pred.Fit(x, y); err != nil {
		return nil, fmt.Errorf("fitting: %s interpolation: %w", kind, err)
	}
	return &Interpolation{
		Series: newSeries(x, y, pred.Predict, cfg.divisions),
		Kind:   kind,
	}, nil
}
