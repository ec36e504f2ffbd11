// core/fitting/interp_test.go
package fitting

import (
	"math"
	"testing"
)

func TestInterpolateLinear(t *testing.T) {
	it, err := Interpolate([]float64{0, 1, 2}, []float64{0, 2, 4}, Linear)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	if got := it.At(0.5); math.Abs(got-1) > 1e-12 {
		t.Fatalf("At(0.5) = %g, want 1", got)
	}
	if got := it.At(1.5); math.Abs(got-3) > 1e-12 {
		t.Fatalf("At(1.5) = %g, want 3", got)
	}
	if it.Kind != Linear {
		t.Fatalf("Kind = %q", it.Kind)
	}
}

// All schemes must reproduce a straight line and pass through the knots.
func TestInterpolateSchemes(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 3, 5, 7, 9}
	for _, kind := range []Kind{Linear, Cubic, Akima, Monotone} {
		t.Run(string(kind), func(t *testing.T) {
			it, err := Interpolate(x, y, kind, Divisions(17))
			if err != nil {
				t.Fatalf("Interpolate: %v", err)
			}
			for i := range x {
				if got := it.At(x[i]); math.Abs(got-y[i]) > 1e-9 {
					t.Fatalf("At(%g) = %g, want %g", x[i], got, y[i])
				}
			}
			if got := it.At(2.5); math.Abs(got-6) > 1e-9 {
				t.Fatalf("At(2.5) = %g, want 6", got)
			}
			if len(it.XOut) != 17 {
				t.Fatalf("sampled %d points, want 17", len(it.XOut))
			}
		})
	}
}

func TestInterpolateValidation(t *testing.T) {
	if _, err := Interpolate([]float64{0, 1}, []float64{0}, Linear); err == nil {
		t.Error("expected error for mismatched lengths")
	}
	if _, err := Interpolate([]float64{0}, []float64{0}, Linear); err == nil {
		t.Error("expected error for a single point")
	}
	if _, err := Interpolate([]float64{0, 2, 1}, []float64{0, 1, 2}, Linear); err == nil {
		t.Error("expected error for unsorted x")
	}
	if _, err := Interpolate([]float64{0, 0, 1}, []float64{0, 1, 2}, Linear); err == nil {
		t.Error("expected error for duplicate x")
	}
	if _, err := Interpolate([]float64{0, 1, 2}, []float64{0, 1, 2}, Kind("spline9000")); err == nil {
		t.Error("expected error for unknown kind")
	}
}
