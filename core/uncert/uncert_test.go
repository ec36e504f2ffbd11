// core/uncert/uncert_test.go
package uncert

import (
	"math"
	"testing"
)

const eps = 1e-12

func approx(got, want float64) bool {
	return math.Abs(got-want) <= eps*math.Max(1, math.Abs(want))
}

func TestArithmetic(t *testing.T) {
	a := New(1, 0.3)
	b := New(2, 0.4)

	t.Run("add", func(t *testing.T) {
		c := a.Add(b)
		if !approx(c.N(), 3) || !approx(c.S(), 0.5) {
			t.Fatalf("got %g+/-%g, want 3+/-0.5", c.N(), c.S())
		}
	})
	t.Run("sub", func(t *testing.T) {
		c := a.Sub(b)
		if !approx(c.N(), -1) || !approx(c.S(), 0.5) {
			t.Fatalf("got %g+/-%g, want -1+/-0.5", c.N(), c.S())
		}
	})
	t.Run("mul", func(t *testing.T) {
		c := New(2, 0.1).Mul(New(3, 0.2))
		if !approx(c.N(), 6) || !approx(c.S(), 0.5) {
			t.Fatalf("got %g+/-%g, want 6+/-0.5", c.N(), c.S())
		}
	})
	t.Run("div", func(t *testing.T) {
		c := New(6, 0.5).Div(Exact(2))
		if !approx(c.N(), 3) || !approx(c.S(), 0.25) {
			t.Fatalf("got %g+/-%g, want 3+/-0.25", c.N(), c.S())
		}
	})
	t.Run("pow", func(t *testing.T) {
		c := New(3, 0.1).Pow(2)
		if !approx(c.N(), 9) || !approx(c.S(), 0.6) {
			t.Fatalf("got %g+/-%g, want 9+/-0.6", c.N(), c.S())
		}
	})
	t.Run("scale and shift", func(t *testing.T) {
		c := a.Scale(-2).Shift(1)
		if !approx(c.N(), -1) || !approx(c.S(), 0.6) {
			t.Fatalf("got %g+/-%g, want -1+/-0.6", c.N(), c.S())
		}
	})
	t.Run("neg", func(t *testing.T) {
		c := a.Neg()
		if !approx(c.N(), -1) || !approx(c.S(), 0.3) {
			t.Fatalf("got %g+/-%g, want -1+/-0.3", c.N(), c.S())
		}
	})
}

func TestNewFoldsNegativeStdDev(t *testing.T) {
	v := New(1, -0.2)
	if !approx(v.S(), 0.2) {
		t.Fatalf("S() = %g, want 0.2", v.S())
	}
}

func TestArraySplit(t *testing.T) {
	vs, err := Array([]float64{1, 2, 3}, []float64{0.1, 0.2, 0.3})
	if err != nil {
		t.Fatalf("Array: %v", err)
	}
	n, s := Split(vs)
	for i := range n {
		if !approx(n[i], float64(i+1)) || !approx(s[i], float64(i+1)/10) {
			t.Fatalf("round trip broke at %d: %g+/-%g", i, n[i], s[i])
		}
	}
	if _, err := Array([]float64{1}, []float64{0.1, 0.2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
