// core/uncert/uncert.go
// Uncertain values: a nominal value paired with a standard deviation.
//
// Arithmetic follows first-order Gaussian error propagation with all
// operands treated as uncorrelated. Rendering delegates the digit
// question to a sigdig.Policy; see format.go.
package uncert

import (
	"fmt"
	"math"
)

// Value is a measurement result. The zero Value is an exact 0.
type Value struct {
	n float64
	s float64
}

// New returns a Value with the given nominal value and standard
// deviation. A negative std dev is folded to its magnitude.
func New(nominal, stdDev float64) Value {
	return Value{n: nominal, s: math.Abs(stdDev)}
}

// Exact returns a Value with zero uncertainty.
func Exact(nominal float64) Value { return Value{n: nominal} }

// N returns the nominal value.
func (v Value) N() float64 { return v.n }

// S returns the standard deviation.
func (v Value) S() float64 { return v.s }

// Add returns v+w.
func (v Value) Add(w Value) Value {
	return Value{n: v.n + w.n, s: math.Hypot(v.s, w.s)}
}

// Sub returns v-w.
func (v Value) Sub(w Value) Value {
	return Value{n: v.n - w.n, s: math.Hypot(v.s, w.s)}
}

// Mul returns v*w.
func (v Value) Mul(w Value) Value {
	return Value{n: v.n * w.n, s: math.Hypot(w.n*v.s, v.n*w.s)}
}

// Div returns v/w. Division by an exact zero propagates Inf/NaN the way
// float division does.
func (v Value) Div(w Value) Value {
	return Value{n: v.n / w.n, s: math.Hypot(v.s/w.n, v.n*w.s/(w.n*w.n))}
}

// Pow returns v raised to the exact power k.
func (v Value) Pow(k float64) Value {
	return Value{
		n: math.Pow(v.n, k),
		s: math.Abs(k*math.Pow(v.n, k-1)) * v.s,
	}
}

// Scale returns k*v for exact k.
func (v Value) Scale(k float64) Value {
	return Value{n: k * v.n, s: math.Abs(k) * v.s}
}

// Shift returns v+c for exact c.
func (v Value) Shift(c float64) Value {
	return Value{n: v.n + c, s: v.s}
}

// Neg returns -v.
func (v Value) Neg() Value { return Value{n: -v.n, s: v.s} }

// Array pairs nominal values with std devs element-wise.
func Array(nominals, stdDevs []float64) ([]Value, error) {
	if len(nominals) != len(stdDevs) {
		return nil, fmt.Errorf("uncert: %d nominal values vs %d std devs", len(nominals), len(stdDevs))
	}
	out := make([]Value, len(nominals))
	for i := range nominals {
		out[i] = New(nominals[i], stdDevs[i])
	}
	return out, nil
}

// Split is the inverse of Array.
func Split(values []Value) (nominals, stdDevs []float64) {
	nominals = make([]float64, len(values))
	stdDevs = make([]float64, len(values))
	for i, v := range values {
		nominals[i] = v.n
		stdDevs[i] = v.s
	}
	return nominals, stdDevs
}
