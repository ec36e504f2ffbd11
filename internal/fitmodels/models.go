// internal/fitmodels/models.go
// Package fitmodels names the curve models the fit command accepts and
// supplies their initial guesses.
package fitmodels

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"labtool/core/fitting"
)

// Spec is one selectable model.
type Spec struct {
	Name   string
	Params []string
	Guess  []float64
	Model  fitting.Model
}

// Known returns the accepted model names.
func Known() []string {
	return []string{"linear", "quadratic", "cubic", "poly:N", "exp", "power"}
}

// Lookup resolves a model name. Polynomials of arbitrary degree are
// spelled poly:N.
func Lookup(name string) (Spec, error) {
	if deg, ok := strings.CutPrefix(name, "poly:"); ok {
		n, err := strconv.Atoi(deg)
		if err != nil || n < 1 {
			return Spec{}, fmt.Errorf("fitmodels: bad polynomial degree %q", deg)
		}
		return polynomial(name, n), nil
	}
	switch name {
	case "linear":
		return Spec{
			Name:   name,
			Params: []string{"a", "b"},
			Guess:  []float64{1, 0},
			Model:  func(x float64, p []float64) float64 { return p[0]*x + p[1] },
		}, nil
	case "quadratic":
		return Spec{
			Name:   name,
			Params: []string{"a", "b", "c"},
			Guess:  []float64{1, 1, 1},
			Model:  func(x float64, p []float64) float64 { return (p[0]*x+p[1])*x + p[2] },
		}, nil
	case "cubic":
		return Spec{
			Name:   name,
			Params: []string{"a", "b", "c", "d"},
			Guess:  []float64{1, 1, 1, 1},
			Model:  func(x float64, p []float64) float64 { return ((p[0]*x+p[1])*x+p[2])*x + p[3] },
		}, nil
	case "exp":
		return Spec{
			Name:   name,
			Params: []string{"a", "k"},
			Guess:  []float64{1, 0.1},
			Model:  func(x float64, p []float64) float64 { return p[0] * math.Exp(p[1]*x) },
		}, nil
	case "power":
		return Spec{
			Name:   name,
			Params: []string{"a", "k"},
			Guess:  []float64{1, 1},
			Model:  func(x float64, p []float64) float64 { return p[0] * math.Pow(x, p[1]) },
		}, nil
	default:
		return Spec{}, fmt.Errorf("fitmodels: unknown model %q (want %s)", name, strings.Join(Known(), ", "))
	}
}

// polynomial builds a0 + a1 x + ... + aN x^N.
func polynomial(name string, degree int) Spec {
	params := make([]string, degree+1)
	guess := make([]float64, degree+1)
	for i := range params {
		params[i] = fmt.Sprintf("a%d", i)
		guess[i] = 1
	}
	return Spec{
		Name:   name,
		Params: params,
		Guess:  guess,
		Model: func(x float64, p []float64) float64 {
			var y float64
			for i := len(p) - 1; i >= 0; i-- {
				y = y*x + p[i]
			}
			return y
		},
	}
}
