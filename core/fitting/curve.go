// core/fitting/curve.go
package fitting

import (
	"fmt"
	"math"
	"os"
	"strings"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"labtool/core/uncert"
)

// CurveFit is a least-squares fit of a Model to a measurement series.
type CurveFit struct {
	Series
	Params []uncert.Value
	SSE    float64

	names []string
	model Model
}

// Curve fits model to the series by minimizing the sum of squared
// residuals from the initial guess, then estimates parameter
// uncertainties from the model Jacobian at the optimum. A singular
// normal matrix (underdetermined fit) yields infinite uncertainties.
func Curve(model Model, x, y, guess []float64, opts ...Option) (*CurveFit, error) {
	if model == nil {
		return nil, fmt.Errorf("fitting: nil model")
	}
	if err := checkSeries(x, y); err != nil {
		return nil, err
	}
	if len(guess) == 0 {
		return nil, fmt.Errorf("fitting: need at least one initial parameter")
	}
	if len(x) < len(guess) {
		return nil, fmt.Errorf("fitting: %d points cannot constrain %d parameters", len(x), len(guess))
	}
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.names != nil && len(cfg.names) != len(guess) {
		return nil, fmt.Errorf("fitting: %d parameter names for %d parameters", len(cfg.names), len(guess))
	}

	sse := func(p []float64) float64 {
		var sum float64
		for i := range x {
			r := model(x[i], p) - y[i]
			sum += r * r
		}
		return sum
	}
	problem := optimize.Problem{Func: sse}
	result, err := optimize.Minimize(problem, append([]float64(nil), guess...), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("fitting: minimize: %w", err)
	}
	p := result.X

	stdDevs := paramStdDevs(model, x, p, result.F)
	params := make([]uncert.Value, len(p))
	for i := range p {
		params[i] = uncert.New(p[i], stdDevs[i])
	}
	names := cfg.names
	if names == nil {
		names = make([]string, len(p))
		for i := range names {
			names[i] = fmt.Sprintf("p%d", i)
		}
	}
	fn := func(xv float64) float64 { return model(xv, p) }
	return &CurveFit{
		Series: newSeries(x, y, fn, cfg.divisions),
		Params: params,
		SSE:    result.F,
		names:  names,
		model:  model,
	}, nil
}

// paramStdDevs is sqrt of the diagonal of s^2 (J^T J)^-1, with s^2 the
// residual variance over the degrees of freedom.
func paramStdDevs(model Model, x, p []float64, sse float64) []float64 {
	n, m := len(x), len(p)
	jac := mat.NewDense(n, m, nil)
	fd.Jacobian(jac, func(dst, params []float64) {
		for i := range x {
			dst[i] = model(x[i], params)
		}
	}, p, nil)

	var jtj mat.Dense
	jtj.Mul(jac.T(), jac)

	out := make([]float64, m)
	var inv mat.Dense
	if err := inv.Inverse(&jtj); err != nil {
		for i := range out {
			out[i] = math.Inf(1)
		}
		return out
	}
	var variance float64
	if dof := n - m; dof > 0 {
		variance = sse / float64(dof)
	}
	for i := range out {
		out[i] = math.Sqrt(variance * inv.At(i, i))
	}
	return out
}

// Names returns the parameter labels.
func (f *CurveFit) Names() []string { return append([]string(nil), f.names...) }

func (f *CurveFit) String() string {
	width := 0
	for _, n := range f.names {
		if len(n) > width {
			width = len(n)
		}
	}
	var b strings.Builder
	b.WriteString("Fit parameters:\nrounded:\n")
	for i, n := range f.names {
		fmt.Fprintf(&b, "\t%-*s = %s\n", width, n, f.Params[i])
	}
	b.WriteString("precisely:\n")
	for i, n := range f.names {
		fmt.Fprintf(&b, "\t%-*s = %g +/- %g\n", width, n, f.Params[i].N(), f.Params[i].S())
	}
	return b.String()
}

// Save writes the parameter report and the sampled curve to path.
func (f *CurveFit) Save(path string) error {
	var b strings.Builder
	b.WriteString(f.String())
	b.WriteString("\ninput points:\n")
	for i := range f.XIn {
		fmt.Fprintf(&b, "\t%g\t%g\n", f.XIn[i], f.YIn[i])
	}
	b.WriteString("\nsampled curve:\n")
	for i := range f.XOut {
		fmt.Fprintf(&b, "\t%g\t%g\n", f.XOut[i], f.YOut[i])
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("fitting: write %s: %w", path, err)
	}
	return nil
}
