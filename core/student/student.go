// core/student/student.go
// Student-t confidence intervals for small measurement series.
//
// A lab series of N repeats reports mean +/- t*SEM, where t stretches
// the standard error to the requested sigma coverage at N-1 degrees of
// freedom. The factor comes from the t-distribution quantile, so any
// series length works; classic course-table values (1.84 for two
// samples at one sigma) fall out as special cases.
package student

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"labtool/core/uncert"
)

// ErrSigma reports a coverage outside the supported 1..3 sigma range.
var ErrSigma = errors.New("student: sigma must be 1, 2 or 3")

// Factor returns the t factor for a series of n samples at the given
// sigma coverage.
func Factor(n, sigma int) (float64, error) {
	if sigma < 1 || sigma > 3 {
		return 0, ErrSigma
	}
	if n < 2 {
		return 0, fmt.Errorf("student: need at least 2 samples, got %d", n)
	}
	coverage := 2*distuv.UnitNormal.CDF(float64(sigma)) - 1
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	return dist.Quantile(0.5 + coverage/2), nil
}

// Student summarizes one measurement series.
type Student struct {
	series []float64
	sigma  int
	t      float64
	mean   float64
	sem    float64
}

// New computes the summary of series at the given sigma coverage.
func New(series []float64, sigma int) (*Student, error) {
	t, err := Factor(len(series), sigma)
	if err != nil {
		return nil, err
	}
	s := &Student{
		series: append([]float64(nil), series...),
		sigma:  sigma,
		t:      t,
	}
	s.mean = stat.Mean(s.series, nil)
	s.sem = stat.StdDev(s.series, nil) / math.Sqrt(float64(len(s.series)))
	return s, nil
}

// Mean returns the series mean with the t-scaled standard error as its
// uncertainty.
func (s *Student) Mean() uncert.Value { return uncert.New(s.mean, s.t*s.sem) }

// T returns the applied t factor.
func (s *Student) T() float64 { return s.t }

// SEM returns the unscaled standard error of the mean.
func (s *Student) SEM() float64 { return s.sem }

// Sigma returns the requested coverage.
func (s *Student) Sigma() int { return s.sigma }

// Len returns the number of samples.
func (s *Student) Len() int { return len(s.series) }

// Negligible reports whether scaling by t left the interval unchanged,
// which happens for constant series.
func (s *Student) Negligible() bool { return s.t*s.sem == s.sem }

func (s *Student) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Student-t mean of %d samples at %d sigma\n", len(s.series), s.sigma)
	fmt.Fprintf(&b, "t factor:  %.4f\n", s.t)
	if s.Negligible() {
		b.WriteString("t factor negligible: interval equals the standard error\n")
	}
	fmt.Fprintf(&b, "rounded:   %s\n", s.Mean())
	fmt.Fprintf(&b, "precisely: %g +/- %g\n", s.mean, s.t*s.sem)
	fmt.Fprintf(&b, "raw sem:   %g\n", s.sem)
	return b.String()
}

// Save writes the text summary to path.
func (s *Student) Save(path string) error {
	if err := os.WriteFile(path, []byte(s.String()), 0o644); err != nil {
		return fmt.Errorf("student: write %s: %w", path, err)
	}
	return nil
}

// Pointwise folds parallel series into one uncertain value per index:
// element i gets the t-scaled mean of all series' i-th samples.
func Pointwise(sigma int, series ...[]float64) ([]uncert.Value, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("student: pointwise needs at least 2 series, got %d", len(series))
	}
	n := len(series[0])
	for _, s := range series[1:] {
		if len(s) != n {
			return nil, fmt.Errorf("student: series lengths differ: %d vs %d", len(s), n)
		}
	}
	out := make([]uncert.Value, n)
	sample := make([]float64, len(series))
	for i := 0; i < n; i++ {
		for j, s := range series {
			sample[j] = s[i]
		}
		st, err := New(sample, sigma)
		if err != nil {
			return nil, err
		}
		out[i] = st.Mean()
	}
	return out, nil
}
