// core/sigdig/sigdig.go
// Significant-digit resolution for reported uncertainties.
//
// A Policy answers one question: given a standard deviation, how many
// significant digits should a report show, and what value should the
// uncertainty have after rounding to that many digits?
//
//   - LeadingDigit: lab-course metrology rule. Two digits only when the
//     leading digit is a 1, one digit otherwise, and the uncertainty is
//     always rounded UP at the chosen digit so the report never claims
//     more precision than the data has.
//   - ParticleDataGroup: the three-band rule used by the PDG reviews.
//     Bands at 354 and 949 on the first three significant digits; the
//     value is rounded to nearest at render time.
//
// Policies are plain values passed to whoever formats. There is no
// package-level default to mutate.
package sigdig

import (
	"errors"
	"math"
)

// Decision is the outcome of resolving a standard deviation.
type Decision struct {
	Digits int     // significant digits to report: 1 or 2
	StdDev float64 // uncertainty to report at that precision
}

// Policy maps a standard deviation to a reporting decision.
type Policy func(stdDev float64) (Decision, error)

// ErrNonPositive reports a standard deviation with no defined first
// significant digit (zero, negative, NaN or infinite).
var ErrNonPositive = errors.New("sigdig: standard deviation must be finite and > 0")

// FirstDigit returns the decimal exponent of the first significant digit
// of x, i.e. the e with 1 <= |x|/10^e < 10. FirstDigit(0) is 0.
func FirstDigit(x float64) int {
	if x == 0 {
		return 0
	}
	a := math.Abs(x)
	e := int(math.Floor(math.Log10(a)))
	// Log10 is not exact at powers of ten; nudge until 10^e <= a < 10^(e+1).
	switch {
	case a < math.Pow(10, float64(e)):
		e--
	case a >= math.Pow(10, float64(e+1)):
		e++
	}
	return e
}

func check(stdDev float64) error {
	if math.IsNaN(stdDev) || math.IsInf(stdDev, 0) || stdDev <= 0 {
		return ErrNonPositive
	}
	return nil
}

// LeadingDigit keeps two significant digits when the normalized std dev
// (mantissa in [1,10)) is at most 1.9 and one digit otherwise, rounding
// the std dev up at the last kept digit. The result is never below the
// input.
func LeadingDigit(stdDev float64) (Decision, error) {
	if err := check(stdDev); err != nil {
		return Decision{}, err
	}
	exp := FirstDigit(stdDev)
	norm := stdDev * math.Pow(10, float64(-exp))
	var d Decision
	if norm <= 1.9 {
		d = Decision{Digits: 2, StdDev: math.Ceil(norm*10) * math.Pow(10, float64(exp-1))}
	} else {
		d = Decision{Digits: 1, StdDev: math.Ceil(norm) * math.Pow(10, float64(exp))}
	}
	// The scaling products can shave an ulp; the ceiling guarantee wins.
	if d.StdDev < stdDev {
		d.StdDev = stdDev
	}
	return d, nil
}

// ParticleDataGroup applies the PDG convention on the first three
// significant digits d of the std dev: d <= 354 keeps two digits,
// 355..949 keeps one, and d >= 950 reports two digits after pushing the
// value up to the next power of ten (e.g. 0.99 -> 1.0). In the first two
// bands the std dev itself is returned unchanged; rendering rounds it to
// nearest at the decided digit.
func ParticleDataGroup(stdDev float64) (Decision, error) {
	if err := check(stdDev); err != nil {
		return Decision{}, err
	}
	exp := FirstDigit(stdDev)
	var factor float64
	if exp >= 0 {
		exp, factor = exp-2, 1
	} else {
		exp, factor = exp+1, 1000
	}
	digits := stdDev / math.Pow(10, float64(exp)) * factor
	switch {
	case digits <= 354:
		return Decision{Digits: 2, StdDev: stdDev}, nil
	case digits < 950:
		return Decision{Digits: 1, StdDev: stdDev}, nil
	default:
		return Decision{Digits: 2, StdDev: math.Pow(10, float64(exp)) * (1000 / factor)}, nil
	}
}
