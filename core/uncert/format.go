// core/uncert/format.go
package uncert

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"labtool/core/sigdig"
)

// Serialized values look like "3.14+/-0.07", or "(3.140+/-0.023)e+07"
// once the leading magnitude leaves the [1e-4, 1e6) window. Parse accepts
// both shapes back.

// Format renders v with the uncertainty resolved by policy. The nominal
// value is rounded to the same decimal place as the uncertainty so the
// digits of both numbers line up.
func (v Value) Format(policy sigdig.Policy) (string, error) {
	if v.s == 0 {
		return strconv.FormatFloat(v.n, 'g', -1, 64) + "+/-0", nil
	}
	d, err := policy(v.s)
	if err != nil {
		return "", fmt.Errorf("uncert: format %g+/-%g: %w", v.n, v.s, err)
	}
	place := sigdig.FirstDigit(d.StdDev) - (d.Digits - 1)
	e := sigdig.FirstDigit(math.Max(math.Abs(v.n), d.StdDev))
	if e < -4 || e > 5 {
		scale := math.Pow(10, float64(e))
		dec := e - place
		return fmt.Sprintf("(%.*f+/-%.*f)e%+03d", dec, v.n/scale, dec, d.StdDev/scale, e), nil
	}
	if place > 0 {
		scale := math.Pow(10, float64(place))
		n := math.Round(v.n/scale) * scale
		s := math.Round(d.StdDev/scale) * scale
		return fmt.Sprintf("%.0f+/-%.0f", n, s), nil
	}
	return fmt.Sprintf("%.*f+/-%.*f", -place, v.n, -place, d.StdDev), nil
}

// String renders v with the ParticleDataGroup policy. Callers that want
// lab-course rounding pass sigdig.LeadingDigit to Format instead.
func (v Value) String() string {
	s, err := v.Format(sigdig.ParticleDataGroup)
	if err != nil {
		return fmt.Sprintf("%g+/-%g", v.n, v.s)
	}
	return s
}

var expFormRe = regexp.MustCompile(`^\((.+?)\+/-(.+?)\)[eE]([+-]?\d+)$`)

// Parse reads a serialized uncertain value, with or without the exponent
// wrapper, tolerating surrounding quotes and whitespace.
func Parse(raw string) (Value, error) {
	t := strings.TrimSpace(strings.ReplaceAll(raw, `"`, ""))
	if m := expFormRe.FindStringSubmatch(t); m != nil {
		n, errN := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
		s, errS := strconv.ParseFloat(strings.TrimSpace(m[2]), 64)
		k, errK := strconv.Atoi(m[3])
		if errN == nil && errS == nil && errK == nil {
			scale := math.Pow(10, float64(k))
			return New(n*scale, s*scale), nil
		}
	}
	nom, std, ok := strings.Cut(t, "+/-")
	if !ok {
		return Value{}, fmt.Errorf("uncert: %q is not an uncertain value", raw)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(nom), 64)
	if err != nil {
		return Value{}, fmt.Errorf("uncert: parse %q: %w", raw, err)
	}
	s, err := strconv.ParseFloat(strings.TrimSpace(std), 64)
	if err != nil {
		return Value{}, fmt.Errorf("uncert: parse %q: %w", raw, err)
	}
	return New(n, s), nil
}
