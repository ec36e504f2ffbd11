// core/uncert/format_test.go
package uncert

import (
	"testing"

	"labtool/core/sigdig"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		name   string
		v      Value
		policy sigdig.Policy
		want   string
	}{
		{"pdg fixed", New(3.14, 0.07), sigdig.ParticleDataGroup, "3.14+/-0.07"},
		{"ceiling rounds up", New(3.14, 0.07), sigdig.LeadingDigit, "3.14+/-0.08"},
		{"two digit band", New(3.14, 0.15), sigdig.LeadingDigit, "3.14+/-0.15"},
		{"pdg two digits pad", New(0.2, 0.01), sigdig.ParticleDataGroup, "0.200+/-0.010"},
		{"integer places", New(12345, 700), sigdig.ParticleDataGroup, "12300+/-700"},
		{"scientific", New(31400000, 230000), sigdig.ParticleDataGroup, "(3.140+/-0.023)e+07"},
		{"scientific ceiling", New(31400000, 230000), sigdig.LeadingDigit, "(3.14+/-0.03)e+07"},
		{"small stays fixed", New(0.000123, 0.000004), sigdig.ParticleDataGroup, "0.000123+/-0.000004"},
		{"smaller goes scientific", New(0.0000123, 0.0000004), sigdig.ParticleDataGroup, "(1.23+/-0.04)e-05"},
		{"negative nominal", New(-3.14, 0.07), sigdig.ParticleDataGroup, "-3.14+/-0.07"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.v.Format(c.policy)
			if err != nil {
				t.Fatalf("Format: %v", err)
			}
			if got != c.want {
				t.Fatalf("Format = %q, want %q", got, c.want)
			}
		})
	}
}

func TestStringExact(t *testing.T) {
	if got := Exact(42).String(); got != "42+/-0" {
		t.Fatalf("String = %q, want %q", got, "42+/-0")
	}
}

func TestParse(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		v, err := Parse("3.14+/-0.07")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if !approx(v.N(), 3.14) || !approx(v.S(), 0.07) {
			t.Fatalf("got %g+/-%g", v.N(), v.S())
		}
	})
	t.Run("quoted", func(t *testing.T) {
		v, err := Parse(`"3.14+/-0.07"`)
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if !approx(v.N(), 3.14) {
			t.Fatalf("got %g", v.N())
		}
	})
	t.Run("exponent wrapper", func(t *testing.T) {
		v, err := Parse("(1.23+/-0.04)e+02")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if !approx(v.N(), 123) || !approx(v.S(), 4) {
			t.Fatalf("got %g+/-%g, want 123+/-4", v.N(), v.S())
		}
	})
	t.Run("per-side exponents", func(t *testing.T) {
		v, err := Parse("1.2e-3+/-4e-5")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		if !approx(v.N(), 0.0012) || !approx(v.S(), 0.00004) {
			t.Fatalf("got %g+/-%g", v.N(), v.S())
		}
	})
	t.Run("rejects plain numbers", func(t *testing.T) {
		if _, err := Parse("42"); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("rejects junk", func(t *testing.T) {
		if _, err := Parse("a+/-b"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestFormatParseRoundTrip(t *testing.T) {
	v := New(9.81, 0.03)
	s, err := v.Format(sigdig.LeadingDigit)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	back, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	if !approx(back.N(), 9.81) || !approx(back.S(), 0.03) {
		t.Fatalf("round trip %q -> %g+/-%g", s, back.N(), back.S())
	}
}
