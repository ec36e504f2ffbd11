// core/textab/format_test.go
package textab

import "testing"

func TestFormatCell(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		sym  string
		want string
	}{
		{"quoted pair", `"3.14+/-0.07"`, SymbolTeX, `3.14 \pm 0.07`},
		{"bare pair", "3.14+/-0.07", SymbolTeX, `3.14 \pm 0.07`},
		{"plain symbol", `"3.14+/-0.07"`, SymbolPlain, "3.14 +- 0.07"},
		{"exponent unwrap", `"(1.23 \pm 0.04)e+02"`, SymbolTeX, `1.23 \pm 0.04 e+02`},
		{"exponent unwrap plain", "(1.23 +- 0.04)e+02", SymbolPlain, "1.23 +- 0.04 e+02"},
		{"full pipeline", "(1.23+/-0.04)e+02", SymbolTeX, `1.23 \pm 0.04 e+02`},
		{"negative exponent", "(9.1+/-0.3)e-05", SymbolTeX, `9.1 \pm 0.3 e-05`},
		{"number passes through", `"42"`, SymbolTeX, "42"},
		{"exponent alone passes through", "1e+05", SymbolTeX, "1e+05"},
		{"text passes through", "probe A", SymbolTeX, "probe A"},
		{"sign without digits passes through", "a+/-b", SymbolTeX, "a+/-b"},
		{"idempotent", `3.14 \pm 0.07`, SymbolTeX, `3.14 \pm 0.07`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := FormatCell(c.raw, c.sym); got != c.want {
				t.Fatalf("FormatCell(%q, %q) = %q, want %q", c.raw, c.sym, got, c.want)
			}
		})
	}
}
