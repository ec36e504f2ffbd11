// core/textab/textab.go
// Package textab renders tables as LaTeX tabularray environments, the
// way lab reports embed them: one & separated row per line, \\ line
// endings, optional \sisetup preamble and a brace-wrapped header row.
package textab

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"labtool/core/sigdig"
	"labtool/core/table"
	"labtool/core/uncert"
)

// Options control one rendered environment. The zero value renders a
// bare tblr without header or index.
type Options struct {
	// Environment is the tabularray environment name, tblr by default.
	Environment string `yaml:"environment"`
	// ColSpec goes into colspec={...} inside the inner settings.
	ColSpec string `yaml:"colspec"`
	// InnerSettings are extra tabularray inner settings, verbatim.
	InnerSettings []string `yaml:"inner_settings"`
	// SiSetup emits \sisetup{...} above the environment when non-empty.
	SiSetup []string `yaml:"sisetup"`
	// Columns adds the header row, each name wrapped in {{{...}}} so
	// siunitx S columns read it as text.
	Columns bool `yaml:"columns"`
	// Index adds a leading row-number column.
	Index bool `yaml:"index"`
	// FloatFormat is the fmt verb for plain float cells, e.g. "%.3f".
	// Empty means shortest representation.
	FloatFormat string `yaml:"float_format"`
	// UArray rewrites serialized uncertain cells with Symbol.
	UArray bool `yaml:"uarray"`
	// Symbol separates value and uncertainty, SymbolTeX by default.
	Symbol string `yaml:"symbol"`

	// Rounding resolves significant digits of uncertain cells.
	// Nil means sigdig.ParticleDataGroup.
	Rounding sigdig.Policy `yaml:"-"`
}

func (o Options) environment() string {
	if o.Environment == "" {
		return "tblr"
	}
	return o.Environment
}

func (o Options) symbol() string {
	if o.Symbol == "" {
		return SymbolTeX
	}
	return o.Symbol
}

func (o Options) rounding() sigdig.Policy {
	if o.Rounding == nil {
		return sigdig.ParticleDataGroup
	}
	return o.Rounding
}

// Render returns the LaTeX source for t.
func Render(t *table.Table, opt Options) (string, error) {
	var b strings.Builder
	if len(opt.SiSetup) > 0 {
		fmt.Fprintf(&b, "\\sisetup{%s}\n\n", strings.Join(opt.SiSetup, ", "))
	}
	inner := append([]string(nil), opt.InnerSettings...)
	if opt.ColSpec != "" {
		inner = append(inner, "colspec={"+opt.ColSpec+"}")
	}
	env := opt.environment()
	fmt.Fprintf(&b, "\\begin{%s}{%s}\n", env, strings.Join(inner, ", "))

	if opt.Columns {
		cells := make([]string, 0, t.NumCols()+1)
		if opt.Index {
			cells = append(cells, "")
		}
		for _, name := range t.Names() {
			cells = append(cells, "{{{"+name+"}}}")
		}
		writeRow(&b, cells)
	}
	for i := 0; i < t.NumRows(); i++ {
		cells := make([]string, 0, t.NumCols()+1)
		if opt.Index {
			cells = append(cells, strconv.Itoa(i))
		}
		for j := 0; j < t.NumCols(); j++ {
			cell, err := renderCell(t.Cell(i, j), opt)
			if err != nil {
				return "", fmt.Errorf("textab: row %d column %q: %w", i, t.Names()[j], err)
			}
			if opt.UArray {
				cell = FormatCell(cell, opt.symbol())
			}
			cells = append(cells, cell)
		}
		writeRow(&b, cells)
	}
	fmt.Fprintf(&b, "\\end{%s}", env)
	return b.String(), nil
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString(strings.Join(cells, "&"))
	b.WriteString("\\\\\n")
}

func renderCell(cell any, opt Options) (string, error) {
	switch x := cell.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case uncert.Value:
		return x.Format(opt.rounding())
	case float64:
		return renderFloat(x, opt), nil
	case float32:
		return renderFloat(float64(x), opt), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case fmt.Stringer:
		return x.String(), nil
	default:
		return fmt.Sprintf("%v", x), nil
	}
}

func renderFloat(x float64, opt Options) string {
	if opt.FloatFormat != "" {
		return fmt.Sprintf(opt.FloatFormat, x)
	}
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// Write renders t to w.
func Write(w io.Writer, t *table.Table, opt Options) error {
	s, err := Render(t, opt)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// WriteFile renders t into path.
func WriteFile(path string, t *table.Table, opt Options) error {
	s, err := Render(t, opt)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(s), 0o644); err != nil {
		return fmt.Errorf("textab: write %s: %w", path, err)
	}
	return nil
}
