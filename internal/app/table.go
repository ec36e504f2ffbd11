// internal/app/table.go
package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"labtool/core/table"
	"labtool/core/textab"
	"labtool/core/uncert"
)

type tableOptions struct {
	in inputOptions

	Columns     []string
	Pairs       []string
	Index       bool
	Environ     string
	ColSpec     string
	Inner       []string
	SiSetup     []string
	FloatFormat string
	UArray      bool
	Plain       bool
	Style       string
	StylesFile  string
	Rounding    string
	OutFile     string
}

func newTableCmd(g *globalOptions) *cobra.Command {
	opt := &tableOptions{}
	cmd := &cobra.Command{
		Use:   "table INPUT",
		Short: "Render a CSV/XLSX table as a LaTeX tabularray environment",
		Long: `Reads a measurement table and writes tabularray source for the report.
Cells like 3.14+/-0.07 stay uncertain values and are rounded on the way
out; --pair fuses separate value and deviation columns into such cells.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTable(cmd, opt, args[0])
		},
	}
	opt.in.addFlags(cmd)
	fs := cmd.Flags()
	fs.StringSliceVar(&opt.Columns, "columns", nil, "columns to render, in order (default all)")
	fs.StringArrayVar(&opt.Pairs, "pair", nil, "fuse NOM:STD columns into one uncertain column (repeatable)")
	fs.BoolVar(&opt.Index, "index", false, "add a row-number column")
	fs.StringVar(&opt.Environ, "environ", "", `tabularray environment (default "tblr")`)
	fs.StringVar(&opt.ColSpec, "colspec", "", "tabularray column spec")
	fs.StringArrayVar(&opt.Inner, "inner", nil, "extra tabularray inner setting (repeatable)")
	fs.StringArrayVar(&opt.SiSetup, "sisetup", nil, `\sisetup option (repeatable)`)
	fs.StringVar(&opt.FloatFormat, "float-format", "", `fmt verb for float cells, e.g. "%.3f"`)
	fs.BoolVar(&opt.UArray, "uarray", false, "rewrite n+/-s cells with the uncertainty symbol")
	fs.BoolVar(&opt.Plain, "plain", false, `separate with +- instead of \pm`)
	fs.StringVar(&opt.Style, "style", "", "preset name from the --styles file")
	fs.StringVar(&opt.StylesFile, "styles", "", "YAML file with named option presets")
	fs.StringVar(&opt.Rounding, "rounding", "pdg", "uncertainty rounding: pdg|up")
	fs.StringVarP(&opt.OutFile, "out", "o", "", "write to file instead of stdout")
	return cmd
}

func runTable(cmd *cobra.Command, opt *tableOptions, path string) error {
	tb, err := opt.in.load(cmd, path)
	if err != nil {
		return err
	}
	for _, pair := range opt.Pairs {
		tb, err = fusePair(tb, pair)
		if err != nil {
			return err
		}
	}
	if len(opt.Columns) > 0 {
		tb, err = tb.Select(opt.Columns...)
		if err != nil {
			return err
		}
	}
	texOpt, err := opt.texOptions(cmd)
	if err != nil {
		return err
	}
	if opt.OutFile != "" {
		return textab.WriteFile(opt.OutFile, tb, texOpt)
	}
	s, err := textab.Render(tb, texOpt)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), s)
	return err
}

// texOptions builds the render options: the style preset is the base,
// explicitly set flags override it.
func (opt *tableOptions) texOptions(cmd *cobra.Command) (textab.Options, error) {
	to := textab.Options{Columns: opt.in.Header}
	if opt.Style != "" {
		if opt.StylesFile == "" {
			return to, fmt.Errorf("--style needs --styles")
		}
		styles, err := textab.LoadStyles(opt.StylesFile)
		if err != nil {
			return to, err
		}
		preset, ok := styles[opt.Style]
		if !ok {
			names := make([]string, 0, len(styles))
			for name := range styles {
				names = append(names, name)
			}
			return to, fmt.Errorf("no style %q in %s (have %s)", opt.Style, opt.StylesFile, strings.Join(names, ", "))
		}
		to = preset
		to.Columns = to.Columns || opt.in.Header
	}
	fs := cmd.Flags()
	if fs.Changed("environ") {
		to.Environment = opt.Environ
	}
	if fs.Changed("colspec") {
		to.ColSpec = opt.ColSpec
	}
	if fs.Changed("inner") {
		to.InnerSettings = opt.Inner
	}
	if fs.Changed("sisetup") {
		to.SiSetup = opt.SiSetup
	}
	if fs.Changed("float-format") {
		to.FloatFormat = opt.FloatFormat
	}
	if fs.Changed("uarray") {
		to.UArray = opt.UArray
	}
	if fs.Changed("index") {
		to.Index = opt.Index
	}
	if opt.Plain {
		to.Symbol = textab.SymbolPlain
	}
	policy, err := roundingPolicy(opt.Rounding)
	if err != nil {
		return to, err
	}
	to.Rounding = policy
	return to, nil
}

// fusePair replaces the NOM column with NOM+/-STD uncertain values and
// drops the STD column.
func fusePair(tb *table.Table, pair string) (*table.Table, error) {
	nomName, stdName, ok := strings.Cut(pair, ":")
	if !ok || nomName == "" || stdName == "" || nomName == stdName {
		return nil, fmt.Errorf("bad --pair %q, want NOM:STD", pair)
	}
	noms, err := tb.Floats(nomName)
	if err != nil {
		return nil, err
	}
	stds, err := tb.Floats(stdName)
	if err != nil {
		return nil, err
	}
	vals, err := uncert.Array(noms, stds)
	if err != nil {
		return nil, err
	}
	out := table.New()
	for _, name := range tb.Names() {
		switch name {
		case stdName:
		case nomName:
			if err := out.AddValues(name, vals); err != nil {
				return nil, err
			}
		default:
			col, err := tb.Column(name)
			if err != nil {
				return nil, err
			}
			if err := out.AddColumn(name, col); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}
