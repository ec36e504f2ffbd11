// internal/app/student.go
package app

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"

	"labtool/core/student"
	"labtool/internal/output"
)

type studentOptions struct {
	in inputOptions

	Values   string
	Column   string
	Sigma    int
	Output   string
	Rounding string
	OutFile  string
}

func newStudentCmd(g *globalOptions) *cobra.Command {
	opt := &studentOptions{}
	cmd := &cobra.Command{
		Use:   "student [INPUT]",
		Short: "Report the mean of a series with its t-scaled standard error",
		Long: `Summarizes a measurement series as mean +/- t*SEM at the requested
sigma coverage. Samples come from a table column or inline via --values.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return runStudent(cmd, g, opt, path)
		},
	}
	opt.in.addFlags(cmd)
	fs := cmd.Flags()
	fs.StringVar(&opt.Values, "values", "", "inline samples, comma or space separated")
	fs.StringVar(&opt.Column, "column", "", "column to read (default first)")
	fs.IntVar(&opt.Sigma, "sigma", 1, "coverage in sigma: 1, 2 or 3")
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: "+strings.Join(output.Formats(), "|"))
	fs.StringVar(&opt.Rounding, "rounding", "pdg", "uncertainty rounding: pdg|up")
	fs.StringVarP(&opt.OutFile, "out", "o", "", "write to file instead of stdout")
	return cmd
}

func runStudent(cmd *cobra.Command, g *globalOptions, opt *studentOptions, path string) error {
	series, err := studentSeries(cmd, opt, path)
	if err != nil {
		return err
	}
	st, err := student.New(series, opt.Sigma)
	if err != nil {
		return err
	}
	if st.Negligible() {
		g.warnf("constant series: the t factor changes nothing")
	}
	policy, err := roundingPolicy(opt.Rounding)
	if err != nil {
		return err
	}
	w, cleanup, err := openOut(cmd, opt.OutFile)
	if err != nil {
		return err
	}
	if err := output.WriteStudent(opt.Output, w, st, policy); err != nil {
		_ = cleanup()
		return err
	}
	return cleanup()
}

func studentSeries(cmd *cobra.Command, opt *studentOptions, path string) ([]float64, error) {
	if opt.Values != "" {
		if path != "" {
			return nil, fmt.Errorf("student: give an input file or --values, not both")
		}
		return parseSeries(opt.Values)
	}
	if path == "" {
		return nil, fmt.Errorf("student: need an input file or --values")
	}
	tb, err := opt.in.load(cmd, path)
	if err != nil {
		return nil, err
	}
	col := opt.Column
	if col == "" {
		names := tb.Names()
		if len(names) == 0 {
			return nil, fmt.Errorf("student: %s has no columns", path)
		}
		col = names[0]
	}
	return tb.Floats(col)
}

func parseSeries(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("student: no samples in %q", s)
	}
	out := make([]float64, len(fields))
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("student: bad sample %q", f)
		}
		out[i] = x
	}
	return out, nil
}
