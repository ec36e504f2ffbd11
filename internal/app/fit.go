// internal/app/fit.go
package app

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"labtool/core/fitting"
	"labtool/core/plotting"
	"labtool/internal/fitmodels"
	"labtool/internal/output"
)

type fitOptions struct {
	in inputOptions

	Model     string
	XCol      string
	YCol      string
	Divisions int
	Plot      string
	Output    string
	Rounding  string
	OutFile   string
}

func newFitCmd(g *globalOptions) *cobra.Command {
	opt := &fitOptions{}
	cmd := &cobra.Command{
		Use:   "fit INPUT",
		Short: "Fit a named model to two columns by least squares",
		Long: `Fits a model curve to x/y columns and reports the parameters with
their uncertainties. --plot additionally saves the measured points and
the fitted curve as an image or PGF source.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFit(cmd, g, opt, args[0])
		},
	}
	opt.in.addFlags(cmd)
	fs := cmd.Flags()
	fs.StringVar(&opt.Model, "model", "linear", "model: "+strings.Join(fitmodels.Known(), "|"))
	fs.StringVar(&opt.XCol, "xcol", "", "x column (default first)")
	fs.StringVar(&opt.YCol, "ycol", "", "y column (default second)")
	fs.IntVar(&opt.Divisions, "divisions", 0, "sampled curve points (default 3000)")
	fs.StringVar(&opt.Plot, "plot", "", "save a plot to this file (.png/.svg/.pdf/.tex)")
	fs.StringVar(&opt.Output, "output", output.FormatText, "output format: "+strings.Join(output.Formats(), "|"))
	fs.StringVar(&opt.Rounding, "rounding", "pdg", "uncertainty rounding: pdg|up")
	fs.StringVarP(&opt.OutFile, "out", "o", "", "write to file instead of stdout")
	return cmd
}

func runFit(cmd *cobra.Command, g *globalOptions, opt *fitOptions, path string) error {
	tb, err := opt.in.load(cmd, path)
	if err != nil {
		return err
	}
	xcol, ycol := opt.XCol, opt.YCol
	if xcol == "" || ycol == "" {
		names := tb.Names()
		if len(names) < 2 {
			return fmt.Errorf("fit: %s has %d columns, need x and y", path, len(names))
		}
		if xcol == "" {
			xcol = names[0]
		}
		if ycol == "" {
			ycol = names[1]
		}
	}
	xs, err := tb.Floats(xcol)
	if err != nil {
		return err
	}
	ys, err := tb.Floats(ycol)
	if err != nil {
		return err
	}
	spec, err := fitmodels.Lookup(opt.Model)
	if err != nil {
		return err
	}
	fitOpts := []fitting.Option{fitting.ParamNames(spec.Params...)}
	if opt.Divisions > 0 {
		fitOpts = append(fitOpts, fitting.Divisions(opt.Divisions))
	}
	fit, err := fitting.Curve(spec.Model, xs, ys, spec.Guess, fitOpts...)
	if err != nil {
		return err
	}
	if len(xs) == len(spec.Guess) {
		g.warnf("zero degrees of freedom, parameter uncertainties are meaningless")
	}

	if opt.Plot != "" {
		popt := plotting.DefaultOptions
		popt.Title = spec.Name + " fit"
		popt.XLabel = xcol
		popt.YLabel = ycol
		p, err := plotting.FitPlot(fit.Series, popt)
		if err != nil {
			return err
		}
		if err := plotting.Save(p, opt.Plot); err != nil {
			return err
		}
	}

	policy, err := roundingPolicy(opt.Rounding)
	if err != nil {
		return err
	}
	w, cleanup, err := openOut(cmd, opt.OutFile)
	if err != nil {
		return err
	}
	if err := output.WriteFit(opt.Output, w, fit, spec.Name, policy); err != nil {
		_ = cleanup()
		return err
	}
	return cleanup()
}
