// internal/app/app.go

// Package app wires the labtool command line. Run takes argv and the
// two output streams and returns the process exit code, so integration
// tests drive the full CLI in-process.
package app

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"labtool/core/sigdig"
	"labtool/internal/output"
	"labtool/internal/profiling"
	"labtool/internal/workdir"
)

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	Quiet      bool
	ChDir      string
	CPUProfile string

	stderr io.Writer

	restoreDir  func() error
	stopProfile func()
}

// warnf reports a non-fatal condition to stderr unless --quiet is set.
func (g *globalOptions) warnf(format string, a ...any) {
	if g.Quiet {
		return
	}
	_, _ = fmt.Fprintf(g.stderr, "WARN: "+format+"\n", a...)
}

// setup honors --cpuprofile and --chdir before a command runs.
func (g *globalOptions) setup() error {
	stop, err := profiling.Start(g.CPUProfile)
	if err != nil {
		return err
	}
	g.stopProfile = stop
	restore, err := workdir.Enter(g.ChDir)
	if err != nil {
		stop()
		g.stopProfile = nil
		return err
	}
	g.restoreDir = restore
	return nil
}

// teardown restores the working directory and closes the profile. It
// runs after Execute whether the command succeeded or not.
func (g *globalOptions) teardown() {
	if g.restoreDir != nil {
		_ = g.restoreDir()
		g.restoreDir = nil
	}
	if g.stopProfile != nil {
		g.stopProfile()
		g.stopProfile = nil
	}
}

func newRootCmd(g *globalOptions) *cobra.Command {
	root := &cobra.Command{
		Use:   "labtool",
		Short: "Lab report toolkit: uncertainty tables, fits and Student-t means",
		Long: `labtool turns measurement series into the pieces of a lab report:
tabularray tables with rounded uncertainties, least-squares fits with
parameter errors, and Student-t confidence intervals.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return g.setup()
		},
	}
	root.PersistentFlags().BoolVarP(&g.Quiet, "quiet", "q", false, "suppress warnings")
	root.PersistentFlags().StringVar(&g.ChDir, "chdir", "", "run inside this directory")
	root.PersistentFlags().StringVar(&g.CPUProfile, "cpuprofile", "", "write a CPU profile to this file")
	root.AddCommand(
		newTableCmd(g),
		newStudentCmd(g),
		newFitCmd(g),
		newVersionCmd(),
	)
	return root
}

// roundingPolicy resolves the --rounding flag.
func roundingPolicy(name string) (sigdig.Policy, error) {
	switch name {
	case "pdg":
		return sigdig.ParticleDataGroup, nil
	case "up":
		return sigdig.LeadingDigit, nil
	default:
		return nil, fmt.Errorf("unknown rounding %q (want pdg or up)", name)
	}
}

// Run executes argv and returns the exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	g := &globalOptions{stderr: stderr}
	root := newRootCmd(g)
	root.SetArgs(argv)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.Execute()
	g.teardown()
	if err == nil || output.IsBrokenPipe(err) {
		return 0
	}
	return 1
}
