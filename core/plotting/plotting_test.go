// core/plotting/plotting_test.go
package plotting

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"labtool/core/fitting"
)

func demoSeries(t *testing.T) fitting.Series {
	t.Helper()
	it, err := fitting.Interpolate(
		[]float64{0, 1, 2, 3},
		[]float64{0, 1, 4, 9},
		fitting.Linear,
		fitting.Divisions(20),
	)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	return it.Series
}

func TestFitPlotSave(t *testing.T) {
	p, err := FitPlot(demoSeries(t), DefaultOptions)
	if err != nil {
		t.Fatalf("FitPlot: %v", err)
	}
	dir := t.TempDir()
	for _, name := range []string{"fit.png", "fit.svg"} {
		path := filepath.Join(dir, name)
		if err := Save(p, path); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Stat: %v", err)
		}
		if info.Size() == 0 {
			t.Fatalf("%s is empty", name)
		}
	}
}

func TestSaveTeX(t *testing.T) {
	opt := DefaultOptions
	opt.Title = "calibration"
	opt.XLabel = "t / s"
	opt.YLabel = "U / V"
	p, err := XYPlot([]float64{0, 1, 2}, []float64{0, 2, 4}, opt)
	if err != nil {
		t.Fatalf("XYPlot: %v", err)
	}
	path := filepath.Join(t.TempDir(), "plot.tex")
	if err := Save(p, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "\\begin{") {
		t.Fatal("tex output does not look like LaTeX")
	}
}

func TestXYsMismatch(t *testing.T) {
	if _, err := XYPlot([]float64{1, 2}, []float64{1}, Options{}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestSaveUnknownExtension(t *testing.T) {
	p, err := XYPlot([]float64{0, 1}, []float64{0, 1}, Options{})
	if err != nil {
		t.Fatalf("XYPlot: %v", err)
	}
	if err := Save(p, filepath.Join(t.TempDir(), "plot.xyz")); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}
