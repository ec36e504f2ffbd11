// internal/output/tex.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"labtool/core/fitting"
	"labtool/core/sigdig"
	"labtool/core/student"
	"labtool/core/table"
	"labtool/core/textab"
	"labtool/core/uncert"
)

// WriteFitTeX writes the fitted parameters as a tabularray table ready
// for \input.
func WriteFitTeX(w io.Writer, fit *fitting.CurveFit, model string, policy sigdig.Policy) error {
	tb := table.New()
	if err := tb.AddStrings("parameter", fit.Names()); err != nil {
		return err
	}
	if err := tb.AddValues("value", fit.Params); err != nil {
		return err
	}
	return textab.Write(w, tb, textab.Options{
		ColSpec:  "l c",
		Columns:  true,
		UArray:   true,
		Rounding: policy,
	})
}

// WriteStudentTeX writes the summary as a one-row tabularray table.
func WriteStudentTeX(w io.Writer, st *student.Student, policy sigdig.Policy) error {
	tb := table.New()
	if err := tb.AddStrings("N", []string{strconv.Itoa(st.Len())}); err != nil {
		return err
	}
	if err := tb.AddStrings("sigma", []string{strconv.Itoa(st.Sigma())}); err != nil {
		return err
	}
	if err := tb.AddStrings("t", []string{fmt.Sprintf("%.4f", st.T())}); err != nil {
		return err
	}
	if err := tb.AddValues("mean", []uncert.Value{st.Mean()}); err != nil {
		return err
	}
	return textab.Write(w, tb, textab.Options{
		ColSpec:  "c c c c",
		Columns:  true,
		UArray:   true,
		Rounding: policy,
	})
}
