// internal/output/text.go
package output

import (
	"fmt"
	"io"

	"labtool/core/fitting"
	"labtool/core/sigdig"
	"labtool/core/student"
	"labtool/core/uncert"
)

func rounded(v uncert.Value, policy sigdig.Policy) string {
	s, err := v.Format(policy)
	if err != nil {
		return "unconstrained"
	}
	return s
}

// WriteFitText writes the human-readable parameter report.
func WriteFitText(w io.Writer, fit *fitting.CurveFit, model string, policy sigdig.Policy) error {
	if _, err := fmt.Fprintf(w, "model:  %s\npoints: %d\nsse:    %g\n", model, len(fit.XIn), fit.SSE); err != nil {
		return err
	}
	names := fit.Names()
	width := 0
	for _, n := range names {
		if len(n) > width {
			width = len(n)
		}
	}
	for i, p := range fit.Params {
		if _, err := fmt.Fprintf(w, "  %-*s = %s\n", width, names[i], rounded(p, policy)); err != nil {
			return err
		}
	}
	for i, p := range fit.Params {
		if _, err := fmt.Fprintf(w, "  %-*s = %g +/- %g (precisely)\n", width, names[i], p.N(), p.S()); err != nil {
			return err
		}
	}
	return nil
}

// WriteStudentText writes the human-readable series summary.
func WriteStudentText(w io.Writer, st *student.Student, policy sigdig.Policy) error {
	mean := st.Mean()
	_, err := fmt.Fprintf(w,
		"samples:   %d\nsigma:     %d\nt factor:  %.4f\nmean:      %s\nprecisely: %g +/- %g\n",
		st.Len(), st.Sigma(), st.T(), rounded(mean, policy), mean.N(), mean.S())
	return err
}
