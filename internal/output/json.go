// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
	"math"

	"labtool/core/fitting"
	"labtool/core/sigdig"
	"labtool/core/student"
	"labtool/pkg/api"
)

func encodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ToAPIFit converts a fit to its stable wire format. Parameters the fit
// cannot constrain carry std_dev -1.
func ToAPIFit(fit *fitting.CurveFit, model string, policy sigdig.Policy) api.FitResultV1 {
	names := fit.Names()
	params := make([]api.FitParamV1, len(fit.Params))
	for i, p := range fit.Params {
		stdDev := p.S()
		if math.IsInf(stdDev, 0) || math.IsNaN(stdDev) {
			stdDev = -1
		}
		params[i] = api.FitParamV1{
			Name:    names[i],
			Value:   p.N(),
			StdDev:  stdDev,
			Rounded: rounded(p, policy),
		}
	}
	return api.FitResultV1{
		Model:  model,
		Params: params,
		Points: len(fit.XIn),
		SSE:    fit.SSE,
	}
}

// ToAPIStudent converts a summary to its stable wire format.
func ToAPIStudent(st *student.Student, policy sigdig.Policy) api.StudentResultV1 {
	mean := st.Mean()
	return api.StudentResultV1{
		N:           st.Len(),
		Sigma:       st.Sigma(),
		TFactor:     st.T(),
		Mean:        mean.N(),
		SEM:         st.SEM(),
		Uncertainty: mean.S(),
		Rounded:     rounded(mean, policy),
	}
}

// WriteFitJSON writes the fit as indented JSON.
func WriteFitJSON(w io.Writer, fit *fitting.CurveFit, model string, policy sigdig.Policy) error {
	return encodePretty(w, ToAPIFit(fit, model, policy))
}

// WriteStudentJSON writes the summary as indented JSON.
func WriteStudentJSON(w io.Writer, st *student.Student, policy sigdig.Policy) error {
	return encodePretty(w, ToAPIStudent(st, policy))
}
