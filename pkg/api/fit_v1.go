// pkg/api/fit_v1.go
package api

// FitParamV1 is one fitted parameter in the stable JSON schema.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// StdDev is -1 when the fit cannot constrain the parameter; Rounded then
// reads "unconstrained".
type FitParamV1 struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	StdDev  float64 `json:"std_dev"`
	Rounded string  `json:"rounded"`
}

// FitResultV1 is the stable JSON schema for curve fits.
type FitResultV1 struct {
	Model  string       `json:"model"`
	Params []FitParamV1 `json:"params"`
	Points int          `json:"points"`
	SSE    float64      `json:"sse"`
}
