// pkg/api/student_v1.go
package api

// StudentResultV1 is the stable JSON schema for Student-t summaries.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type StudentResultV1 struct {
	N           int     `json:"n"`
	Sigma       int     `json:"sigma"`
	TFactor     float64 `json:"t_factor"`
	Mean        float64 `json:"mean"`
	SEM         float64 `json:"sem"`
	Uncertainty float64 `json:"uncertainty"` // t_factor * sem
	Rounded     string  `json:"rounded"`
}
