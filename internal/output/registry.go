// internal/output/registry.go
package output

import (
	"fmt"
	"io"

	"labtool/core/fitting"
	"labtool/core/sigdig"
	"labtool/core/student"
)

// Known format names.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTeX  = "tex"
)

// Formats lists the accepted output format names.
func Formats() []string { return []string{FormatText, FormatJSON, FormatTeX} }

type fitWriter func(w io.Writer, fit *fitting.CurveFit, model string, policy sigdig.Policy) error

type studentWriter func(w io.Writer, st *student.Student, policy sigdig.Policy) error

var fitWriters = map[string]fitWriter{
	FormatText: WriteFitText,
	FormatJSON: WriteFitJSON,
	FormatTeX:  WriteFitTeX,
}

var studentWriters = map[string]studentWriter{
	FormatText: WriteStudentText,
	FormatJSON: WriteStudentJSON,
	FormatTeX:  WriteStudentTeX,
}

// WriteFit renders fit in the named format.
func WriteFit(format string, w io.Writer, fit *fitting.CurveFit, model string, policy sigdig.Policy) error {
	fn, ok := fitWriters[format]
	if !ok {
		return fmt.Errorf("output: unknown format %q", format)
	}
	return fn(w, fit, model, policy)
}

// WriteStudent renders st in the named format.
func WriteStudent(format string, w io.Writer, st *student.Student, policy sigdig.Policy) error {
	fn, ok := studentWriters[format]
	if !ok {
		return fmt.Errorf("output: unknown format %q", format)
	}
	return fn(w, st, policy)
}
