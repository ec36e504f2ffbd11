// core/textab/format.go
package textab

import (
	"regexp"
	"strings"
)

// Plus-minus symbols for rendered uncertainty cells.
const (
	SymbolTeX   = `\pm` // LaTeX math mode
	SymbolPlain = "+-"  // plain text
)

var (
	pmRe       = regexp.MustCompile(`(\d)\+/-(\d)`)
	expTeXRe   = regexp.MustCompile(`\((\d+\.?\d*) \\pm (\d+\.?\d*)\)e`)
	expPlainRe = regexp.MustCompile(`\((\d+\.?\d*) \+- (\d+\.?\d*)\)e`)
)

// FormatCell rewrites a serialized uncertain cell into its publication
// form with sym between the two numbers, and unwraps the parentheses of
// exponent-carrying cells. Quotes picked up during serialization are
// dropped first. Cells without a digit+/-digit core pass through
// unchanged, so plain numbers, text and exponents like "1e+05" are safe.
func FormatCell(raw, sym string) string {
	s := strings.ReplaceAll(raw, `"`, "")
	s = pmRe.ReplaceAllString(s, "${1} "+sym+" ${2}")
	switch sym {
	case SymbolTeX:
		s = expTeXRe.ReplaceAllString(s, "${1} "+sym+" ${2} e")
	case SymbolPlain:
		s = expPlainRe.ReplaceAllString(s, "${1} "+sym+" ${2} e")
	default:
		re := regexp.MustCompile(`\((\d+\.?\d*) ` + regexp.QuoteMeta(sym) + ` (\d+\.?\d*)\)e`)
		s = re.ReplaceAllString(s, "${1} "+sym+" ${2} e")
	}
	return s
}
