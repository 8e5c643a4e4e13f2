package recognizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize folds compatibility and full-width forms to ASCII and trims
// surrounding whitespace, so "１２３" reads as "123".
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ToValidUTF8(raw, "")
	out, _, err := transform.String(transform.Chain(norm.NFKC, width.Fold), s)
	if err != nil {
		out = s
	}
	return strings.TrimSpace(out)
}

// Fold returns the case-folded form of s used for unit and name matching
func Fold(s string) string {
	return cases.Fold().String(s)
}
