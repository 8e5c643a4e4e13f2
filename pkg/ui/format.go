package ui

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/guess/pkg/errors"
)

// Format selects a renderer
type Format int

const (
	// FormatAuto picks terminal or text depending on where output goes
	FormatAuto Format = iota
	// FormatTerminal is styled output with colors and swatches
	FormatTerminal
	// FormatText is plain indented text
	FormatText
	// FormatJSON is one JSON document per result
	FormatJSON
	// FormatYAML is one YAML document per result
	FormatYAML
	// FormatXML is one XML document per result
	FormatXML
)

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
	FormatYAML:     "yaml",
	FormatXML:      "xml",
}

// formatAliases are extra spellings accepted by ParseFormat
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"terminal": FormatTerminal,
	"plain":    FormatText,
	"yml":      FormatYAML,
}

// String returns the flag spelling of the format
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat reads a --format value, case-insensitively
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
		WithDetail(errors.DetailInput, s)
}

// DetectFormat resolves FormatAuto for output: plain text when NO_COLOR is
// set, output is not a terminal or the terminal has no colors.
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	fd := output.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return FormatText
	}
	if termenv.NewOutput(output).Profile == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
