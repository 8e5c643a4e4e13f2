// Package ui renders dispatch results in the requested output format:
// styled terminal, plain text, JSON, YAML or XML.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/guess/pkg/errors"
	"github.com/arthur-debert/guess/pkg/types"
	"github.com/arthur-debert/guess/pkg/ui/json"
	"github.com/arthur-debert/guess/pkg/ui/terminal"
	"github.com/arthur-debert/guess/pkg/ui/text"
	"github.com/arthur-debert/guess/pkg/ui/xml"
	"github.com/arthur-debert/guess/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderResult renders a dispatch result
	RenderResult(result types.DispatchResult) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error
}

// Resolve turns FormatAuto into a concrete format for output
func Resolve(format Format, output io.Writer) Format {
	if format != FormatAuto {
		return format
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	// Not a file, default to terminal format
	return FormatTerminal
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch Resolve(format, output) {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	case FormatYAML:
		return yaml.New(output)
	case FormatXML:
		return xml.New(output)
	default:
		return nil, errors.Newf(errors.ErrRender, "unknown format: %v", format)
	}
}
