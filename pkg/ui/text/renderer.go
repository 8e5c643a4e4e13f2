// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/guess/pkg/types"
	"github.com/arthur-debert/guess/pkg/ui/report"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders a dispatch result as indented plain text
func (r *Renderer) RenderResult(result types.DispatchResult) error {
	var b strings.Builder
	for i, in := range result.Interpretations {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(in.Label())
		b.WriteString(":\n")
		for _, v := range in.Variants {
			b.WriteString("  ")
			b.WriteString(v.Value)
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text. Unrecognized input gets a
// list of example invocations.
func (r *Renderer) RenderError(err error) error {
	raw, ok := report.Unrecognized(err)
	if !ok {
		_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
		return werr
	}

	var b strings.Builder
	b.WriteString(report.UnrecognizedMessage(raw))
	b.WriteString("\n\nTry one of:\n")
	suggestions := report.Suggestions()
	width := 0
	for _, s := range suggestions {
		width = max(width, len(s.Command))
	}
	for _, s := range suggestions {
		fmt.Fprintf(&b, "  %-*s  # %s\n", width, s.Command, s.Description)
	}
	_, werr := io.WriteString(r.output, b.String())
	return werr
}
