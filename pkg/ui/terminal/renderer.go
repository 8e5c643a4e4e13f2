// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/guess/pkg/interpreters"
	"github.com/arthur-debert/guess/pkg/types"
	"github.com/arthur-debert/guess/pkg/ui/report"
	"github.com/arthur-debert/guess/pkg/ui/styles"
)

// Renderer provides styled terminal output
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{output: w}, nil
}

// RenderResult renders a dispatch result with headings, variant labels
// and a swatch for colors.
func (r *Renderer) RenderResult(result types.DispatchResult) error {
	heading := styles.GetStyle(styles.Heading)
	source := styles.GetStyle(styles.Source)
	value := styles.GetStyle(styles.Value)
	label := styles.GetStyle(styles.VariantLabel)

	var b strings.Builder
	for i, in := range result.Interpretations {
		if i > 0 {
			b.WriteString("\n")
		}

		b.WriteString(heading.Render(in.Domain.String()))
		if in.Source != "" {
			b.WriteString(" ")
			b.WriteString(source.Render("(from " + in.Source + ")"))
		}
		if c, ok := in.Value.(interpreters.RGB); ok {
			b.WriteString(" ")
			b.WriteString(styles.Swatch(c.Hex()))
		}
		b.WriteString("\n")

		// pad by display cells, not bytes
		width := 0
		for _, v := range in.Variants {
			width = max(width, lipgloss.Width(v.Value))
		}
		for _, v := range in.Variants {
			b.WriteString(value.Render(v.Value))
			if result.Mode == types.ModeFocused {
				b.WriteString(strings.Repeat(" ", width-lipgloss.Width(v.Value)+2))
				b.WriteString(label.Render(v.Label))
			}
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	errStyle := styles.GetStyle(styles.Error)

	raw, ok := report.Unrecognized(err)
	if !ok {
		_, werr := fmt.Fprintln(r.output, errStyle.Render("Error: "+err.Error()))
		return werr
	}

	var b strings.Builder
	b.WriteString(errStyle.Render(report.UnrecognizedMessage(raw)))
	b.WriteString("\n\n")
	b.WriteString(styles.GetStyle(styles.Muted).Render("Try one of:"))
	b.WriteString("\n")
	suggestions := report.Suggestions()
	width := 0
	for _, s := range suggestions {
		width = max(width, len(s.Command))
	}
	for _, s := range suggestions {
		b.WriteString(styles.GetStyle(styles.Suggestion).Render(fmt.Sprintf("%-*s", width, s.Command)))
		b.WriteString("  ")
		b.WriteString(styles.GetStyle(styles.Muted).Render(s.Description))
		b.WriteString("\n")
	}
	_, werr := io.WriteString(r.output, b.String())
	return werr
}
