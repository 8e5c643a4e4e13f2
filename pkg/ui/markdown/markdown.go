// Package markdown renders help-style markdown for the terminal with
// glamour, falling back to the raw source when styling is off.
package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/guess/pkg/interpreters"
)

// Renderer uses the glamour library for rich markdown rendering
type Renderer struct {
	Style string // "dark", "light", "notty", "auto", or a path to a custom style
	Width int    // word wrap width, 0 keeps glamour's default
}

// NewRenderer creates a markdown renderer with style auto-detection
func NewRenderer() *Renderer {
	return &Renderer{Style: "auto"}
}

// Render converts markdown to styled terminal output. On any glamour
// failure the source is returned unchanged.
func (r *Renderer) Render(content string) string {
	var options []glamour.TermRendererOption

	switch r.Style {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	case "dark", "light", "notty", "ascii":
		options = append(options, glamour.WithStandardStyle(r.Style))
	default:
		options = append(options, glamour.WithStylePath(r.Style))
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// Examples builds the markdown document listing one sample per domain
func Examples() string {
	var b strings.Builder
	b.WriteString("# guess examples\n\n")
	b.WriteString("Pass any value and guess lists what it could mean. ")
	b.WriteString("Prefix a domain name to force one reading.\n\n")
	b.WriteString("| Domain | Try | Reads as |\n")
	b.WriteString("|---|---|---|\n")
	for _, ex := range interpreters.Examples() {
		fmt.Fprintf(&b, "| %s | `guess %s` | %s |\n", ex.Domain, ex.Input, ex.Description)
	}
	b.WriteString("\n## Forcing a domain\n\n")
	for _, ex := range interpreters.Examples() {
		fmt.Fprintf(&b, "- `guess %s %s`\n", ex.Domain.Command(), ex.Input)
	}
	return b.String()
}
