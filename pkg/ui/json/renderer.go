// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/guess/pkg/types"
	"github.com/arthur-debert/guess/pkg/ui/report"
)

// Renderer writes one indented JSON document per call
type Renderer struct {
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{encoder: encoder}, nil
}

// RenderResult encodes result through its own field tags
func (r *Renderer) RenderResult(result types.DispatchResult) error {
	return r.encoder.Encode(result)
}

// RenderError encodes the structured report for err, including the
// suggestions for unrecognized input
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(report.FromError(err))
}
