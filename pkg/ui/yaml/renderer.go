// Package yaml provides YAML output
package yaml

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/guess/pkg/types"
	"github.com/arthur-debert/guess/pkg/ui/report"
)

// Renderer writes each value as its own YAML document
type Renderer struct {
	output io.Writer
}

// New creates a new YAML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

func (r *Renderer) encode(v interface{}) error {
	enc := yaml.NewEncoder(r.output)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// RenderResult renders a dispatch result as YAML
func (r *Renderer) RenderResult(result types.DispatchResult) error {
	return r.encode(result)
}

// RenderError renders an error report as YAML
func (r *Renderer) RenderError(err error) error {
	return r.encode(report.FromError(err))
}
