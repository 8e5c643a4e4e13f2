// Package xml provides XML output built with etree
package xml

import (
	"io"

	"github.com/beevik/etree"

	"github.com/arthur-debert/guess/pkg/types"
	"github.com/arthur-debert/guess/pkg/ui/report"
)

// Renderer writes one XML document per call
type Renderer struct {
	output io.Writer
}

// New creates a new XML renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	return doc
}

func (r *Renderer) write(doc *etree.Document) error {
	doc.Indent(2)
	_, err := doc.WriteTo(r.output)
	return err
}

// RenderResult renders a dispatch result as a <result> document
func (r *Renderer) RenderResult(res types.DispatchResult) error {
	doc := newDocument()
	root := doc.CreateElement("result")
	root.CreateAttr("input", res.Input)
	root.CreateAttr("mode", string(res.Mode))
	for _, in := range res.Interpretations {
		el := root.CreateElement("interpretation")
		el.CreateAttr("domain", in.Domain.String())
		el.CreateAttr("source", in.Source)
		el.CreateAttr("canonical", in.Canonical)
		for _, v := range in.Variants {
			ve := el.CreateElement("variant")
			ve.CreateAttr("label", v.Label)
			ve.SetText(v.Value)
		}
	}
	return r.write(doc)
}

// RenderError renders an error report as an <error> document
func (r *Renderer) RenderError(err error) error {
	rep := report.FromError(err)

	doc := newDocument()
	root := doc.CreateElement("error")
	if rep.Code != "" {
		root.CreateAttr("code", rep.Code)
	}
	if rep.Input != nil {
		root.CreateAttr("input", *rep.Input)
	}
	root.CreateElement("message").SetText(rep.Error)
	for _, s := range rep.Suggestions {
		se := root.CreateElement("suggestion")
		se.CreateAttr("command", s.Command)
		se.SetText(s.Description)
	}
	return r.write(doc)
}
