// Package inspect explains how a drawing would be classified without
// changing it.
//
// The report names, for every graphical element, the verdict and the
// heuristic that produced it. It backs the CLI inspect command and the
// interactive classification mode, where an author reviews the verdicts
// before committing to a transform.
package inspect

import (
	"github.com/desenhapp/svgprep/pkg/classify"
	"github.com/desenhapp/svgprep/pkg/svgdoc"
)

// ElementReport describes the verdict for one element.
type ElementReport struct {
	// Index is the 0-based document-order position among graphical
	// elements.
	Index int `json:"index"`

	// Tag is the element name (path, rect, circle, polygon, ellipse).
	Tag string `json:"tag"`

	// ID is the element identifier before any transform, "" when absent.
	ID string `json:"id,omitempty"`

	// Fill and Stroke are the raw attribute values, "" when absent.
	Fill   string `json:"fill,omitempty"`
	Stroke string `json:"stroke,omitempty"`

	// Area is the estimated bounding-box area.
	Area float64 `json:"area"`

	// Kind is the verdict.
	Kind classify.Kind `json:"-"`

	// Verdict is the verdict name, for serialized reports.
	Verdict string `json:"verdict"`

	// Rule is the name of the heuristic that decided, "default" when no
	// ranked rule matched.
	Rule string `json:"rule"`
}

// Report is the classification explanation for a whole drawing.
type Report struct {
	Elements   []ElementReport `json:"elements"`
	Colorable  int             `json:"colorable"`
	Decorative int             `json:"decorative"`
}

// Inspect classifies every graphical element of doc and reports each
// verdict with the rule that produced it. The document is not modified.
func Inspect(doc *svgdoc.Document, cfg classify.Config) *Report {
	r := &Report{}
	for i, info := range svgdoc.CollectAll(doc) {
		kind, rule := classify.ExplainElement(info, cfg)
		r.Elements = append(r.Elements, ElementReport{
			Index:   i,
			Tag:     info.Tag,
			ID:      info.ID,
			Fill:    info.Fill,
			Stroke:  info.Stroke,
			Area:    info.BBox.Area(),
			Kind:    kind,
			Verdict: kind.String(),
			Rule:    rule,
		})
		if kind == classify.Colorable {
			r.Colorable++
		} else {
			r.Decorative++
		}
	}
	return r
}
