// Package validate inspects SVG trees against the colorable-drawing
// contract and repairs the most common structural defect.
//
// Validation re-inspects any tree, freshly transformed or legacy, and
// reports defects as data, never as errors: duplicate area identifiers,
// decorative elements missing their non-interactivity marker, and drawings
// with no colorable area at all. Each result carries actionable
// suggestions. Repair ([FixDuplicateIDs]) resolves identifier collisions by
// renaming later decorative duplicates into a disjoint namespace.
//
// Diagnostics are produced in Portuguese; they surface verbatim in the
// product's authoring tools.
package validate

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/desenhapp/svgprep/pkg/classify"
	"github.com/desenhapp/svgprep/pkg/svgdoc"
)

// Diagnostic messages and message prefixes.
const (
	msgDuplicateID      = "ID duplicado encontrado: %s"
	msgMissingPointer   = "Elemento decorativo %s não possui pointer-events=\"none\""
	msgNoColorableAreas = "Nenhuma área colorível encontrada"
)

// Result is the outcome of validating one tree. A fresh Result is produced
// on every call; it holds no reference to the tree.
type Result struct {
	// Valid is false if and only if Errors is non-empty.
	Valid bool `json:"valid"`

	// Errors are contract violations that make the drawing unusable.
	Errors []string `json:"errors"`

	// Warnings are quality issues that do not block usage.
	Warnings []string `json:"warnings"`

	// ColorableAreas lists the identifiers of elements judged colorable,
	// in document order.
	ColorableAreas []string `json:"colorable_areas"`

	// DecorativeElements lists the identifiers of elements judged
	// decorative, in document order.
	DecorativeElements []string `json:"decorative_elements"`

	// Suggestions are remediation hints derived from the findings.
	Suggestions []string `json:"suggestions"`
}

// Validate inspects the tree rooted at root.
//
// Only elements whose identifier carries the colorable prefix are
// inspected; that is the population the contract makes claims about.
// Elements are walked in document order, so Errors, ColorableAreas and
// DecorativeElements are deterministic for a given tree.
func Validate(root *html.Node) *Result {
	res := &Result{Valid: true}

	seen := make(map[string]bool)
	for _, n := range selectAreaElements(root) {
		id := svgdoc.ID(n)

		if seen[id] {
			res.Errors = append(res.Errors, fmt.Sprintf(msgDuplicateID, id))
			res.Valid = false
		} else {
			seen[id] = true
		}

		if classify.IsDecorative(n) {
			res.DecorativeElements = append(res.DecorativeElements, id)
			if svgdoc.AttrOr(n, svgdoc.AttrPointerEvents, "") != "none" {
				res.Warnings = append(res.Warnings, fmt.Sprintf(msgMissingPointer, id))
			}
		} else {
			res.ColorableAreas = append(res.ColorableAreas, id)
		}
	}

	if len(res.ColorableAreas) == 0 {
		res.Warnings = append(res.Warnings, msgNoColorableAreas)
	}

	res.Suggestions = Suggestions(res)
	return res
}

// selectAreaElements returns the elements under root whose identifier
// starts with the colorable-ID prefix, in document order.
func selectAreaElements(root *html.Node) []*html.Node {
	if root == nil {
		return nil
	}
	sel := goquery.NewDocumentFromNode(root).
		Find(fmt.Sprintf("[id^='%s']", svgdoc.AreaIDPrefix))

	out := make([]*html.Node, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, s.Nodes[0])
	})
	return out
}

// concernsPointerEvents reports whether a warning is about a missing
// non-interactivity marker.
func concernsPointerEvents(warning string) bool {
	return strings.Contains(warning, "pointer-events")
}
