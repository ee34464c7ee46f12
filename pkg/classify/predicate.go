package classify

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/desenhapp/svgprep/pkg/svgdoc"
)

// IsDecorative reports whether an existing element is decorative, judged
// from its attributes alone: pointer-events="none", or a fill in the fixed
// decorative palette (case-insensitive).
//
// This predicate is deliberately narrower than the classifier rules. It is
// the after-the-fact check used by validation and repair on trees that may
// already have been transformed, where geometry heuristics no longer apply
// (a transformed colorable region has fill="none" regardless of what it
// looked like originally).
func IsDecorative(n *html.Node) bool {
	if v, ok := svgdoc.Attr(n, svgdoc.AttrPointerEvents); ok && v == "none" {
		return true
	}
	fill, ok := svgdoc.Attr(n, svgdoc.AttrFill)
	if !ok {
		return false
	}
	for _, p := range DefaultPalette {
		if strings.EqualFold(fill, p) {
			return true
		}
	}
	return false
}
