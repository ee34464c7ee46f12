package validate

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/desenhapp/svgprep/pkg/classify"
	"github.com/desenhapp/svgprep/pkg/svgdoc"
)

// RepairResult reports what a repair pass changed.
type RepairResult struct {
	// Fixed is true iff Changes is non-empty.
	Fixed bool `json:"fixed"`

	// Changes are human-readable descriptions of each rename, in the
	// order the repairs were made.
	Changes []string `json:"changes"`
}

// FixDuplicateIDs resolves collisions among colorable-style identifiers.
//
// The first occurrence of each identifier is its canonical owner and is
// never touched. Every later occurrence is renamed only when the
// decorative predicate classifies it as decorative; it then receives a
// fresh identifier in the decorative namespace ("decorative-1",
// "decorative-2", … counted per call). A later duplicate that is not
// classifiably decorative is left alone: two colorable-looking elements
// sharing an identifier is an ambiguity repair cannot resolve, and only
// [Validate] surfaces it.
//
// A nil or non-element root is an expected input in this domain and yields
// the neutral no-op result rather than an error.
func FixDuplicateIDs(root *html.Node) *RepairResult {
	res := &RepairResult{}
	if root == nil || root.Type != html.ElementNode {
		return res
	}

	seen := make(map[string]bool)
	next := 1
	for _, n := range selectAreaElements(root) {
		id := svgdoc.ID(n)
		if !seen[id] {
			seen[id] = true
			continue
		}
		if !classify.IsDecorative(n) {
			continue
		}

		fresh := fmt.Sprintf("%s%d", svgdoc.DecorativeIDPrefix, next)
		next++
		svgdoc.SetAttr(n, svgdoc.AttrID, fresh)
		res.Changes = append(res.Changes, fmt.Sprintf("%s → %s", id, fresh))
	}

	res.Fixed = len(res.Changes) > 0
	return res
}
