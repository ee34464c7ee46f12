// Package svgdoc provides the SVG element tree that the adaptation pipeline
// operates on.
//
// Documents are parsed with golang.org/x/net/html, which handles SVG as
// foreign content and preserves the attribute casing that matters for the
// wire format (viewBox, pointer-events, stroke-width). The tree is plain
// *html.Node; this package adds the attribute helpers, document-order
// element listing, and ElementInfo snapshots the classifier consumes.
//
// The tree is owned by the caller for its whole lifetime. Downstream
// packages (transform, validate) only mutate attributes and identifiers in
// place; they never add, remove, or reorder nodes.
package svgdoc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Attribute names of the colorable-drawing contract.
const (
	AttrID            = "id"
	AttrFill          = "fill"
	AttrStroke        = "stroke"
	AttrStrokeWidth   = "stroke-width"
	AttrPointerEvents = "pointer-events"
)

// AreaIDPrefix is the identifier prefix carried by colorable areas.
const AreaIDPrefix = "area-"

// DecorativeIDPrefix is the identifier namespace used when repair renames a
// decorative element out of a colorable-ID collision.
const DecorativeIDPrefix = "decorative-"

// graphicalTags is the set of element tags the pipeline classifies.
// Everything else (groups, defs, text, gradients) is structural context.
var graphicalTags = map[string]bool{
	"path":    true,
	"rect":    true,
	"circle":  true,
	"polygon": true,
	"ellipse": true,
}

// IsGraphical reports whether n is one of the element kinds the pipeline
// classifies and transforms.
func IsGraphical(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && graphicalTags[n.Data]
}

// Document wraps a parsed SVG tree.
type Document struct {
	// Root is the full parse tree returned by html.Parse.
	Root *html.Node

	// SVG is the <svg> element within Root. All traversal and rendering
	// is scoped to this subtree.
	SVG *html.Node
}

// Parse reads SVG markup from r and returns the parsed document.
// It returns an error when the markup contains no <svg> element.
//
// The parser is lenient by design: documents scraped from the internet are
// frequently malformed, and the HTML5 parsing algorithm recovers from most
// of it. An XML prolog, DOCTYPE, or surrounding HTML are all tolerated.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	svg := findSVG(root)
	if svg == nil {
		return nil, fmt.Errorf("no <svg> element found")
	}

	return &Document{Root: root, SVG: svg}, nil
}

// ParseBytes parses SVG markup from a byte slice.
func ParseBytes(raw []byte) (*Document, error) {
	return Parse(strings.NewReader(string(raw)))
}

// Render serializes the <svg> subtree back to markup.
// Sibling structure and attribute order are whatever the tree holds; Render
// performs no normalization of its own.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.SVG)
}

// Markup returns the serialized <svg> subtree as a string.
func (d *Document) Markup() (string, error) {
	var b strings.Builder
	if err := d.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Elements returns the graphical elements of the document in document
// order. The returned nodes are handles into the live tree.
func (d *Document) Elements() []*html.Node {
	var out []*html.Node
	Walk(d.SVG, func(n *html.Node) {
		if IsGraphical(n) {
			out = append(out, n)
		}
	})
	return out
}

// Walk visits every element node under root (root included) in document
// order, depth first.
func Walk(root *html.Node, fn func(n *html.Node)) {
	if root == nil {
		return
	}
	if root.Type == html.ElementNode {
		fn(root)
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, fn)
	}
}

// findSVG locates the first <svg> element in the parse tree.
func findSVG(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Svg {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if svg := findSVG(c); svg != nil {
			return svg
		}
	}
	return nil
}

// Attr returns the value of the named attribute on n.
// The second return is false when the attribute is absent.
func Attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// AttrOr returns the named attribute or def when it is absent.
func AttrOr(n *html.Node, name, def string) string {
	if v, ok := Attr(n, name); ok {
		return v
	}
	return def
}

// SetAttr sets the named attribute on n, replacing an existing value.
func SetAttr(n *html.Node, name, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr deletes the named attribute from n if present.
func RemoveAttr(n *html.Node, name string) {
	for i := range n.Attr {
		if n.Attr[i].Key == name {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// ID returns the element identifier or "" when absent.
func ID(n *html.Node) string {
	return AttrOr(n, AttrID, "")
}
