package svgdoc

import "golang.org/x/net/html"

// ElementInfo is a read-only snapshot of a graphical element taken before
// transformation. String fields use "" for an absent attribute; an
// attribute explicitly set to the empty string is treated the same way.
//
// The snapshot is computed once per element and never mutated. Node is the
// handle back into the live tree so a classification can be applied to it
// later; the classifier itself only reads the value fields.
type ElementInfo struct {
	Node *html.Node

	Tag         string
	Fill        string
	Stroke      string
	StrokeWidth string
	ID          string
	BBox        BBox
}

// HasFill reports whether the element carries a fill attribute.
func (e ElementInfo) HasFill() bool { return e.Fill != "" }

// HasStroke reports whether the element carries a visible stroke.
// stroke="none" counts as no stroke.
func (e ElementInfo) HasStroke() bool { return e.Stroke != "" && e.Stroke != "none" }

// Collect snapshots a graphical element into an ElementInfo.
func Collect(n *html.Node) ElementInfo {
	return ElementInfo{
		Node:        n,
		Tag:         n.Data,
		Fill:        AttrOr(n, AttrFill, ""),
		Stroke:      AttrOr(n, AttrStroke, ""),
		StrokeWidth: AttrOr(n, AttrStrokeWidth, ""),
		ID:          AttrOr(n, AttrID, ""),
		BBox:        Bounds(n),
	}
}

// CollectAll snapshots every graphical element of the document in document
// order.
func CollectAll(d *Document) []ElementInfo {
	els := d.Elements()
	infos := make([]ElementInfo, len(els))
	for i, n := range els {
		infos[i] = Collect(n)
	}
	return infos
}
