// Package transform rewrites a classified SVG tree into the canonical
// colorable-drawing format.
//
// Colorable elements receive sequential area identifiers, lose their fill,
// and get their stroke width raised to a visible floor. Decorative elements
// are made non-interactive and otherwise left exactly as found, since they
// are visual context that must keep rendering unchanged.
//
// The engine mutates attributes in place and never inserts, removes, or
// reorders nodes: the coloring UI binds to DOM order and relies on the
// structural shape staying stable across re-adaptation. Applying the same
// classification twice yields the same final attribute values: identifiers
// are recomputed from position, and the fill/stroke-width rewrites saturate.
package transform

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"

	"github.com/desenhapp/svgprep/pkg/classify"
	"github.com/desenhapp/svgprep/pkg/svgdoc"
)

// DefaultMinStrokeWidth is the stroke-width floor applied to colorable
// elements so the line art stays visible once the fill is stripped.
const DefaultMinStrokeWidth = 2.0

// Config tunes the transform engine.
type Config struct {
	// MinStrokeWidth is the stroke-width floor for colorable elements.
	// Values already at or above the floor are kept verbatim; absent,
	// non-numeric, or smaller values are replaced by exactly this floor.
	MinStrokeWidth float64
}

// DefaultConfig returns the engine configuration matching the
// colorable-drawing contract.
func DefaultConfig() Config {
	return Config{MinStrokeWidth: DefaultMinStrokeWidth}
}

// Stats summarizes one transform pass. It is informational only and never
// drives control flow.
type Stats struct {
	// IDsAssigned is the number of colorable elements that received an
	// area identifier.
	IDsAssigned int `json:"ids_assigned"`
	// PointerEventsAdded is the number of decorative elements marked
	// non-interactive.
	PointerEventsAdded int `json:"pointer_events_added"`
}

// Apply rewrites the classified elements in place and returns the pass
// statistics.
//
// Colorable elements are processed in classification order, which the
// classifier guarantees equals document order; the 1-based position becomes
// the area identifier, overwriting any prior identifier unconditionally.
func Apply(c classify.Classification, cfg Config) Stats {
	for i, info := range c.Colorable {
		n := info.Node
		svgdoc.SetAttr(n, svgdoc.AttrID, fmt.Sprintf("%s%d", svgdoc.AreaIDPrefix, i+1))
		svgdoc.SetAttr(n, svgdoc.AttrFill, "none")
		normalizeStrokeWidth(n, cfg.MinStrokeWidth)
	}

	for _, info := range c.Decorative {
		svgdoc.SetAttr(info.Node, svgdoc.AttrPointerEvents, "none")
	}

	return Stats{
		IDsAssigned:        len(c.Colorable),
		PointerEventsAdded: len(c.Decorative),
	}
}

// normalizeStrokeWidth raises the stroke width of a colorable element to
// the floor. An existing value that parses to a number at or above the
// floor is left untouched, including its original formatting.
func normalizeStrokeWidth(n *html.Node, floor float64) {
	if v, ok := svgdoc.Attr(n, svgdoc.AttrStrokeWidth); ok {
		if w, err := svgdoc.ParseLength(v); err == nil && w >= floor {
			return
		}
	}
	svgdoc.SetAttr(n, svgdoc.AttrStrokeWidth, strconv.FormatFloat(floor, 'f', -1, 64))
}
