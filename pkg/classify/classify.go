// Package classify decides which elements of an SVG are colorable regions
// and which are decorative artwork.
//
// Classification applies a ranked rule list to an element snapshot. The
// rules are evaluated strictly top to bottom and the first match wins, so
// rule order determines the outcome when several rules apply to the same
// element:
//
//  1. open-stroke: fill="none" with a visible stroke → colorable
//  2. tiny-area: bounding-box area below the threshold → decorative
//  3. decorative-fill: fill in the known decorative palette → decorative
//  4. filled-stroke: opaque fill plus a stroke → decorative
//  5. default: colorable
//
// The package also provides the cheaper after-the-fact predicate
// [IsDecorative], used by validation to re-inspect elements that were
// already transformed: it looks only at pointer-events and fill, not at
// geometry.
package classify

import (
	"strings"

	"github.com/desenhapp/svgprep/pkg/svgdoc"
)

// Kind is the classification verdict for one element.
type Kind int

const (
	// Colorable marks a fillable region the user paints.
	Colorable Kind = iota
	// Decorative marks background or line art that must not be painted.
	Decorative
)

// String returns the lowercase verdict name.
func (k Kind) String() string {
	if k == Decorative {
		return "decorative"
	}
	return "colorable"
}

// DefaultMinArea is the bounding-box area (square units, local coordinate
// space) below which a shape is considered an ornamental accent.
const DefaultMinArea = 100.0

// DefaultPalette is the fixed set of fill colors treated as decorative.
// Matching is case-insensitive.
var DefaultPalette = []string{
	"#000000", "#222221", "#B5B5B5", "#FFFFFF",
	"black", "white", "gray", "grey",
}

// Config tunes the classifier. The zero value is not useful; start from
// DefaultConfig.
type Config struct {
	// MinArea is the tiny-area threshold.
	MinArea float64
	// Palette is the set of decorative fill colors, compared
	// case-insensitively.
	Palette []string
}

// DefaultConfig returns the classifier configuration matching the
// colorable-drawing contract.
func DefaultConfig() Config {
	return Config{MinArea: DefaultMinArea, Palette: DefaultPalette}
}

// inPalette reports whether fill matches one of the palette entries,
// ignoring case.
func (c Config) inPalette(fill string) bool {
	for _, p := range c.Palette {
		if strings.EqualFold(fill, p) {
			return true
		}
	}
	return false
}

// rule is one entry of the ranked heuristic list.
type rule struct {
	name    string
	kind    Kind
	applies func(info svgdoc.ElementInfo, cfg Config) bool
}

// rules is evaluated top to bottom with early exit. Order is load-bearing:
// an unfilled outline stays colorable no matter how small it is, and the
// palette check runs before the generic filled-and-stroked check.
var rules = []rule{
	{
		name: "open-stroke",
		kind: Colorable,
		applies: func(info svgdoc.ElementInfo, _ Config) bool {
			return info.Fill == "none" && info.HasStroke()
		},
	},
	{
		name: "tiny-area",
		kind: Decorative,
		applies: func(info svgdoc.ElementInfo, cfg Config) bool {
			return info.BBox.Area() < cfg.MinArea
		},
	},
	{
		name: "decorative-fill",
		kind: Decorative,
		applies: func(info svgdoc.ElementInfo, cfg Config) bool {
			return info.HasFill() && cfg.inPalette(info.Fill)
		},
	},
	{
		name: "filled-stroke",
		kind: Decorative,
		applies: func(info svgdoc.ElementInfo, _ Config) bool {
			return info.HasFill() && info.Fill != "none" && info.HasStroke()
		},
	},
}

// defaultRule names the fall-through verdict in explanations.
const defaultRule = "default"

// ClassifyElement returns the verdict for one element snapshot.
func ClassifyElement(info svgdoc.ElementInfo, cfg Config) Kind {
	kind, _ := ExplainElement(info, cfg)
	return kind
}

// ExplainElement returns the verdict together with the name of the rule
// that produced it. The rule name feeds the inspect report and the
// interactive classification mode.
func ExplainElement(info svgdoc.ElementInfo, cfg Config) (Kind, string) {
	for _, r := range rules {
		if r.applies(info, cfg) {
			return r.kind, r.name
		}
	}
	return Colorable, defaultRule
}

// Classification is the colorable/decorative partition of an element list.
// Both groups preserve the relative document order of their members, and
// every input element appears in exactly one group.
type Classification struct {
	Colorable  []svgdoc.ElementInfo
	Decorative []svgdoc.ElementInfo
}

// Len returns the total number of classified elements.
func (c Classification) Len() int {
	return len(c.Colorable) + len(c.Decorative)
}

// Classify partitions infos by applying ClassifyElement to each entry.
func Classify(infos []svgdoc.ElementInfo, cfg Config) Classification {
	var c Classification
	for _, info := range infos {
		if ClassifyElement(info, cfg) == Colorable {
			c.Colorable = append(c.Colorable, info)
		} else {
			c.Decorative = append(c.Decorative, info)
		}
	}
	return c
}
