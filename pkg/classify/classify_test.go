package classify

import (
	"testing"

	"github.com/desenhapp/svgprep/pkg/svgdoc"
)

// info builds an element snapshot with a bounding box of the given area.
func info(fill, stroke string, area float64) svgdoc.ElementInfo {
	return svgdoc.ElementInfo{
		Tag:    "path",
		Fill:   fill,
		Stroke: stroke,
		BBox:   svgdoc.BBox{Width: area, Height: 1},
	}
}

func TestClassifyElement_OpenStroke(t *testing.T) {
	got, rule := ExplainElement(info("none", "#333333", 500), DefaultConfig())
	if got != Colorable {
		t.Errorf("ClassifyElement() = %v, want Colorable", got)
	}
	if rule != "open-stroke" {
		t.Errorf("rule = %q, want %q", rule, "open-stroke")
	}
}

func TestClassifyElement_OpenStrokeBeatsTinyArea(t *testing.T) {
	// An unfilled outline stays colorable no matter how small it is:
	// the open-stroke rule outranks the area threshold.
	got, rule := ExplainElement(info("none", "black", 1), DefaultConfig())
	if got != Colorable {
		t.Errorf("ClassifyElement() = %v, want Colorable", got)
	}
	if rule != "open-stroke" {
		t.Errorf("rule = %q, want %q", rule, "open-stroke")
	}
}

func TestClassifyElement_FillNoneWithoutStroke(t *testing.T) {
	// fill="none" alone does not trigger the open-stroke rule; with a
	// large area and no palette match the element falls through to the
	// default verdict.
	got, rule := ExplainElement(info("none", "", 500), DefaultConfig())
	if got != Colorable {
		t.Errorf("ClassifyElement() = %v, want Colorable", got)
	}
	if rule != "default" {
		t.Errorf("rule = %q, want %q", rule, "default")
	}
}

func TestClassifyElement_TinyArea(t *testing.T) {
	got, rule := ExplainElement(info("#FF0000", "", 50), DefaultConfig())
	if got != Decorative {
		t.Errorf("ClassifyElement() = %v, want Decorative", got)
	}
	if rule != "tiny-area" {
		t.Errorf("rule = %q, want %q", rule, "tiny-area")
	}
}

func TestClassifyElement_AreaExactlyAtThreshold(t *testing.T) {
	// The threshold is exclusive: area == MinArea is not tiny.
	got, rule := ExplainElement(info("#FF0000", "", DefaultMinArea), DefaultConfig())
	if got != Colorable {
		t.Errorf("ClassifyElement() = %v, want Colorable", got)
	}
	if rule != "default" {
		t.Errorf("rule = %q, want %q", rule, "default")
	}
}

func TestClassifyElement_TinyAreaBeatsPalette(t *testing.T) {
	_, rule := ExplainElement(info("#000000", "", 10), DefaultConfig())
	if rule != "tiny-area" {
		t.Errorf("rule = %q, want %q", rule, "tiny-area")
	}
}

func TestClassifyElement_DecorativeFill(t *testing.T) {
	tests := []struct {
		fill string
	}{
		{"#000000"},
		{"#222221"},
		{"#B5B5B5"},
		{"#b5b5b5"}, // palette matching ignores case
		{"#FFFFFF"},
		{"black"},
		{"White"},
		{"gray"},
		{"grey"},
	}
	for _, tt := range tests {
		got, rule := ExplainElement(info(tt.fill, "", 500), DefaultConfig())
		if got != Decorative {
			t.Errorf("ClassifyElement(fill=%q) = %v, want Decorative", tt.fill, got)
		}
		if rule != "decorative-fill" {
			t.Errorf("ClassifyElement(fill=%q) rule = %q, want %q", tt.fill, rule, "decorative-fill")
		}
	}
}

func TestClassifyElement_FilledStroke(t *testing.T) {
	got, rule := ExplainElement(info("#FF0000", "#333333", 500), DefaultConfig())
	if got != Decorative {
		t.Errorf("ClassifyElement() = %v, want Decorative", got)
	}
	if rule != "filled-stroke" {
		t.Errorf("rule = %q, want %q", rule, "filled-stroke")
	}
}

func TestClassifyElement_FilledStrokeIgnoresStrokeNone(t *testing.T) {
	// stroke="none" counts as no stroke, so a non-palette fill with it
	// falls through to the default verdict.
	got, rule := ExplainElement(info("#FF0000", "none", 500), DefaultConfig())
	if got != Colorable {
		t.Errorf("ClassifyElement() = %v, want Colorable", got)
	}
	if rule != "default" {
		t.Errorf("rule = %q, want %q", rule, "default")
	}
}

func TestClassifyElement_Default(t *testing.T) {
	got, rule := ExplainElement(info("#3498DB", "", 500), DefaultConfig())
	if got != Colorable {
		t.Errorf("ClassifyElement() = %v, want Colorable", got)
	}
	if rule != "default" {
		t.Errorf("rule = %q, want %q", rule, "default")
	}
}

func TestClassifyElement_CustomMinArea(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinArea = 10

	if got := ClassifyElement(info("#FF0000", "", 50), cfg); got != Colorable {
		t.Errorf("ClassifyElement(area=50, min=10) = %v, want Colorable", got)
	}
	if got := ClassifyElement(info("#FF0000", "", 5), cfg); got != Decorative {
		t.Errorf("ClassifyElement(area=5, min=10) = %v, want Decorative", got)
	}
}

func TestClassify_PartitionIsTotalAndOrdered(t *testing.T) {
	infos := []svgdoc.ElementInfo{
		info("none", "black", 500),   // colorable (open-stroke)
		info("#000000", "", 500),     // decorative (palette)
		info("#FF0000", "", 500),     // colorable (default)
		info("#00FF00", "", 10),      // decorative (tiny)
		info("#0000FF", "gray", 500), // decorative (filled-stroke)
	}

	c := Classify(infos, DefaultConfig())

	if c.Len() != len(infos) {
		t.Fatalf("Len() = %d, want %d", c.Len(), len(infos))
	}
	if len(c.Colorable) != 2 {
		t.Errorf("len(Colorable) = %d, want 2", len(c.Colorable))
	}
	if len(c.Decorative) != 3 {
		t.Errorf("len(Decorative) = %d, want 3", len(c.Decorative))
	}

	// Relative document order survives within each group.
	if c.Colorable[0].Fill != "none" || c.Colorable[1].Fill != "#FF0000" {
		t.Errorf("Colorable order = [%q %q], want [none #FF0000]",
			c.Colorable[0].Fill, c.Colorable[1].Fill)
	}
	if c.Decorative[0].Fill != "#000000" || c.Decorative[2].Fill != "#0000FF" {
		t.Errorf("Decorative order = [%q .. %q], want [#000000 .. #0000FF]",
			c.Decorative[0].Fill, c.Decorative[2].Fill)
	}
}

func TestClassify_Empty(t *testing.T) {
	c := Classify(nil, DefaultConfig())
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
}

func TestKind_String(t *testing.T) {
	if got := Colorable.String(); got != "colorable" {
		t.Errorf("Colorable.String() = %q, want %q", got, "colorable")
	}
	if got := Decorative.String(); got != "decorative" {
		t.Errorf("Decorative.String() = %q, want %q", got, "decorative")
	}
}
