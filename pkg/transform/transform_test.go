package transform

import (
	"testing"

	"github.com/desenhapp/svgprep/pkg/classify"
	"github.com/desenhapp/svgprep/pkg/svgdoc"
)

func classified(t *testing.T, markup string) (*svgdoc.Document, classify.Classification) {
	t.Helper()
	doc, err := svgdoc.ParseBytes([]byte(markup))
	if err != nil {
		t.Fatalf("ParseBytes() error = %v", err)
	}
	c := classify.Classify(svgdoc.CollectAll(doc), classify.DefaultConfig())
	return doc, c
}

func TestApply_AssignsSequentialIDs(t *testing.T) {
	doc, c := classified(t, `<svg>
		<path id="old-1" fill="#FF0000" d="M0 0 L100 0 L100 100 Z"/>
		<path fill="#00AA00" d="M0 0 L100 0 L100 100 Z"/>
		<path fill="#0000AA" d="M0 0 L100 0 L100 100 Z"/>
	</svg>`)

	stats := Apply(c, DefaultConfig())

	if stats.IDsAssigned != 3 {
		t.Fatalf("IDsAssigned = %d, want 3", stats.IDsAssigned)
	}
	want := []string{"area-1", "area-2", "area-3"}
	for i, n := range doc.Elements() {
		if got := svgdoc.ID(n); got != want[i] {
			t.Errorf("element %d id = %q, want %q", i, got, want[i])
		}
	}
}

func TestApply_OverwritesExistingIDs(t *testing.T) {
	doc, c := classified(t, `<svg>
		<path id="area-7" fill="#FF0000" d="M0 0 L100 0 L100 100 Z"/>
	</svg>`)

	Apply(c, DefaultConfig())

	if got := svgdoc.ID(doc.Elements()[0]); got != "area-1" {
		t.Errorf("id = %q, want %q", got, "area-1")
	}
}

func TestApply_ColorableFillAndStroke(t *testing.T) {
	doc, c := classified(t, `<svg>
		<path fill="#FF0000" d="M0 0 L100 0 L100 100 Z"/>
	</svg>`)

	Apply(c, DefaultConfig())

	n := doc.Elements()[0]
	if got := svgdoc.AttrOr(n, svgdoc.AttrFill, ""); got != "none" {
		t.Errorf("fill = %q, want %q", got, "none")
	}
	if got := svgdoc.AttrOr(n, svgdoc.AttrStrokeWidth, ""); got != "2" {
		t.Errorf("stroke-width = %q, want %q", got, "2")
	}
}

func TestApply_StrokeWidthFloor(t *testing.T) {
	tests := []struct {
		name string
		attr string
		want string
	}{
		{"absent", ``, "2"},
		{"below floor", ` stroke-width="0.5"`, "2"},
		{"at floor kept verbatim", ` stroke-width="2.0"`, "2.0"},
		{"above floor kept verbatim", ` stroke-width="3.25"`, "3.25"},
		{"non numeric", ` stroke-width="thick"`, "2"},
		{"px unit above floor", ` stroke-width="4px"`, "4px"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, c := classified(t, `<svg><path fill="#FF0000"`+tt.attr+` d="M0 0 L100 0 L100 100 Z"/></svg>`)
			Apply(c, DefaultConfig())
			n := doc.Elements()[0]
			if got := svgdoc.AttrOr(n, svgdoc.AttrStrokeWidth, ""); got != tt.want {
				t.Errorf("stroke-width = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_DecorativeUntouchedExceptPointerEvents(t *testing.T) {
	doc, c := classified(t, `<svg>
		<path id="bg" fill="#000000" stroke-width="0.5" d="M0 0 L100 0 L100 100 Z"/>
	</svg>`)

	stats := Apply(c, DefaultConfig())

	if stats.PointerEventsAdded != 1 {
		t.Fatalf("PointerEventsAdded = %d, want 1", stats.PointerEventsAdded)
	}
	n := doc.Elements()[0]
	if got := svgdoc.AttrOr(n, svgdoc.AttrPointerEvents, ""); got != "none" {
		t.Errorf("pointer-events = %q, want %q", got, "none")
	}
	if got := svgdoc.ID(n); got != "bg" {
		t.Errorf("id = %q, want untouched %q", got, "bg")
	}
	if got := svgdoc.AttrOr(n, svgdoc.AttrFill, ""); got != "#000000" {
		t.Errorf("fill = %q, want untouched %q", got, "#000000")
	}
	if got := svgdoc.AttrOr(n, svgdoc.AttrStrokeWidth, ""); got != "0.5" {
		t.Errorf("stroke-width = %q, want untouched %q", got, "0.5")
	}
}

func TestApply_PreservesDocumentOrder(t *testing.T) {
	doc, c := classified(t, `<svg>
		<path fill="#FF0000" d="M0 0 L100 0 L100 100 Z"/>
		<path fill="#000000" d="M0 0 L100 0 L100 100 Z"/>
		<path fill="#00FF00" d="M0 0 L100 0 L100 100 Z"/>
	</svg>`)

	Apply(c, DefaultConfig())

	want := []string{"area-1", "", "area-2"}
	els := doc.Elements()
	if len(els) != 3 {
		t.Fatalf("len(Elements()) = %d, want 3", len(els))
	}
	for i, n := range els {
		if got := svgdoc.ID(n); got != want[i] {
			t.Errorf("element %d id = %q, want %q", i, got, want[i])
		}
	}
}

func TestApply_Idempotent(t *testing.T) {
	doc, c := classified(t, `<svg>
		<path fill="#FF0000" d="M0 0 L100 0 L100 100 Z"/>
		<path fill="#000000" d="M0 0 L100 0 L100 100 Z"/>
	</svg>`)

	Apply(c, DefaultConfig())
	first, err := doc.Markup()
	if err != nil {
		t.Fatalf("Markup() error = %v", err)
	}

	// Re-classify the transformed tree and apply again.
	c2 := classify.Classify(svgdoc.CollectAll(doc), classify.DefaultConfig())
	Apply(c2, DefaultConfig())
	second, err := doc.Markup()
	if err != nil {
		t.Fatalf("Markup() error = %v", err)
	}

	if first != second {
		t.Errorf("second pass changed markup:\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestApply_Empty(t *testing.T) {
	var c classify.Classification
	stats := Apply(c, DefaultConfig())
	if stats.IDsAssigned != 0 || stats.PointerEventsAdded != 0 {
		t.Errorf("Stats = %+v, want zero", stats)
	}
}

func TestApply_CustomStrokeWidthFloor(t *testing.T) {
	doc, c := classified(t, `<svg><path fill="#FF0000" stroke-width="2" d="M0 0 L100 0 L100 100 Z"/></svg>`)

	Apply(c, Config{MinStrokeWidth: 3.5})

	n := doc.Elements()[0]
	if got := svgdoc.AttrOr(n, svgdoc.AttrStrokeWidth, ""); got != "3.5" {
		t.Errorf("stroke-width = %q, want %q", got, "3.5")
	}
}
