package inspect

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts a classification report to Graphviz DOT format. Elements
// become nodes colored by verdict, grouped under the heuristic that decided
// them, so an author can see at a glance which rule claimed which parts of
// the drawing. Render the result with [RenderSVG] or [RenderPNG].
func ToDOT(r *Report) string {
	var buf bytes.Buffer
	buf.WriteString("digraph classification {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=12, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	// One node per rule that fired.
	rules := make(map[string]bool)
	for _, e := range r.Elements {
		if !rules[e.Rule] {
			rules[e.Rule] = true
			fmt.Fprintf(&buf, "  %q [shape=ellipse, fillcolor=lightyellow];\n", "rule: "+e.Rule)
		}
	}

	buf.WriteString("\n")
	for _, e := range r.Elements {
		attrs := []string{
			fmt.Sprintf("label=%q", elementLabel(e)),
			"fillcolor=" + verdictColor(e.Verdict),
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(e), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range r.Elements {
		fmt.Fprintf(&buf, "  %q -> %q;\n", "rule: "+e.Rule, nodeID(e))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(e ElementReport) string {
	if e.ID != "" {
		return e.ID
	}
	return fmt.Sprintf("%s #%d", e.Tag, e.Index)
}

func elementLabel(e ElementReport) string {
	parts := []string{nodeID(e)}
	if e.Fill != "" {
		parts = append(parts, "fill: "+e.Fill)
	}
	if e.Stroke != "" {
		parts = append(parts, "stroke: "+e.Stroke)
	}
	parts = append(parts, fmt.Sprintf("area: %.0f", e.Area))
	return strings.Join(parts, "\n")
}

func verdictColor(verdict string) string {
	if verdict == "decorative" {
		return "lightgrey"
	}
	return "palegreen"
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
