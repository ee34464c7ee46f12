// Package pkg provides the core libraries for the svgprep adaptation pipeline.
//
// # Overview
//
// svgprep turns arbitrary SVG drawings into coloring-ready drawings: every
// element is classified as a colorable area or decorative artwork, colorable
// areas receive stable sequential identifiers, and the result is validated
// against the contract the coloring application expects. The pkg directory is
// organized into a handful of focused areas:
//
//  1. [svgdoc] - SVG parsing, traversal, attribute access, and rendering
//  2. [classify] - Element classification (colorable vs decorative)
//  3. [transform] - In-place adaptation of the parsed tree
//  4. [validate] - Contract validation, suggestions, and duplicate-ID repair
//  5. [pipeline] - Orchestration plus content-addressed result caching
//  6. [inspect] - Non-mutating classification reports and diagrams
//
// # Architecture
//
// The typical data flow through svgprep:
//
//	Raw SVG markup
//	         ↓
//	    [svgdoc] package (parse, estimate bounding boxes)
//	         ↓
//	    [classify] package (rank each element)
//	         ↓
//	    [transform] package (IDs, fills, strokes, pointer-events)
//	         ↓
//	    [validate] package (diagnostics + suggestions)
//	         ↓
//	    Adapted SVG + report
//
// # Quick Start
//
// Adapt a drawing end to end:
//
//	import (
//	    "context"
//	    "os"
//	    "github.com/desenhapp/svgprep/pkg/pipeline"
//	)
//
//	raw, _ := os.ReadFile("drawing.svg")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	defer runner.Close()
//
//	adapted, result, _, err := runner.AdaptBytes(context.Background(), raw, pipeline.Options{})
//	if err != nil {
//	    // handle
//	}
//	os.WriteFile("drawing.adapted.svg", adapted, 0o644)
//	fmt.Printf("%d colorable, %d decorative\n", result.Colorable, result.Decorative)
//
// The lower-level packages compose directly when you need more control:
//
//	doc, _ := svgdoc.ParseBytes(raw)
//	c := classify.Classify(svgdoc.CollectAll(doc), classify.DefaultConfig())
//	transform.Apply(c, transform.DefaultConfig())
//	res := validate.Validate(doc.SVG)
//
// # Infrastructure
//
// [cache] - Content-addressed result caching keyed by document hash and
// adaptation options. File, Redis, and null backends.
//
// [errors] - Structured errors with stable codes and user-facing messages.
//
// [observability] - Optional hooks for pipeline and cache events, registered
// at startup by the binary rather than by libraries.
//
// [buildinfo] - Version information injected at build time via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/classify/...     # Specific package
//
// [svgdoc]: https://pkg.go.dev/github.com/desenhapp/svgprep/pkg/svgdoc
// [classify]: https://pkg.go.dev/github.com/desenhapp/svgprep/pkg/classify
// [transform]: https://pkg.go.dev/github.com/desenhapp/svgprep/pkg/transform
// [validate]: https://pkg.go.dev/github.com/desenhapp/svgprep/pkg/validate
// [pipeline]: https://pkg.go.dev/github.com/desenhapp/svgprep/pkg/pipeline
// [inspect]: https://pkg.go.dev/github.com/desenhapp/svgprep/pkg/inspect
// [cache]: https://pkg.go.dev/github.com/desenhapp/svgprep/pkg/cache
// [errors]: https://pkg.go.dev/github.com/desenhapp/svgprep/pkg/errors
// [observability]: https://pkg.go.dev/github.com/desenhapp/svgprep/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/desenhapp/svgprep/pkg/buildinfo
package pkg
