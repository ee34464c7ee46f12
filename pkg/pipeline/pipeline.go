// Package pipeline provides the core adaptation pipeline for svgprep.
//
// This package implements the complete classify → transform → validate
// pass that can be used by CLI and API components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Classify: partition graphical elements into colorable and decorative
//  2. Transform: rewrite the tree into the colorable-drawing contract
//  3. Validate: re-inspect the result and report structural defects
//
// Each stage can be run independently or as part of the complete pipeline.
// Validation of arbitrary documents (fresh or legacy) and duplicate-ID
// repair are available without running the transform.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	adapted, result, err := runner.AdaptBytes(ctx, raw, pipeline.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Validate an existing document with caching:
//
//	res, hit, err := runner.ValidateBytes(ctx, raw, pipeline.Options{})
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/desenhapp/svgprep/pkg/cache"
	"github.com/desenhapp/svgprep/pkg/classify"
	"github.com/desenhapp/svgprep/pkg/errors"
	"github.com/desenhapp/svgprep/pkg/transform"
	"github.com/desenhapp/svgprep/pkg/validate"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the adaptation pipeline.
// The zero value is valid: ValidateAndSetDefaults fills in the
// colorable-drawing contract defaults.
type Options struct {
	// Classification options
	MinArea float64  `json:"min_area,omitempty"`
	Palette []string `json:"palette,omitempty"`

	// Transform options
	MinStrokeWidth float64 `json:"min_stroke_width,omitempty"`

	// SkipValidate disables the post-transform validation stage.
	SkipValidate bool `json:"skip_validate,omitempty"`

	// Refresh bypasses the cache for reads (results are still stored).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks option sanity and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.MinArea < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "min_area cannot be negative")
	}
	if o.MinStrokeWidth < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "min_stroke_width cannot be negative")
	}

	if o.MinArea == 0 {
		o.MinArea = classify.DefaultMinArea
	}
	if len(o.Palette) == 0 {
		o.Palette = classify.DefaultPalette
	}
	if o.MinStrokeWidth == 0 {
		o.MinStrokeWidth = transform.DefaultMinStrokeWidth
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// ClassifyConfig returns the classifier configuration for these options.
func (o *Options) ClassifyConfig() classify.Config {
	return classify.Config{MinArea: o.MinArea, Palette: o.Palette}
}

// TransformConfig returns the transform configuration for these options.
func (o *Options) TransformConfig() transform.Config {
	return transform.Config{MinStrokeWidth: o.MinStrokeWidth}
}

// AdaptKeyOpts returns the cache key options for adapted documents.
func (o *Options) AdaptKeyOpts() cache.AdaptKeyOpts {
	return cache.AdaptKeyOpts{
		MinArea:        o.MinArea,
		MinStrokeWidth: o.MinStrokeWidth,
		Palette:        o.Palette,
	}
}

// =============================================================================
// Results
// =============================================================================

// AdaptResult contains the outputs of one adaptation run.
type AdaptResult struct {
	// Elements is the number of graphical elements considered.
	Elements int `json:"elements"`

	// Colorable and Decorative are the partition sizes.
	Colorable  int `json:"colorable"`
	Decorative int `json:"decorative"`

	// Stats are the transform engine counters.
	Stats transform.Stats `json:"stats"`

	// Validation is the post-transform report, nil when SkipValidate.
	Validation *validate.Result `json:"validation,omitempty"`

	// Timing contains per-stage durations.
	Timing Timing `json:"timing"`
}

// Timing contains pipeline execution durations.
type Timing struct {
	Classify  time.Duration `json:"classify"`
	Transform time.Duration `json:"transform"`
	Validate  time.Duration `json:"validate"`
}
