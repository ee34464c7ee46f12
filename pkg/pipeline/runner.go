package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/desenhapp/svgprep/pkg/cache"
	"github.com/desenhapp/svgprep/pkg/classify"
	"github.com/desenhapp/svgprep/pkg/errors"
	"github.com/desenhapp/svgprep/pkg/observability"
	"github.com/desenhapp/svgprep/pkg/svgdoc"
	"github.com/desenhapp/svgprep/pkg/transform"
	"github.com/desenhapp/svgprep/pkg/validate"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner as long as no two calls share a single document tree.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Adapt runs the classify → transform → validate pipeline on a parsed
// document, mutating its tree in place. The document is exclusively owned
// by the caller; the runner keeps no reference after returning.
func (r *Runner) Adapt(ctx context.Context, doc *svgdoc.Document, opts Options) (*AdaptResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	result := &AdaptResult{}

	// Stage 1: Classify
	classifyStart := time.Now()
	infos := svgdoc.CollectAll(doc)
	observability.Pipeline().OnAdaptStart(ctx, len(infos))
	c := classify.Classify(infos, opts.ClassifyConfig())
	result.Elements = c.Len()
	result.Colorable = len(c.Colorable)
	result.Decorative = len(c.Decorative)
	result.Timing.Classify = time.Since(classifyStart)

	logger.Info("classified elements",
		"total", result.Elements,
		"colorable", result.Colorable,
		"decorative", result.Decorative,
		"duration", result.Timing.Classify)

	// Stage 2: Transform
	transformStart := time.Now()
	result.Stats = transform.Apply(c, opts.TransformConfig())
	result.Timing.Transform = time.Since(transformStart)
	observability.Pipeline().OnAdaptComplete(ctx, result.Stats.IDsAssigned, result.Timing.Transform, nil)

	logger.Info("transformed tree",
		"ids_assigned", result.Stats.IDsAssigned,
		"pointer_events_added", result.Stats.PointerEventsAdded,
		"duration", result.Timing.Transform)

	// Stage 3: Validate (optional)
	if !opts.SkipValidate {
		validateStart := time.Now()
		observability.Pipeline().OnValidateStart(ctx)
		result.Validation = validate.Validate(doc.SVG)
		result.Timing.Validate = time.Since(validateStart)
		observability.Pipeline().OnValidateComplete(ctx, result.Validation.Valid,
			len(result.Validation.Errors), len(result.Validation.Warnings), result.Timing.Validate)

		logger.Info("validated result",
			"valid", result.Validation.Valid,
			"errors", len(result.Validation.Errors),
			"warnings", len(result.Validation.Warnings),
			"duration", result.Timing.Validate)
	}

	return result, nil
}

// adaptEntry is the cached form of an adapted document.
type adaptEntry struct {
	Markup string      `json:"markup"`
	Result AdaptResult `json:"result"`
}

// AdaptBytes parses raw markup, adapts it, and serializes the adapted
// document. Results are cached by content hash and option set; the bool
// return reports a cache hit.
func (r *Runner) AdaptBytes(ctx context.Context, raw []byte, opts Options) ([]byte, *AdaptResult, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, nil, false, fmt.Errorf("invalid options: %w", err)
	}

	key := r.Keyer.AdaptKey(cache.Hash(raw), opts.AdaptKeyOpts())
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var entry adaptEntry
			if err := json.Unmarshal(data, &entry); err == nil {
				observability.Cache().OnCacheHit(ctx, "adapt")
				res := entry.Result
				return []byte(entry.Markup), &res, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "adapt")
	}

	doc, err := svgdoc.ParseBytes(raw)
	if err != nil {
		return nil, nil, false, errors.Wrap(errors.ErrCodeInvalidSVG, err, "parse document")
	}

	result, err := r.Adapt(ctx, doc, opts)
	if err != nil {
		return nil, nil, false, err
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, nil, false, errors.Wrap(errors.ErrCodeInternal, err, "serialize document")
	}

	if data, err := json.Marshal(adaptEntry{Markup: buf.String(), Result: *result}); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLAdapted); err == nil {
			observability.Cache().OnCacheSet(ctx, "adapt", len(data))
		}
	}

	return buf.Bytes(), result, false, nil
}

// ValidateBytes parses raw markup and validates it against the
// colorable-drawing contract. Results are cached by content hash; the
// bool return reports a cache hit.
func (r *Runner) ValidateBytes(ctx context.Context, raw []byte, opts Options) (*validate.Result, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, fmt.Errorf("invalid options: %w", err)
	}

	key := r.Keyer.ValidationKey(cache.Hash(raw))
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var res validate.Result
			if err := json.Unmarshal(data, &res); err == nil {
				observability.Cache().OnCacheHit(ctx, "validation")
				return &res, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "validation")
	}

	doc, err := svgdoc.ParseBytes(raw)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInvalidSVG, err, "parse document")
	}

	start := time.Now()
	observability.Pipeline().OnValidateStart(ctx)
	res := validate.Validate(doc.SVG)
	observability.Pipeline().OnValidateComplete(ctx, res.Valid,
		len(res.Errors), len(res.Warnings), time.Since(start))

	if data, err := json.Marshal(res); err == nil {
		if err := r.Cache.Set(ctx, key, data, cache.TTLValidation); err == nil {
			observability.Cache().OnCacheSet(ctx, "validation", len(data))
		}
	}

	return res, false, nil
}

// FixBytes parses raw markup, repairs duplicate colorable identifiers, and
// serializes the repaired document. Repair mutates the tree, so its output
// is never cached.
func (r *Runner) FixBytes(ctx context.Context, raw []byte) ([]byte, *validate.RepairResult, error) {
	doc, err := svgdoc.ParseBytes(raw)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidSVG, err, "parse document")
	}

	res := validate.FixDuplicateIDs(doc.SVG)
	observability.Pipeline().OnRepairComplete(ctx, len(res.Changes))

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInternal, err, "serialize document")
	}
	return buf.Bytes(), res, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
