package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/desenhapp/svgprep/pkg/classify"
	"github.com/desenhapp/svgprep/pkg/errors"
	"github.com/desenhapp/svgprep/pkg/inspect"
	"github.com/desenhapp/svgprep/pkg/pipeline"
	"github.com/desenhapp/svgprep/pkg/svgdoc"
	"github.com/desenhapp/svgprep/pkg/transform"
	"github.com/desenhapp/svgprep/pkg/validate"
)

// adaptCommand creates the adapt command for transforming a drawing into
// the colorable format.
func (c *CLI) adaptCommand() *cobra.Command {
	var (
		output         string
		noCache        bool
		refresh        bool
		interactive    bool
		minArea        float64
		minStrokeWidth float64
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "adapt [drawing.svg]",
		Short: "Adapt a drawing into the colorable format",
		Long: `Adapt a drawing into the colorable format.

The adapt command classifies every graphical element as colorable or
decorative, assigns sequential area identifiers, strips fills from
colorable areas, raises stroke widths to a visible floor, and marks
decorative artwork as non-interactive. The adapted tree is validated
before it is written out.

Results are cached locally by content hash for faster repeated runs.

Use --interactive to review and override the classification verdicts
before the transform is applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateInputPath(args[0]); err != nil {
				return err
			}
			cfg, err := c.loadProfile()
			if err != nil {
				return err
			}
			cfg.applyTo(&opts)
			// Flags set explicitly win over the profile.
			if cmd.Flags().Changed("min-area") {
				opts.MinArea = minArea
			}
			if cmd.Flags().Changed("min-stroke-width") {
				opts.MinStrokeWidth = minStrokeWidth
			}
			opts.Refresh = refresh

			if interactive {
				return c.runAdaptInteractive(cmd.Context(), args[0], opts, output)
			}
			return c.runAdapt(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <input>.adapted.svg)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a cached result exists")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "review classification verdicts before transforming")
	cmd.Flags().Float64Var(&minArea, "min-area", 0, "bounding-box area below which shapes are decorative")
	cmd.Flags().Float64Var(&minStrokeWidth, "min-stroke-width", 0, "stroke-width floor for colorable areas")
	cmd.Flags().BoolVar(&opts.SkipValidate, "skip-validate", false, "skip post-transform validation")

	return cmd
}

// runAdapt reads, adapts and writes a single drawing.
func (c *CLI) runAdapt(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	cfg, err := c.loadProfile()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	adapted, result, cacheHit, err := runner.AdaptBytes(ctx, raw, opts)
	if err != nil {
		return fmt.Errorf("adapt %s: %w", input, err)
	}

	out := output
	if out == "" {
		out = adaptedPath(input)
	}
	if err := os.WriteFile(out, adapted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printSuccess("Adapted %s", input)
	printFile(out)
	printAdaptStats(result.Colorable, result.Decorative, cacheHit)
	printValidationSummary(result.Validation)
	if result.Validation != nil && !result.Validation.Valid {
		printNextStep("Repair identifier collisions", fmt.Sprintf("svgprep fix %s", out))
	}
	return nil
}

// adaptedPath derives the default output path from the input path.
func adaptedPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + ".adapted" + ext
}

// runAdaptInteractive lets the user review and override the heuristic
// verdicts before the transform is applied. Interactive results are never
// cached, since the verdicts are not a pure function of the input.
func (c *CLI) runAdaptInteractive(ctx context.Context, input string, opts pipeline.Options, output string) error {
	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	doc, err := svgdoc.ParseBytes(raw)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSVG, err, "parse document")
	}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	report := inspect.Inspect(doc, opts.ClassifyConfig())
	if len(report.Elements) == 0 {
		printInfo("No graphical elements in %s", input)
		return nil
	}

	verdicts, confirmed, err := runClassifyTUI(ctx, report)
	if err != nil {
		return err
	}
	if !confirmed {
		printInfo("Cancelled, nothing written")
		return nil
	}

	// Rebuild the partition from the reviewed verdicts, keeping document
	// order within each group.
	var cl classify.Classification
	for i, info := range svgdoc.CollectAll(doc) {
		if verdicts[i] == classify.Colorable {
			cl.Colorable = append(cl.Colorable, info)
		} else {
			cl.Decorative = append(cl.Decorative, info)
		}
	}

	transform.Apply(cl, opts.TransformConfig())
	res := validate.Validate(doc.SVG)

	adapted, err := doc.Markup()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "serialize document")
	}

	out := output
	if out == "" {
		out = adaptedPath(input)
	}
	if err := os.WriteFile(out, []byte(adapted), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printSuccess("Adapted %s (%d manual overrides)", input, countOverrides(report, verdicts))
	printFile(out)
	printAdaptStats(len(cl.Colorable), len(cl.Decorative), false)
	printValidationSummary(res)
	return nil
}

// countOverrides counts verdicts changed from the heuristic outcome.
func countOverrides(report *inspect.Report, verdicts []classify.Kind) int {
	n := 0
	for i, e := range report.Elements {
		if verdicts[i] != e.Kind {
			n++
		}
	}
	return n
}
