package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/desenhapp/svgprep/pkg/errors"
	"github.com/desenhapp/svgprep/pkg/pipeline"
)

// validateCommand creates the validate command for checking drawings
// against the colorable-drawing contract.
func (c *CLI) validateCommand() *cobra.Command {
	var (
		asJSON  bool
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "validate [drawing.svg | directory]",
		Short: "Validate drawings against the colorable format",
		Long: `Validate drawings against the colorable format.

Given a file, the validate command reports identifier collisions,
decorative elements missing their non-interactivity marker, and drawings
with no colorable areas, along with remediation suggestions.

Given a directory, every .svg file underneath it is validated and a
batch report with per-file outcomes and totals is printed. Validation
results are cached by content hash, so unchanged files are fast on
repeated runs.

The command exits non-zero when any drawing is invalid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateInputPath(args[0]); err != nil {
				return err
			}
			return c.runValidate(cmd.Context(), args[0], asJSON, noCache, refresh)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when cached results exist")

	return cmd
}

func (c *CLI) runValidate(ctx context.Context, path string, asJSON, noCache, refresh bool) error {
	cfg, err := c.loadProfile()
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	runner, err := c.newRunner(ctx, cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{Refresh: refresh, Logger: c.Logger}

	if !info.IsDir() {
		return c.validateFile(ctx, runner, path, opts, asJSON)
	}
	return c.validateDir(ctx, runner, path, opts, asJSON)
}

// validateFile validates a single drawing and prints its report.
func (c *CLI) validateFile(ctx context.Context, runner *pipeline.Runner, path string, opts pipeline.Options, asJSON bool) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	res, cacheHit, err := runner.ValidateBytes(ctx, raw, opts)
	if err != nil {
		return fmt.Errorf("validate %s: %w", path, err)
	}

	if asJSON {
		if err := writeJSON(res); err != nil {
			return err
		}
	} else {
		printValidationSummary(res)
		if cacheHit {
			printDetail("%s", iconCached)
		}
	}

	if !res.Valid {
		return errors.New(errors.ErrCodeInvalidSVG, "drawing is invalid")
	}
	return nil
}

// validateDir validates every .svg under dir and prints a batch report.
func (c *CLI) validateDir(ctx context.Context, runner *pipeline.Runner, dir string, opts pipeline.Options, asJSON bool) error {
	files, err := discoverDrawings(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		printInfo("No .svg files under %s", dir)
		return nil
	}

	sp := newSpinner(ctx, fmt.Sprintf("Validating %d drawings...", len(files)))
	sp.Start()

	prog := newProgress(c.Logger)
	report := pipeline.NewReport()
	for _, f := range files {
		if ctx.Err() != nil {
			sp.Stop()
			return ctx.Err()
		}
		report.Add(c.validateOne(ctx, runner, f, opts))
	}
	report.Finish()
	sp.Stop()
	prog.done(fmt.Sprintf("Validated %d drawings", len(files)))

	if asJSON {
		if err := writeJSON(report); err != nil {
			return err
		}
	} else {
		printBatchReport(report)
	}

	if !report.AllValid() {
		return errors.New(errors.ErrCodeInvalidSVG, "one or more drawings are invalid")
	}
	return nil
}

// validateOne produces the file report for a single batch entry. Read and
// parse failures are recorded in the report instead of aborting the batch.
func (c *CLI) validateOne(ctx context.Context, runner *pipeline.Runner, path string, opts pipeline.Options) pipeline.FileReport {
	raw, err := os.ReadFile(path)
	if err != nil {
		return pipeline.FileReport{Path: path, Err: err.Error()}
	}
	res, cacheHit, err := runner.ValidateBytes(ctx, raw, opts)
	if err != nil {
		return pipeline.FileReport{Path: path, Err: err.Error()}
	}
	return pipeline.FileReport{Path: path, Result: res, CacheHit: cacheHit}
}

// discoverDrawings lists the .svg files under dir, sorted by path.
func discoverDrawings(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".svg") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	return files, nil
}
