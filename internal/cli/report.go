package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/desenhapp/svgprep/pkg/pipeline"
	"github.com/desenhapp/svgprep/pkg/validate"
)

// printValidationSummary prints a compact single-file validation report.
// A nil result (validation skipped) prints nothing.
func printValidationSummary(res *validate.Result) {
	if res == nil {
		return
	}

	if res.Valid {
		printSuccess("Valid: %d colorable areas, %d decorative elements",
			len(res.ColorableAreas), len(res.DecorativeElements))
	} else {
		printError("Invalid: %d error(s)", len(res.Errors))
	}

	for _, e := range res.Errors {
		printDetail("%s %s", iconError, e)
	}
	for _, w := range res.Warnings {
		printWarning("%s", w)
	}
	if len(res.Suggestions) > 0 {
		printNewline()
		printInfo("Sugestões:")
		for _, s := range res.Suggestions {
			printDetail("%s %s", iconArrow, s)
		}
	}
}

// printBatchReport prints the per-file lines and totals of a batch run.
func printBatchReport(r *pipeline.Report) {
	for _, fr := range r.Files {
		switch {
		case fr.Err != "":
			printError("%s: %s", fr.Path, fr.Err)
		case fr.Result.Valid && len(fr.Result.Warnings) == 0:
			printSuccess("%s", fr.Path)
		case fr.Result.Valid:
			printWarning("%s: %d warning(s)", fr.Path, len(fr.Result.Warnings))
		default:
			printError("%s: %d error(s)", fr.Path, len(fr.Result.Errors))
			for _, e := range fr.Result.Errors {
				printDetail("%s", e)
			}
		}
	}

	printNewline()
	printInfo("Run %s: %d files, %d valid, %d invalid, %d failed, %d warnings",
		r.RunID, r.Totals.Files, r.Totals.Valid, r.Totals.Invalid,
		r.Totals.Failed, r.Totals.Warnings)
	if r.Totals.CacheHits > 0 {
		printDetail("%d cache hits", r.Totals.CacheHits)
	}
}

// writeJSON marshals v to stdout with indentation.
func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}
