package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/desenhapp/svgprep/pkg/errors"
	"github.com/desenhapp/svgprep/pkg/pipeline"
)

// fixCommand creates the fix command for repairing identifier collisions.
func (c *CLI) fixCommand() *cobra.Command {
	var (
		output  string
		inPlace bool
	)

	cmd := &cobra.Command{
		Use:   "fix [drawing.svg]",
		Short: "Repair duplicate colorable identifiers",
		Long: `Repair duplicate colorable identifiers.

The fix command keeps the first element carrying each identifier and
renames later decorative duplicates into the decorative-N namespace.
Collisions between two colorable-looking elements are ambiguous and are
left untouched; validate reports them for manual review.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateInputPath(args[0]); err != nil {
				return err
			}
			if inPlace && output != "" {
				return errors.New(errors.ErrCodeInvalidInput, "--in-place and --output are mutually exclusive")
			}
			return c.runFix(cmd.Context(), args[0], output, inPlace)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <input>.fixed.svg)")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "overwrite the input file")

	return cmd
}

func (c *CLI) runFix(ctx context.Context, input, output string, inPlace bool) error {
	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}

	runner := pipeline.NewRunner(nil, nil, c.Logger)
	defer runner.Close()

	fixed, res, err := runner.FixBytes(ctx, raw)
	if err != nil {
		return fmt.Errorf("fix %s: %w", input, err)
	}

	if !res.Fixed {
		printInfo("No repairable identifier collisions in %s", input)
		return nil
	}

	out := output
	switch {
	case inPlace:
		out = input
	case out == "":
		out = fixedPath(input)
	}
	if err := os.WriteFile(out, fixed, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	printSuccess("Repaired %d identifier(s)", len(res.Changes))
	for _, ch := range res.Changes {
		printDetail("%s", ch)
	}
	printFile(out)
	return nil
}

// fixedPath derives the default output path from the input path.
func fixedPath(input string) string {
	ext := len(input) - len(".svg")
	if ext > 0 && input[ext:] == ".svg" {
		return input[:ext] + ".fixed.svg"
	}
	return input + ".fixed"
}
