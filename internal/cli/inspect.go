package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/desenhapp/svgprep/pkg/classify"
	"github.com/desenhapp/svgprep/pkg/errors"
	"github.com/desenhapp/svgprep/pkg/inspect"
	"github.com/desenhapp/svgprep/pkg/pipeline"
	"github.com/desenhapp/svgprep/pkg/svgdoc"
)

// Inspect output formats.
const (
	inspectFormatText = "text"
	inspectFormatJSON = "json"
	inspectFormatDOT  = "dot"
	inspectFormatSVG  = "svg"
	inspectFormatPNG  = "png"
)

// inspectCommand creates the inspect command for explaining classification
// verdicts.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "inspect [drawing.svg]",
		Short: "Explain how a drawing would be classified",
		Long: `Explain how a drawing would be classified.

The inspect command runs the classifier without transforming anything
and reports, for every graphical element, the verdict and the heuristic
that produced it.

Formats: text (default), json, dot (Graphviz source), svg or png
(rendered verdict diagram via Graphviz).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateInputPath(args[0]); err != nil {
				return err
			}
			return c.runInspect(args[0], format, output)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", inspectFormatText, "output format: text, json, dot, svg, png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (svg/png formats; default <input>.classification.<ext>)")

	return cmd
}

func (c *CLI) runInspect(input, format, output string) error {
	cfg, err := c.loadProfile()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("read %s: %w", input, err)
	}
	doc, err := svgdoc.ParseBytes(raw)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidSVG, err, "parse document")
	}

	opts := pipeline.Options{}
	cfg.applyTo(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	report := inspect.Inspect(doc, opts.ClassifyConfig())

	switch format {
	case inspectFormatText:
		printInspectReport(report)
		return nil
	case inspectFormatJSON:
		return writeJSON(report)
	case inspectFormatDOT:
		fmt.Print(inspect.ToDOT(report))
		return nil
	case inspectFormatSVG, inspectFormatPNG:
		return writeInspectDiagram(report, format, input, output)
	default:
		return errors.New(errors.ErrCodeInvalidFormat,
			"unknown format %q (want text, json, dot, svg, png)", format)
	}
}

// printInspectReport prints the verdict table to stdout.
func printInspectReport(r *inspect.Report) {
	fmt.Println(StyleTitle.Render("Classification"))
	for _, e := range r.Elements {
		name := e.Tag
		if e.ID != "" {
			name = e.ID
		}
		verdict := StyleSuccess.Render(e.Verdict)
		if e.Verdict == classify.Decorative.String() {
			verdict = StyleDim.Render(e.Verdict)
		}
		fmt.Printf("  %-24s %-12s %s\n", StyleValue.Render(name), verdict,
			StyleDim.Render("rule: "+e.Rule))
	}
	printNewline()
	printInfo("%d colorable, %d decorative", r.Colorable, r.Decorative)
}

// writeInspectDiagram renders the verdict diagram with Graphviz.
func writeInspectDiagram(r *inspect.Report, format, input, output string) error {
	dot := inspect.ToDOT(r)

	var (
		data []byte
		err  error
	)
	if format == inspectFormatPNG {
		data, err = inspect.RenderPNG(dot)
	} else {
		data, err = inspect.RenderSVG(dot)
	}
	if err != nil {
		return fmt.Errorf("render diagram: %w", err)
	}

	if output == "" {
		ext := strings.TrimSuffix(input, ".svg")
		output = ext + ".classification." + format
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}
	printSuccess("Rendered classification diagram")
	printFile(output)
	return nil
}
