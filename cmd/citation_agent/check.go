package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/citation-formatter/internal/ingestion"
	"github.com/jonathan/citation-formatter/internal/observability"
	"github.com/jonathan/citation-formatter/internal/rendering"
	"github.com/jonathan/citation-formatter/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check formatted citations against the MLA no-page rules",
	Long:  "Formats citation entries and reports every in-text or works-cited string whose shape does not match its record (stray page, pp. prefix, publisher segment).",
	RunE:  runCheck,
}

var checkInputs []string

func init() {
	checkCmd.Flags().StringSliceVarP(&checkInputs, "in", "i", nil, "Citation entry files (JSON or YAML, repeatable)")
	_ = checkCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	return runCheckWith(cmd.Context(), checkInputs, types.Style(settings.Style), cmd.OutOrStdout())
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runCheckWith(ctx context.Context, inputs []string, style types.Style, out io.Writer) error {
	if len(inputs) == 0 {
		return fmt.Errorf("at least one --in file is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	formatter, err := rendering.ForStyle(style)
	if err != nil {
		return err
	}

	entries, err := ingestion.LoadAll(ctx, inputs)
	if err != nil {
		return err
	}

	report := buildReport(formatter, entries, true)
	printer := observability.NewPrinter(out)

	for _, c := range report.Citations {
		if len(c.Violations) == 0 {
			fmt.Fprintf(out, "ok    %s\n", c.InText)
			continue
		}
		fmt.Fprintf(out, "FAIL  %s\n", c.InText)
		printer.PrintViolations(c.Violations)
	}

	fmt.Fprintf(out, "%d citation(s), %d violation(s)\n", len(report.Citations), report.ViolationCount())

	if report.ViolationCount() > 0 {
		return fmt.Errorf("%d citation check(s) failed", report.ViolationCount())
	}
	return nil
}
