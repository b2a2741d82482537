package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/citation-formatter/internal/ingestion"
	"github.com/jonathan/citation-formatter/internal/observability"
	"github.com/jonathan/citation-formatter/internal/rendering"
	"github.com/jonathan/citation-formatter/internal/types"
	"github.com/jonathan/citation-formatter/internal/validation"
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Format citation entries into a works-cited document",
	Long:  "Loads citation entries from JSON or YAML files, formats each as an MLA in-text citation and works-cited entry, and writes a text, LaTeX, Markdown or JSON document.",
	RunE:  runFormat,
}

var (
	formatInputs   []string
	formatOutput   string
	formatFormat   string
	formatTemplate string
	formatStyle    string
	formatCheck    bool
)

// formatOptions is the fully resolved input to a format run
type formatOptions struct {
	Inputs       []string
	Output       string
	OutputFormat rendering.OutputFormat
	Template     string
	Style        types.Style
	Check        bool
}

func init() {
	formatCmd.Flags().StringSliceVarP(&formatInputs, "in", "i", nil, "Citation entry files (JSON or YAML, repeatable)")
	formatCmd.Flags().StringVarP(&formatOutput, "out", "o", "", "Path to output file (default stdout)")
	formatCmd.Flags().StringVarP(&formatFormat, "format", "f", "", "Output format: text, latex, markdown or json")
	formatCmd.Flags().StringVarP(&formatTemplate, "template", "t", "", "Path to a bibliography template")
	formatCmd.Flags().StringVarP(&formatStyle, "style", "s", "", "Citation style (MLA)")
	formatCmd.Flags().BoolVar(&formatCheck, "check", false, "Check each citation and fail on violations")

	_ = formatCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, _ []string) error {
	opts, err := resolveFormatOptions(cmd)
	if err != nil {
		return err
	}
	return runFormatWith(cmd.Context(), opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// resolveFormatOptions applies flags over the resolved settings; flags win when set
func resolveFormatOptions(cmd *cobra.Command) (formatOptions, error) {
	opts := formatOptions{
		Inputs:   formatInputs,
		Output:   settings.Output,
		Template: settings.Template,
		Style:    types.Style(settings.Style),
		Check:    settings.Check,
	}
	outputFormat := settings.OutputFormat

	flags := cmd.Flags()
	if flags.Changed("out") {
		opts.Output = formatOutput
	}
	if flags.Changed("format") {
		outputFormat = formatFormat
	}
	if flags.Changed("template") {
		opts.Template = formatTemplate
	}
	if flags.Changed("style") {
		opts.Style = types.Style(formatStyle)
	}
	if flags.Changed("check") {
		opts.Check = formatCheck
	}

	parsed, err := rendering.ParseOutputFormat(outputFormat)
	if err != nil {
		return formatOptions{}, err
	}
	opts.OutputFormat = parsed
	return opts, nil
}

func runFormatWith(ctx context.Context, opts formatOptions, out, errOut io.Writer) error {
	if len(opts.Inputs) == 0 {
		return fmt.Errorf("at least one --in file is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	formatter, err := rendering.ForStyle(opts.Style)
	if err != nil {
		return err
	}

	entries, err := ingestion.LoadAll(ctx, opts.Inputs)
	if err != nil {
		return err
	}
	logger.Debug("Loaded citation entries",
		zap.Int("files", len(opts.Inputs)),
		zap.Int("entries", len(entries)))

	report := buildReport(formatter, entries, opts.Check)

	if verbose {
		printer := observability.NewPrinter(errOut)
		for _, c := range report.Citations {
			printer.PrintCitation(c)
		}
		printer.PrintReport(report)
	}

	document, err := renderReport(report, opts)
	if err != nil {
		return err
	}

	if err := writeOutput(document, opts.Output, out); err != nil {
		return err
	}

	logger.Info("Formatted citations",
		zap.String("run_id", report.RunID.String()),
		zap.Int("citations", len(report.Citations)),
		zap.Int("violations", report.ViolationCount()))

	if opts.Check && report.ViolationCount() > 0 {
		return fmt.Errorf("%d citation check(s) failed", report.ViolationCount())
	}
	return nil
}

// buildReport formats every entry in input order
func buildReport(formatter rendering.Formatter, entries []ingestion.SourcedEntry, check bool) *types.Report {
	report := types.NewReport(formatter.Style())

	for _, sourced := range entries {
		record := types.NewCitationRecord(sourced.Entry)
		inText, bibliography := rendering.Format(formatter, record)

		citation := types.FormattedCitation{
			ID:           uuid.New(),
			Source:       sourced.Source,
			Record:       record,
			InText:       inText,
			Bibliography: bibliography,
		}
		if check {
			citation.Violations = validation.CheckCitation(record, inText, bibliography)
		}
		if record.AuthorShort == "" {
			logger.Warn("Citation has no author; in-text form is degenerate",
				zap.String("source", sourced.Source),
				zap.String("title", record.Title))
		}

		report.Citations = append(report.Citations, citation)
	}

	return report
}

func renderReport(report *types.Report, opts formatOptions) (string, error) {
	if opts.OutputFormat == rendering.FormatJSON {
		jsonBytes, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal report: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	}
	return rendering.RenderDocument(report.Citations, report.Style, opts.OutputFormat, opts.Template)
}

func writeOutput(content, path string, out io.Writer) error {
	if path == "" {
		_, err := io.WriteString(out, content)
		return err
	}

	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(out, "Output: %s\n", path)
	return nil
}
