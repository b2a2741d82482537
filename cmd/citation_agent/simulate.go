package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/citation-formatter/internal/observability"
	"github.com/jonathan/citation-formatter/internal/rendering"
	"github.com/jonathan/citation-formatter/internal/types"
	"github.com/jonathan/citation-formatter/internal/validation"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Format a sample MLA citation without a page number and check the result",
	Long:  "Formats a manual MLA entry (by default Smith, John / Testing Without Pages / Test Press / 2020, no page), prints the in-text citation and works-cited entry, and checks that neither carries a page.",
	RunE:  runSimulate,
}

var simulateEntry = sampleEntry()

func init() {
	simulateCmd.Flags().StringVar(&simulateEntry.Author, "author", simulateEntry.Author, "Author display form")
	simulateCmd.Flags().StringVar(&simulateEntry.Title, "title", simulateEntry.Title, "Work title")
	simulateCmd.Flags().StringVar(&simulateEntry.Publisher, "publisher", simulateEntry.Publisher, "Publisher (empty to omit)")
	simulateCmd.Flags().StringVar(&simulateEntry.Year, "year", simulateEntry.Year, "Publication year")
	simulateCmd.Flags().StringVar(&simulateEntry.Page, "page", simulateEntry.Page, "Page reference (empty for none)")

	rootCmd.AddCommand(simulateCmd)
}

// sampleEntry is the manual no-page entry the simulation runs by default
func sampleEntry() types.CitationEntry {
	return types.CitationEntry{
		Mode:      "manual",
		Author:    "Smith, John",
		AuthorRaw: "Smith, John",
		Year:      "2020",
		Title:     "Testing Without Pages",
		Publisher: "Test Press",
		Page:      "",
		Style:     types.StyleMLA,
	}
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	entry := simulateEntry
	// The explicit year mirrors the year flag, as a manual entry would store both.
	secondVal := entry.Year
	entry.SecondVal = &secondVal

	return runSimulateWith(entry, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runSimulateWith(entry types.CitationEntry, out, errOut io.Writer) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid entry: %w", err)
	}

	record := types.NewCitationRecord(entry)
	formatter, err := rendering.ForStyle(record.Style)
	if err != nil {
		return err
	}

	inText, bibliography := rendering.Format(formatter, record)
	violations := validation.CheckCitation(record, inText, bibliography)

	logger.Debug("Simulated citation",
		zap.String("in_text", inText),
		zap.String("bibliography", bibliography),
		zap.Int("violations", len(violations)))

	if verbose {
		printer := observability.NewPrinter(errOut)
		printer.PrintRecord(record)
		printer.PrintViolations(violations)
	}

	fmt.Fprintf(out, "=== %s %s simulation ===\n", record.Style, pageLabel(record))
	fmt.Fprintf(out, "In-text citation:    %s\n", inText)
	fmt.Fprintf(out, "Bibliography entry: %s\n", bibliography)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Checks:")
	fmt.Fprintf(out, "  inText is %s: %t\n", inTextLabel(record), validation.Passed(violations, validation.CheckInTextShape))
	fmt.Fprintf(out, "  bibliography has no pp.: %t\n", validation.Passed(violations, validation.CheckPagePrefix))
	fmt.Fprintf(out, "  publisher segment matches: %t\n", validation.Passed(violations, validation.CheckPublisherSegment))

	if len(violations) > 0 {
		return fmt.Errorf("simulation failed %d check(s)", len(violations))
	}
	return nil
}

func pageLabel(record types.CitationRecord) string {
	if record.HasPage() {
		return "with-page"
	}
	return "no-page"
}

func inTextLabel(record types.CitationRecord) string {
	if record.HasPage() {
		return "(Author Page)"
	}
	return "(Author) only"
}
