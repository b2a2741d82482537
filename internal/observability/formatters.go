// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/citation-formatter/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs the resolved fields of a citation record.
func (p *Printer) PrintRecord(record types.CitationRecord) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Author:     %s\n", orNone(record.AuthorDisplay)))
	sb.WriteString(fmt.Sprintf("Short:      %s\n", orNone(record.AuthorShort)))
	sb.WriteString(fmt.Sprintf("Title:      %s\n", orNone(record.Title)))
	sb.WriteString(fmt.Sprintf("Publisher:  %s\n", orNone(record.Publisher)))
	sb.WriteString(fmt.Sprintf("Year:       %s\n", orNone(record.Year)))
	sb.WriteString(fmt.Sprintf("Page:       %s\n", orNone(record.Page)))
	sb.WriteString(fmt.Sprintf("Style:      %s", record.Style))

	p.printBox("CITATION RECORD", sb.String())
}

// PrintCitation outputs both citation forms for one record.
func (p *Printer) PrintCitation(citation types.FormattedCitation) {
	var sb strings.Builder
	if citation.Source != "" {
		sb.WriteString(fmt.Sprintf("Source:  %s\n\n", citation.Source))
	}
	sb.WriteString("In-text:\n")
	sb.WriteString(fmt.Sprintf("  %s\n", citation.InText))
	sb.WriteString("Bibliography:\n")
	sb.WriteString(fmt.Sprintf("  %s", citation.Bibliography))

	p.printBox("FORMATTED CITATION", sb.String())
}

// PrintReport outputs a summary of a format run.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:        %s\n", report.RunID))
	sb.WriteString(fmt.Sprintf("Style:      %s\n", report.Style))
	sb.WriteString(fmt.Sprintf("Citations:  %d\n", len(report.Citations)))
	sb.WriteString(fmt.Sprintf("Violations: %d", report.ViolationCount()))

	if len(report.Citations) > 0 {
		sb.WriteString("\n\n")
		count := min(len(report.Citations), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("• %s", report.Citations[i].InText))
			if i < count-1 {
				sb.WriteString("\n")
			}
		}
		if len(report.Citations) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("\n... and %d more citations", len(report.Citations)-maxItemsToShow))
		}
	}

	p.printBox("FORMAT RUN", sb.String())
}

// PrintViolations outputs any failed citation checks.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintViolations(violations []types.Violation) {
	if len(violations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ ALL CHECKS PASSED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d violations:\n\n", len(violations)))

	for i, v := range violations {
		details := truncate(v.Details, 45)
		sb.WriteString(fmt.Sprintf("⚠ %s\n", v.Type))
		sb.WriteString(fmt.Sprintf("  %s", details))
		if i < len(violations)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("CITATION CHECKS", sb.String())
}

// truncate shortens s to at most limit runes, ending in "..." when cut
func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return string(runes[:limit-3]) + "..."
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
