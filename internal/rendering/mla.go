// Package rendering formats citation records and renders bibliography documents.
package rendering

import (
	"strings"

	"github.com/jonathan/citation-formatter/internal/types"
)

// FormatInText returns the MLA parenthetical citation: "(Author Page)", or
// "(Author)" when the record has no page. An empty short author is not
// corrected and yields degenerate output such as "()".
func FormatInText(record types.CitationRecord) string {
	if record.HasPage() {
		return "(" + record.AuthorShort + " " + record.Page + ")"
	}
	return "(" + record.AuthorShort + ")"
}

// FormatBibliographyEntry returns the MLA works-cited entry:
//
//	Author. "Title." Publisher, Year.
//
// The publisher segment is omitted when empty. No page segment is ever written.
func FormatBibliographyEntry(record types.CitationRecord) string {
	var sb strings.Builder
	sb.Grow(len(record.AuthorDisplay) + len(record.Title) + len(record.Publisher) + len(record.Year) + 10)

	sb.WriteString(record.AuthorDisplay)
	sb.WriteString(`. "`)
	sb.WriteString(record.Title)
	sb.WriteString(`." `)
	if record.Publisher != "" {
		sb.WriteString(record.Publisher)
		sb.WriteString(", ")
	}
	sb.WriteString(record.Year)
	sb.WriteString(".")

	return sb.String()
}

type mlaFormatter struct{}

func (mlaFormatter) Style() types.Style { return types.StyleMLA }

func (mlaFormatter) InText(record types.CitationRecord) string {
	return FormatInText(record)
}

func (mlaFormatter) Bibliography(record types.CitationRecord) string {
	return FormatBibliographyEntry(record)
}
