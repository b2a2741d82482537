// Package validation checks formatted citations against the MLA no-page rules.
package validation

import (
	"fmt"
	"strings"

	"github.com/jonathan/citation-formatter/internal/types"
)

// Check types reported in violations
const (
	CheckInTextShape       = "in_text_shape"
	CheckPagePrefix        = "page_prefix"
	CheckPublisherSegment  = "publisher_segment"
	CheckBibliographyShape = "bibliography_shape"
)

// CheckCitation verifies that inText and bibliography have the shape the
// record implies. An empty result means every check passed.
func CheckCitation(record types.CitationRecord, inText, bibliography string) []types.Violation {
	violations := []types.Violation{}

	if v := checkInText(record, inText); v != nil {
		violations = append(violations, *v)
	}
	if v := checkPagePrefix(record, bibliography); v != nil {
		violations = append(violations, *v)
	}
	if v := checkPublisherSegment(record, bibliography); v != nil {
		violations = append(violations, *v)
	}
	if v := checkBibliographyShape(record, bibliography); v != nil {
		violations = append(violations, *v)
	}

	return violations
}

func checkInText(record types.CitationRecord, inText string) *types.Violation {
	expected := "(" + record.AuthorShort + ")"
	if record.HasPage() {
		expected = "(" + record.AuthorShort + " " + record.Page + ")"
	}
	if inText == expected {
		return nil
	}
	return &types.Violation{
		Type:     CheckInTextShape,
		Severity: "error",
		Details:  fmt.Sprintf("in-text citation %q, expected %q", inText, expected),
		Field:    "page",
	}
}

func checkPagePrefix(record types.CitationRecord, bibliography string) *types.Violation {
	if record.HasPage() || !strings.Contains(bibliography, "pp.") {
		return nil
	}
	// A title or publisher may legitimately contain "pp."
	if strings.Contains(record.Title, "pp.") || strings.Contains(record.Publisher, "pp.") || strings.Contains(record.AuthorDisplay, "pp.") {
		return nil
	}
	return &types.Violation{
		Type:     CheckPagePrefix,
		Severity: "error",
		Details:  "bibliography entry contains a page prefix but the record has no page",
		Field:    "page",
	}
}

func checkPublisherSegment(record types.CitationRecord, bibliography string) *types.Violation {
	if record.Publisher != "" {
		if strings.Contains(bibliography, record.Publisher+", "+record.Year+".") {
			return nil
		}
		return &types.Violation{
			Type:     CheckPublisherSegment,
			Severity: "error",
			Details:  fmt.Sprintf("publisher %q is not followed by the year", record.Publisher),
			Field:    "publisher",
		}
	}

	// Without a publisher the title's closing quote runs straight into the year.
	if strings.HasSuffix(bibliography, `." `+record.Year+".") {
		return nil
	}
	return &types.Violation{
		Type:     CheckPublisherSegment,
		Severity: "error",
		Details:  "bibliography entry has a publisher segment but the record has no publisher",
		Field:    "publisher",
	}
}

func checkBibliographyShape(record types.CitationRecord, bibliography string) *types.Violation {
	prefix := record.AuthorDisplay + `. "` + record.Title + `."`
	suffix := record.Year + "."
	if strings.HasPrefix(bibliography, prefix) && strings.HasSuffix(bibliography, suffix) {
		return nil
	}
	return &types.Violation{
		Type:     CheckBibliographyShape,
		Severity: "error",
		Details:  fmt.Sprintf("bibliography entry %q does not match author, title and year", bibliography),
	}
}

// Passed reports whether a check type is absent from violations
func Passed(violations []types.Violation, check string) bool {
	for _, v := range violations {
		if v.Type == check {
			return false
		}
	}
	return true
}
