// Package types provides type definitions for citation records and formatting results.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Style identifies a citation style
type Style string

// StyleMLA is the Modern Language Association style
const StyleMLA Style = "MLA"

// CitationEntry is a raw citation as supplied by a caller (JSON or YAML).
// Fields are used as given; NewCitationRecord trims and resolves them.
type CitationEntry struct {
	Mode        string  `json:"mode,omitempty" yaml:"mode,omitempty" validate:"omitempty,oneof=manual auto"`
	Author      string  `json:"author,omitempty" yaml:"author,omitempty"`
	AuthorRaw   string  `json:"author_raw,omitempty" yaml:"author_raw,omitempty"`
	AuthorShort string  `json:"author_short,omitempty" yaml:"author_short,omitempty"`
	SecondVal   *string `json:"second_val,omitempty" yaml:"second_val,omitempty"` // Explicit year, wins over Year when present
	Year        string  `json:"year,omitempty" yaml:"year,omitempty"`
	Title       string  `json:"title,omitempty" yaml:"title,omitempty"`
	Publisher   string  `json:"publisher,omitempty" yaml:"publisher,omitempty"`
	Page        string  `json:"page,omitempty" yaml:"page,omitempty"`
	Style       Style   `json:"style,omitempty" yaml:"style,omitempty" validate:"omitempty,oneof=MLA"`
}

// Validate validates the CitationEntry using the validator.
// Style is compared after NormalizeStyle, so "mla" passes.
func (e *CitationEntry) Validate() error {
	normalized := *e
	normalized.Style = NormalizeStyle(e.Style)
	validate := validator.New()
	return validate.Struct(&normalized)
}

// NormalizeStyle trims and upper-cases a style tag. Empty stays empty.
func NormalizeStyle(style Style) Style {
	return Style(strings.ToUpper(strings.TrimSpace(string(style))))
}

// CitationRecord is the resolved, immutable input to a citation formatter
type CitationRecord struct {
	AuthorDisplay string `json:"author_display"`
	AuthorShort   string `json:"author_short"`
	Year          string `json:"year"`
	Title         string `json:"title"`
	Publisher     string `json:"publisher"`
	Page          string `json:"page"`
	Style         Style  `json:"style"`
}

// HasPage reports whether the record carries a page reference
func (r CitationRecord) HasPage() bool {
	return r.Page != ""
}

// ResolveYear picks the secondary year when it is present (even if empty),
// otherwise the primary year. The result is trimmed.
func ResolveYear(primary string, secondary *string) string {
	if secondary != nil {
		return strings.TrimSpace(*secondary)
	}
	return strings.TrimSpace(primary)
}

// ShortAuthor derives the in-text surname from a display form:
// "Smith, John" -> "Smith", "John Smith" -> "Smith".
func ShortAuthor(display string) string {
	display = strings.TrimSpace(display)
	if display == "" {
		return ""
	}
	if idx := strings.Index(display, ","); idx >= 0 {
		return strings.TrimSpace(display[:idx])
	}
	fields := strings.Fields(display)
	return fields[len(fields)-1]
}

// NewCitationRecord builds a CitationRecord from a raw entry. It never fails:
// missing values become empty strings.
func NewCitationRecord(entry CitationEntry) CitationRecord {
	display := strings.TrimSpace(entry.Author)
	if display == "" {
		display = strings.TrimSpace(entry.AuthorRaw)
	}

	short := strings.TrimSpace(entry.AuthorShort)
	if short == "" {
		short = ShortAuthor(display)
	}

	style := NormalizeStyle(entry.Style)
	if style == "" {
		style = StyleMLA
	}

	return CitationRecord{
		AuthorDisplay: display,
		AuthorShort:   short,
		Year:          ResolveYear(entry.Year, entry.SecondVal),
		Title:         strings.TrimSpace(entry.Title),
		Publisher:     strings.TrimSpace(entry.Publisher),
		Page:          strings.TrimSpace(entry.Page),
		Style:         style,
	}
}
