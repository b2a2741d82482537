// Package rendering formats citation records and renders bibliography documents.
package rendering

import "github.com/jonathan/citation-formatter/internal/types"

// Formatter produces both citation forms for a single style.
// Implementations never fail; missing fields degrade to empty strings.
type Formatter interface {
	Style() types.Style
	InText(record types.CitationRecord) string
	Bibliography(record types.CitationRecord) string
}

var formatters = map[types.Style]Formatter{
	types.StyleMLA: mlaFormatter{},
}

// ForStyle returns the formatter for a style. An empty style selects MLA.
func ForStyle(style types.Style) (Formatter, error) {
	key := types.NormalizeStyle(style)
	if key == "" {
		key = types.StyleMLA
	}
	f, ok := formatters[key]
	if !ok {
		return nil, &UnsupportedStyleError{Style: string(style)}
	}
	return f, nil
}

// Format renders a record in both forms with the given formatter
func Format(f Formatter, record types.CitationRecord) (inText, bibliography string) {
	return f.InText(record), f.Bibliography(record)
}
