// Package rendering formats citation records and renders bibliography documents.
package rendering

import (
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/jonathan/citation-formatter/internal/types"
)

// OutputFormat names a document output format
type OutputFormat string

// Supported output formats. JSON is produced by callers directly from a Report.
const (
	FormatText     OutputFormat = "text"
	FormatLaTeX    OutputFormat = "latex"
	FormatMarkdown OutputFormat = "markdown"
	FormatJSON     OutputFormat = "json"
)

// ParseOutputFormat validates a format name; empty means text
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatText:
		return FormatText, nil
	case FormatLaTeX:
		return FormatLaTeX, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (expected text, latex, markdown or json)", name)
	}
}

const textTemplate = `Works Cited
{{range .Entries}}
{{escape .Bibliography}}{{end}}
`

const latexTemplate = `\section*{Works Cited}
\begin{itemize}
{{- range .Entries}}
  \item {{escape .Bibliography}}
{{- end}}
\end{itemize}
`

const markdownTemplate = `## Works Cited
{{range .Entries}}
- {{escape .Bibliography}}{{end}}
`

var defaultTemplates = map[OutputFormat]string{
	FormatText:     textTemplate,
	FormatLaTeX:    latexTemplate,
	FormatMarkdown: markdownTemplate,
}

// DocumentData is the data passed to a bibliography template
type DocumentData struct {
	Title   string
	Style   types.Style
	Entries []DocumentEntry
}

// DocumentEntry is one citation inside a bibliography document.
// Values are unescaped; templates call escape themselves.
type DocumentEntry struct {
	InText       string
	Bibliography string
}

// RenderDocument renders formatted citations as a bibliography document.
// Entries keep the order they were given in. When templatePath is empty the
// built-in template for the format is used.
func RenderDocument(citations []types.FormattedCitation, style types.Style, format OutputFormat, templatePath string) (string, error) {
	escape, ok := escaperFor(format)
	if !ok {
		return "", &RenderError{
			Message: fmt.Sprintf("output format %q cannot be rendered from a template", format),
		}
	}

	var (
		tmpl *template.Template
		err  error
	)
	if templatePath != "" {
		tmpl, err = parseTemplate(templatePath, escape)
	} else {
		tmpl, err = parseTemplateString(string(format), defaultTemplates[format], escape)
	}
	if err != nil {
		return "", err
	}

	data := buildDocumentData(citations, style)

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template",
			Cause:   err,
		}
	}

	return result.String(), nil
}

func escaperFor(format OutputFormat) (func(string) string, bool) {
	switch format {
	case FormatText:
		return identity, true
	case FormatLaTeX:
		return EscapeLaTeX, true
	case FormatMarkdown:
		return EscapeMarkdown, true
	default:
		return nil, false
	}
}

// parseTemplate reads and parses a bibliography template file
func parseTemplate(templatePath string, escape func(string) string) (*template.Template, error) {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &TemplateError{
				Message: fmt.Sprintf("template file not found: %s", templatePath),
				Cause:   err,
			}
		}
		return nil, &TemplateError{
			Message: fmt.Sprintf("failed to read template file: %s", templatePath),
			Cause:   err,
		}
	}

	return parseTemplateString("bibliography", string(content), escape)
}

func parseTemplateString(name, content string, escape func(string) string) (*template.Template, error) {
	tmpl, err := template.New(name).Funcs(template.FuncMap{
		"escape": escape,
	}).Parse(content)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse template",
			Cause:   err,
		}
	}
	return tmpl, nil
}

func buildDocumentData(citations []types.FormattedCitation, style types.Style) *DocumentData {
	entries := make([]DocumentEntry, 0, len(citations))
	for _, c := range citations {
		entries = append(entries, DocumentEntry{
			InText:       c.InText,
			Bibliography: c.Bibliography,
		})
	}

	return &DocumentData{
		Title:   "Works Cited",
		Style:   style,
		Entries: entries,
	}
}
