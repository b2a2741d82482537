// Package rendering formats citation records and renders bibliography documents.
package rendering

import "strings"

// latexReplacer covers the LaTeX special characters: \ { } $ & % # ^ _ ~
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`{`, `\{`,
	`}`, `\}`,
	`$`, `\$`,
	`&`, `\&`,
	`%`, `\%`,
	`#`, `\#`,
	`^`, `\textasciicircum{}`,
	`_`, `\_`,
	`~`, `\textasciitilde{}`,
)

// markdownReplacer escapes characters that start emphasis, code or links
var markdownReplacer = strings.NewReplacer(
	`\`, `\\`,
	`*`, `\*`,
	`_`, `\_`,
	"`", "\\`",
	`[`, `\[`,
	`]`, `\]`,
)

// EscapeLaTeX escapes special LaTeX characters in text
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}
	return latexReplacer.Replace(text)
}

// EscapeMarkdown escapes Markdown inline syntax in text
func EscapeMarkdown(text string) string {
	if text == "" {
		return ""
	}
	return markdownReplacer.Replace(text)
}

func identity(text string) string { return text }
