// Package ingestion loads citation entries from JSON and YAML files.
package ingestion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/citation-formatter/internal/schemas"
	"github.com/jonathan/citation-formatter/internal/types"
)

// SourcedEntry is an entry together with the file it came from
type SourcedEntry struct {
	Source string
	Entry  types.CitationEntry
}

// LoadEntries reads one file holding a single entry or a list of entries.
// The format is chosen by extension: .yaml/.yml is YAML, anything else JSON.
func LoadEntries(path string) ([]types.CitationEntry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Message: "failed to read file", Cause: err}
	}
	return ParseEntries(content, formatFromPath(path), path)
}

// ParseEntries decodes entry content. format is "json" or "yaml"; source is
// only used in error messages.
func ParseEntries(content []byte, format, source string) ([]types.CitationEntry, error) {
	// 1. Decode into a generic document
	doc, err := decodeDocument(content, format)
	if err != nil {
		return nil, &ParseError{Path: source, Message: fmt.Sprintf("invalid %s", strings.ToUpper(format)), Cause: err}
	}

	// 2. Scalars become strings, the way the fields are read as text anyway
	doc = coerceScalars(doc)

	normalized, err := json.Marshal(doc)
	if err != nil {
		return nil, &ParseError{Path: source, Message: "failed to normalize document", Cause: err}
	}

	// 3. Schema check
	if err := schemas.ValidateCitationEntry(normalized); err != nil {
		return nil, &ParseError{Path: source, Message: "entry does not match schema", Cause: err}
	}

	// 4. Decode into typed entries
	var entries []types.CitationEntry
	if bytes.HasPrefix(bytes.TrimSpace(normalized), []byte("[")) {
		if err := json.Unmarshal(normalized, &entries); err != nil {
			return nil, &ParseError{Path: source, Message: "failed to decode entries", Cause: err}
		}
	} else {
		var entry types.CitationEntry
		if err := json.Unmarshal(normalized, &entry); err != nil {
			return nil, &ParseError{Path: source, Message: "failed to decode entry", Cause: err}
		}
		entries = []types.CitationEntry{entry}
	}

	// 5. Struct rules
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return nil, &ParseError{Path: source, Message: fmt.Sprintf("entry %d is invalid", i+1), Cause: err}
		}
	}

	return entries, nil
}

// LoadAll loads every file concurrently. Entries come back in file order,
// then in the order they appear within each file.
func LoadAll(ctx context.Context, paths []string) ([]SourcedEntry, error) {
	results := make([][]types.CitationEntry, len(paths))

	g, gCtx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			entries, err := LoadEntries(path)
			if err != nil {
				return err
			}
			results[i] = entries
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []SourcedEntry
	for i, entries := range results {
		for _, entry := range entries {
			all = append(all, SourcedEntry{Source: paths[i], Entry: entry})
		}
	}
	return all, nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "json"
	}
}

func decodeDocument(content []byte, format string) (any, error) {
	var doc any
	switch format {
	case "yaml":
		var node yaml.Node
		if err := yaml.Unmarshal(content, &node); err != nil {
			return nil, err
		}
		doc = yamlValue(&node)
	default:
		dec := json.NewDecoder(bytes.NewReader(content))
		dec.UseNumber()
		if err := dec.Decode(&doc); err != nil {
			return nil, err
		}
	}
	if doc == nil {
		return nil, fmt.Errorf("document is empty")
	}
	return doc, nil
}

// yamlValue converts a YAML node into generic values. Scalars keep their
// source text, so "2020.0" stays "2020.0" as it does with JSON numbers.
func yamlValue(node *yaml.Node) any {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil
		}
		return yamlValue(node.Content[0])
	case yaml.MappingNode:
		m := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			m[node.Content[i].Value] = yamlValue(node.Content[i+1])
		}
		return m
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			items = append(items, yamlValue(child))
		}
		return items
	case yaml.AliasNode:
		return yamlValue(node.Alias)
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		return node.Value
	default:
		return nil
	}
}

// coerceScalars converts numbers and booleans inside entry objects to strings.
// Nulls are kept so an explicit null year stays distinguishable from a missing one.
func coerceScalars(doc any) any {
	switch v := doc.(type) {
	case []any:
		for i := range v {
			v[i] = coerceScalars(v[i])
		}
		return v
	case map[string]any:
		for key, value := range v {
			switch value.(type) {
			case nil, string, map[string]any, []any:
			default:
				v[key] = fmt.Sprint(value)
			}
		}
		return v
	default:
		return doc
	}
}
