// Package types provides type definitions for citation records and formatting results.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// FormattedCitation is one record rendered in both citation forms
type FormattedCitation struct {
	ID           uuid.UUID      `json:"id"`
	Source       string         `json:"source,omitempty"` // File the entry was loaded from
	Record       CitationRecord `json:"record"`
	InText       string         `json:"in_text"`
	Bibliography string         `json:"bibliography"`
	Violations   []Violation    `json:"violations,omitempty"`
}

// Report is the output of a single format run
type Report struct {
	RunID       uuid.UUID           `json:"run_id"`
	Style       Style               `json:"style"`
	GeneratedAt time.Time           `json:"generated_at"`
	Citations   []FormattedCitation `json:"citations"`
}

// NewReport creates an empty report with a fresh run ID
func NewReport(style Style) *Report {
	return &Report{
		RunID:       uuid.New(),
		Style:       style,
		GeneratedAt: time.Now().UTC(),
		Citations:   []FormattedCitation{},
	}
}

// ViolationCount returns the total number of violations across all citations
func (r *Report) ViolationCount() int {
	total := 0
	for _, c := range r.Citations {
		total += len(c.Violations)
	}
	return total
}
