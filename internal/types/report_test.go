//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	report := NewReport(StyleMLA)
	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.Equal(t, StyleMLA, report.Style)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Empty(t, report.Citations)
}

func TestReport_ViolationCount(t *testing.T) {
	report := NewReport(StyleMLA)
	report.Citations = append(report.Citations,
		FormattedCitation{Violations: []Violation{{Type: "page_prefix"}}},
		FormattedCitation{},
		FormattedCitation{Violations: []Violation{{Type: "in_text_shape"}, {Type: "publisher_segment"}}},
	)
	assert.Equal(t, 3, report.ViolationCount())
}

func TestReport_JSONFields(t *testing.T) {
	report := NewReport(StyleMLA)
	report.Citations = append(report.Citations, FormattedCitation{
		ID:           uuid.New(),
		InText:       "(Smith)",
		Bibliography: `Smith, John. "Testing Without Pages." Test Press, 2020.`,
	})

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"run_id":`)
	assert.Contains(t, string(jsonBytes), `"style": "MLA"`)
	assert.Contains(t, string(jsonBytes), `"in_text": "(Smith)"`)
	assert.NotContains(t, string(jsonBytes), `"violations"`)
}

func TestViolations_HasErrors(t *testing.T) {
	var nilViolations *Violations
	assert.False(t, nilViolations.HasErrors())

	warnings := &Violations{Violations: []Violation{{Type: "x", Severity: "warning"}}}
	assert.False(t, warnings.HasErrors())

	errs := &Violations{Violations: []Violation{{Type: "x", Severity: "warning"}, {Type: "y", Severity: "error"}}}
	assert.True(t, errs.HasErrors())
}
