package observability

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/jonathan/citation-formatter/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintRecord(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintRecord(types.CitationRecord{
		AuthorDisplay: "Smith, John",
		AuthorShort:   "Smith",
		Title:         "Testing Without Pages",
		Year:          "2020",
		Style:         types.StyleMLA,
	})

	out := buf.String()
	assert.Contains(t, out, "CITATION RECORD")
	assert.Contains(t, out, "Smith, John")
	assert.Contains(t, out, "Publisher:  (none)")
	assert.Contains(t, out, "Page:       (none)")
	assert.Contains(t, out, "Style:      MLA")
}

func TestPrintCitation(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCitation(types.FormattedCitation{
		Source:       "entries.json",
		InText:       "(Smith)",
		Bibliography: `Smith, John. "Testing Without Pages." 2020.`,
	})

	out := buf.String()
	assert.Contains(t, out, "FORMATTED CITATION")
	assert.Contains(t, out, "Source:  entries.json")
	assert.Contains(t, out, "(Smith)")
	assert.Contains(t, out, `Smith, John. "Testing Without Pages." 2020.`)
}

func TestPrintCitation_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCitation(types.FormattedCitation{
		InText:       "(Smith)",
		Bibliography: `Smith, John. "A Very Long Title That Keeps Going Well Past The Box Width." Test Press, 2020.`,
	})
	assert.Contains(t, buf.String(), "...")
}

func TestPrintReport(t *testing.T) {
	report := types.NewReport(types.StyleMLA)
	for i := 0; i < 7; i++ {
		report.Citations = append(report.Citations, types.FormattedCitation{InText: "(Smith)"})
	}
	report.Citations[0].Violations = []types.Violation{{Type: "page_prefix"}}

	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(report)

	out := buf.String()
	assert.Contains(t, out, "FORMAT RUN")
	assert.Contains(t, out, report.RunID.String())
	assert.Contains(t, out, "Citations:  7")
	assert.Contains(t, out, "Violations: 1")
	assert.Contains(t, out, "... and 2 more citations")
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(nil)
	assert.Empty(t, buf.String())
}

func TestPrintViolations_None(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintViolations(nil)
	assert.Contains(t, buf.String(), "ALL CHECKS PASSED")
}

func TestPrintViolations_Some(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintViolations([]types.Violation{
		{Type: "page_prefix", Severity: "error", Details: "bibliography entry contains a page prefix but the record has no page"},
		{Type: "in_text_shape", Severity: "error", Details: "short"},
	})

	out := buf.String()
	assert.Contains(t, out, "Found 2 violations")
	assert.Contains(t, out, "⚠ page_prefix")
	assert.Contains(t, out, "⚠ in_text_shape")
}

func TestPrintCitation_TruncatesOnRuneBoundary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCitation(types.FormattedCitation{
		InText:       "(김)",
		Bibliography: `김, 민수. "페이지 없는 문헌의 인용 형식에 관한 아주 긴 제목의 연구 보고서." 테스트 출판사, 2020.`,
	})

	out := buf.String()
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "...")
}

func TestPrintViolations_TruncatesOnRuneBoundary(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintViolations([]types.Violation{
		{Type: "in_text_shape", Severity: "error", Details: `in-text citation "(김 12)", expected "(김)" 그리고 더 많은 설명`},
	})

	out := buf.String()
	assert.True(t, utf8.ValidString(out))
	assert.Contains(t, out, "...")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "가나...", truncate("가나다라마바", 5))
	assert.Equal(t, "가나다라마바", truncate("가나다라마바", 6))
}
