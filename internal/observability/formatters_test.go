package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/marketpulse/internal/orgchart"
)

func TestPrintImportSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintImportSummary(&ImportSummary{
		File:     "companies.json",
		Imported: 3,
		Updated:  1,
		Failures: []string{"Globex: missing name"},
	})

	out := buf.String()
	assert.Contains(t, out, "COMPANY IMPORT")
	assert.Contains(t, out, "Inserted:  3")
	assert.Contains(t, out, "Updated:   1")
	assert.Contains(t, out, "Globex: missing name")
}

func TestPrintImportSummary_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintImportSummary(nil)
	assert.Empty(t, buf.String())
}

func TestPrintImportSummary_TruncatesFailureList(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	summary := &ImportSummary{File: "companies.json"}
	for i := 0; i < 8; i++ {
		summary.Failures = append(summary.Failures, "bad document")
	}
	p.PrintImportSummary(summary)

	assert.Contains(t, buf.String(), "... and 3 more")
}

func TestPrintBatchReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintBatchReport(&orgchart.BatchReport{
		Generated: 2,
		Skipped:   1,
		Message:   "2 new charts generated, 1 skipped (already existed)",
	})

	out := buf.String()
	assert.Contains(t, out, "CHART GENERATION")
	assert.Contains(t, out, "Generated: 2")
	assert.NotContains(t, out, "Failed:")
}

func TestPrintCompanies(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCompanies([]string{"Acme", "Globex"})

	out := buf.String()
	assert.Contains(t, out, "Found 2 companies")
	assert.Contains(t, out, "Acme")
	assert.Equal(t, 2, strings.Count(out, "•"))
}

func TestPrintCompanies_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintCompanies(nil)
	assert.Contains(t, buf.String(), "No companies found")
}
