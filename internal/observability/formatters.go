// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/marketpulse/internal/orgchart"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// ImportSummary accumulates the outcome of one company import run.
type ImportSummary struct {
	File     string
	Imported int
	Updated  int
	Failures []string
}

// PrintImportSummary outputs a human-readable summary of an import run.
func (p *Printer) PrintImportSummary(summary *ImportSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("File:      %s\n", summary.File))
	sb.WriteString(fmt.Sprintf("Inserted:  %d\n", summary.Imported))
	sb.WriteString(fmt.Sprintf("Updated:   %d\n", summary.Updated))

	if len(summary.Failures) > 0 {
		sb.WriteString("\nFailures:\n")
		count := min(len(summary.Failures), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", summary.Failures[i]))
		}
		if len(summary.Failures) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(summary.Failures)-maxItemsToShow))
		}
	}

	p.printBox("COMPANY IMPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchReport outputs the result of a chart generation batch.
func (p *Printer) PrintBatchReport(report *orgchart.BatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated: %d\n", report.Generated))
	sb.WriteString(fmt.Sprintf("Skipped:   %d\n", report.Skipped))
	if report.Failed > 0 {
		sb.WriteString(fmt.Sprintf("Failed:    %d\n", report.Failed))
	}
	sb.WriteString(fmt.Sprintf("\n%s", report.Message))

	p.printBox("CHART GENERATION", sb.String())
}

// PrintCompanies outputs the companies found in the workbook, truncated to a
// preview.
func (p *Printer) PrintCompanies(companies []string) {
	if len(companies) == 0 {
		p.printBox("WORKBOOK COMPANIES", "No companies found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d companies:\n\n", len(companies)))

	count := min(len(companies), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", companies[i]))
	}
	if len(companies) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(companies)-maxItemsToShow))
	}

	p.printBox("WORKBOOK COMPANIES", strings.TrimSuffix(sb.String(), "\n"))
}
