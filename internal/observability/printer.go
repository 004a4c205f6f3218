// Package observability provides formatted output utilities for verbose
// CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mlaurier/doccheck/internal/types"
)

const (
	// boxWidth is the width for formatted output boxes
	boxWidth = 64
	// maxItemsToShow bounds list output in verbose mode
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of an analysis result.
func (p *Printer) PrintAnalysis(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Document:   %s\n", result.DocumentType))
	sb.WriteString(fmt.Sprintf("Score:      %.0f/100 (%s)\n", result.ComplianceScore, result.ComplianceStatus()))
	sb.WriteString(fmt.Sprintf("Risk:       %s (%.2f)\n", result.RiskLevel, result.RiskScore))
	sb.WriteString(fmt.Sprintf("Confidence: %.2f", result.Confidence))
	p.printBox("Analysis", sb.String())

	if len(result.Violations) > 0 {
		sb.Reset()
		for i, v := range result.Violations {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("... and %d more", len(result.Violations)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("[%s] %s: %s\n", v.Severity, v.Code, v.Message))
		}
		p.printBox(fmt.Sprintf("Violations (%d)", len(result.Violations)), strings.TrimRight(sb.String(), "\n"))
	}

	if len(result.Recommendations) > 0 {
		sb.Reset()
		for i, rec := range result.Recommendations {
			if i >= maxItemsToShow {
				sb.WriteString(fmt.Sprintf("... and %d more", len(result.Recommendations)-maxItemsToShow))
				break
			}
			sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, rec))
		}
		p.printBox("Recommendations", strings.TrimRight(sb.String(), "\n"))
	}

	if len(result.CaseReferences) > 0 {
		sb.Reset()
		for _, ref := range result.CaseReferences {
			sb.WriteString(fmt.Sprintf("%s, %s\n", ref.CaseName, ref.Citation))
		}
		p.printBox("Relevant precedents", strings.TrimRight(sb.String(), "\n"))
	}
}
