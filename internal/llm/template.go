package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/mlaurier/doccheck/internal/types"
)

// TemplateSummarizer is the deterministic fallback: a fixed-form summary
// assembled from the result itself. Identical results produce identical
// summaries.
type TemplateSummarizer struct{}

// Summarize implements Summarizer without any external calls.
func (TemplateSummarizer) Summarize(_ context.Context, result types.AnalysisResult) (string, error) {
	return TemplateSummarizer{}.fallback(result), nil
}

// Close implements Summarizer; nothing to release.
func (TemplateSummarizer) Close() error { return nil }

func (TemplateSummarizer) fallback(result types.AnalysisResult) string {
	var sb strings.Builder

	name := documentName(result.DocumentType)
	switch {
	case len(result.Violations) == 0:
		sb.WriteString(fmt.Sprintf("The %s meets all checked requirements, scoring %.0f out of 100.", name, result.ComplianceScore))
	case result.Compliant():
		sb.WriteString(fmt.Sprintf("The %s scores %.0f out of 100 with %s to address.", name, result.ComplianceScore, countNoun(len(result.Violations), "issue")))
	default:
		sb.WriteString(fmt.Sprintf("The %s does not currently meet Ontario requirements, scoring %.0f out of 100 with %s.", name, result.ComplianceScore, countNoun(len(result.Violations), "issue")))
	}

	if critical := result.CriticalViolations(); len(critical) > 0 {
		sb.WriteString(fmt.Sprintf(" The most serious: %s.", strings.ToLower(strings.TrimSuffix(critical[0].Message, "."))))
	}

	sb.WriteString(fmt.Sprintf(" The risk of the document being challenged is assessed as %s.", result.RiskLevel))
	if len(result.Recommendations) > 0 {
		sb.WriteString(fmt.Sprintf(" First recommended step: %s.", strings.TrimSuffix(result.Recommendations[0], ".")))
	}
	return sb.String()
}

func documentName(dt types.DocumentType) string {
	switch dt {
	case types.DocumentWill:
		return "will"
	case types.DocumentPOAProperty:
		return "power of attorney for property"
	case types.DocumentPOAPersonalCare:
		return "power of attorney for personal care"
	default:
		return "document"
	}
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
