// Package risk aggregates rule violations and free-text keyword signals
// into a bounded risk score and a discrete risk level. The scorer is a pure
// function of its inputs and the static keyword tables.
package risk

import (
	"fmt"
	"strings"

	"github.com/mlaurier/doccheck/internal/catalog"
	"github.com/mlaurier/doccheck/internal/types"
)

// Severity weights on the 0-1 risk scale.
const (
	weightCritical = 0.8
	weightMajor    = 0.5
	weightMinor    = 0.2
)

const (
	// capacityMultiplier boosts capacity-related violations on wills, where
	// capacity is the dominant ground of challenge.
	capacityMultiplier = 1.5
	// keywordIncrement is the fixed contribution of one free-text keyword match.
	keywordIncrement = 0.1
	// freeTextCap bounds the total free-text contribution.
	freeTextCap = 0.3
)

// Risk level thresholds: score >= thresholdHigh is high, >= thresholdMedium
// is medium, anything below is low.
const (
	thresholdHigh   = 0.7
	thresholdMedium = 0.4
)

// Scorer derives a risk assessment from violations and free-text fields.
// Safe for concurrent use; only the injected read-only catalog is shared.
type Scorer struct {
	cat *catalog.Catalog
}

// NewScorer creates a scorer bound to a loaded catalog.
func NewScorer(cat *catalog.Catalog) *Scorer {
	return &Scorer{cat: cat}
}

// Assess computes the risk level, the 0-1 risk score and the list of
// human-readable factors that drove it. Deterministic for identical inputs.
func (s *Scorer) Assess(dt types.DocumentType, fields types.Fields, violations []types.Violation) (types.RiskLevel, float64, []string) {
	var factors []string

	base := 0.0
	for _, v := range violations {
		weight := severityWeight(v.Severity)
		multiplier := s.relevanceMultiplier(dt, v)
		contribution := weight * multiplier
		base += contribution
		factors = append(factors, fmt.Sprintf("%s violation %s (+%.2f)", v.Severity, v.Code, contribution))
	}

	textScore, textFactors := s.scanFreeText(fields)
	factors = append(factors, textFactors...)

	score := base + textScore
	if score > 1.0 {
		score = 1.0
	}

	return Level(score), score, factors
}

// Level buckets a 0-1 risk score into a discrete risk level.
func Level(score float64) types.RiskLevel {
	switch {
	case score >= thresholdHigh:
		return types.RiskHigh
	case score >= thresholdMedium:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

// CollectFreeText concatenates the fixed free-text fields in scan order.
// The orchestrator feeds this to case retrieval so both stages see the
// same text.
func CollectFreeText(fields types.Fields) string {
	var parts []string
	for _, fieldName := range freeTextFields {
		if text, ok := fields[fieldName].(string); ok && text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// scanFreeText scans the fixed free-text fields for risk keywords. Each
// match adds keywordIncrement; the total is capped at freeTextCap so free
// text alone can never dominate the violation signal.
func (s *Scorer) scanFreeText(fields types.Fields) (float64, []string) {
	total := 0.0
	var factors []string

	for _, fieldName := range freeTextFields {
		raw, ok := fields[fieldName]
		if !ok {
			continue
		}
		text, ok := raw.(string)
		if !ok {
			continue
		}
		lower := strings.ToLower(text)

		for _, category := range keywordCategories {
			for _, keyword := range category.keywords {
				if !strings.Contains(lower, keyword) {
					continue
				}
				if total >= freeTextCap {
					return freeTextCap, factors
				}
				total += keywordIncrement
				factors = append(factors, fmt.Sprintf("%s keyword %q in %s (+%.2f)", category.name, keyword, fieldName, keywordIncrement))
			}
		}
	}

	if total > freeTextCap {
		total = freeTextCap
	}
	return total, factors
}

// relevanceMultiplier applies document-type-specific weighting. Capacity
// violations on wills carry extra weight; everything else is 1.
func (s *Scorer) relevanceMultiplier(dt types.DocumentType, v types.Violation) float64 {
	if dt == types.DocumentWill && s.cat.Category(v.RequirementID) == "capacity" {
		return capacityMultiplier
	}
	return 1.0
}

func severityWeight(severity types.Severity) float64 {
	switch severity {
	case types.SeverityCritical:
		return weightCritical
	case types.SeverityMajor:
		return weightMajor
	default:
		return weightMinor
	}
}
