// Package recommend maps violations, risk level and case references to a
// deduplicated, order-stable list of human-readable recommendations.
package recommend

import (
	"fmt"

	"github.com/mlaurier/doccheck/internal/types"
)

const (
	// maxRecommendations caps the output so results stay usable.
	maxRecommendations = 15
	// maxCitedCases bounds how many precedents are cited.
	maxCitedCases = 3
)

// riskStrategies are fixed escalation recommendations per risk level.
var riskStrategies = map[types.RiskLevel][]string{
	types.RiskHigh: {
		"Seek immediate professional legal review before execution",
		"Document the circumstances of execution in a solicitor's memorandum",
		"Consider a formal capacity assessment by a qualified assessor",
	},
	types.RiskMedium: {
		"Have the document reviewed by a lawyer before relying on it",
		"Keep contemporaneous notes of the signing circumstances",
	},
	types.RiskLow: {
		"Review the document periodically and after major life events",
	},
}

// documentStrategies are fixed boilerplate recommendations per document type.
var documentStrategies = map[types.DocumentType][]string{
	types.DocumentWill: {
		"Consider appointing alternate executors",
		"Review beneficiary designations on registered accounts and insurance alongside the will",
	},
	types.DocumentPOAProperty: {
		"Consider appointing an alternate attorney for property",
		"Review any conditions or restrictions on the attorney's authority",
	},
	types.DocumentPOAPersonalCare: {
		"Consider recording care wishes and instructions for the attorney",
		"Confirm the attorney is willing and able to act",
	},
}

// Synthesize builds the recommendation list for an analysis: violation
// remedies first, then risk-level strategies, then document-type
// boilerplate, then precedent citations. Exact-string duplicates are
// dropped keeping first-seen order, and the list is capped.
func Synthesize(dt types.DocumentType, violations []types.Violation, riskLevel types.RiskLevel, caseRefs []types.CaseReference) []string {
	seen := make(map[string]bool)
	out := make([]string, 0, maxRecommendations)

	add := func(rec string) {
		if rec == "" || seen[rec] || len(out) >= maxRecommendations {
			return
		}
		seen[rec] = true
		out = append(out, rec)
	}

	for _, v := range violations {
		if v.Remedy != "" {
			add(v.Remedy)
			continue
		}
		add(fmt.Sprintf("Address: %s", v.Message))
	}

	for _, rec := range riskStrategies[riskLevel] {
		add(rec)
	}
	for _, rec := range documentStrategies[dt] {
		add(rec)
	}

	cited := caseRefs
	if len(cited) > maxCitedCases {
		cited = cited[:maxCitedCases]
	}
	for _, ref := range cited {
		if len(ref.KeyPrinciples) == 0 {
			continue
		}
		add(fmt.Sprintf("Consider precedent from %s: %s", ref.CaseName, ref.KeyPrinciples[0]))
	}

	return out
}
