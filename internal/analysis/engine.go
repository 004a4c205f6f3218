// Package analysis provides the orchestrator that sequences compliance
// evaluation, risk scoring, case retrieval and recommendation synthesis
// into a single analysis record. It is the boundary that converts internal
// evaluation failures into degraded-but-valid results.
package analysis

import (
	"fmt"
	"strings"

	"github.com/mlaurier/doccheck/internal/caselaw"
	"github.com/mlaurier/doccheck/internal/catalog"
	"github.com/mlaurier/doccheck/internal/compliance"
	"github.com/mlaurier/doccheck/internal/recommend"
	"github.com/mlaurier/doccheck/internal/risk"
	"github.com/mlaurier/doccheck/internal/types"
)

// Confidence weighting constants.
const (
	confidenceHighScore   = 0.5
	confidenceMidScore    = 0.3
	confidenceLowScore    = 0.1
	confidenceLowRisk     = 0.1
	confidenceFieldBonus  = 0.1
	informativeKeysNeeded = 4
)

// informativeKeys are the field names whose presence raises confidence in
// the analysis, per document type.
var informativeKeys = map[types.DocumentType][]string{
	types.DocumentWill: {
		"testator_name", "testator_age", "executors", "witnesses",
		"beneficiaries", "signature_date", "special_instructions",
	},
	types.DocumentPOAProperty: {
		"grantor_name", "attorneys", "witnesses", "signature_date",
		"continuing", "special_instructions",
	},
	types.DocumentPOAPersonalCare: {
		"grantor_name", "attorneys", "witnesses", "signature_date",
		"care_instructions", "special_instructions",
	},
}

// Outcome is the tagged result of an analysis. Degraded indicates the
// engine recovered from bad input (unknown type, malformed fields) rather
// than evaluating cleanly; Result is always populated either way.
type Outcome struct {
	Result   types.AnalysisResult
	Degraded bool
	Reasons  []string
}

// Engine is the single entry point of the compliance engine. It holds only
// immutable collaborators, so concurrent Analyze calls need no locking.
type Engine struct {
	cat       *catalog.Catalog
	evaluator *compliance.Evaluator
	scorer    *risk.Scorer
	retriever *caselaw.Retriever
}

// NewEngine wires the engine components around a loaded catalog.
func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{
		cat:       cat,
		evaluator: compliance.NewEvaluator(cat),
		scorer:    risk.NewScorer(cat),
		retriever: caselaw.NewRetriever(cat),
	}
}

// Analyze evaluates the document fields and assembles the full analysis
// record. It never returns an error for bad input: unrecognized document
// types and malformed fields produce a degraded Outcome instead.
func (e *Engine) Analyze(documentType string, fields types.Fields) Outcome {
	dt, ok := types.ParseDocumentType(documentType)
	if !ok || !e.cat.Supports(dt) {
		return e.degradedUnknownType(documentType)
	}

	score, violations := e.evaluator.Evaluate(dt, fields)
	riskLevel, riskScore, factors := e.scorer.Assess(dt, fields, violations)
	refs := e.retriever.FindRelevant(dt, violations, risk.CollectFreeText(fields))
	recommendations := recommend.Synthesize(dt, violations, riskLevel, refs)

	result := types.AnalysisResult{
		DocumentType:    dt,
		ComplianceScore: score,
		RiskLevel:       riskLevel,
		RiskScore:       riskScore,
		Violations:      nonNil(violations),
		RiskFactors:     nonNil(factors),
		Recommendations: nonNil(recommendations),
		CaseReferences:  nonNil(refs),
		Confidence:      confidence(dt, fields, score, riskLevel),
	}

	reasons := recoveredAnomalies(violations)
	return Outcome{
		Result:   result,
		Degraded: len(reasons) > 0,
		Reasons:  reasons,
	}
}

// degradedUnknownType builds the fixed degraded result for an unsupported
// document type: score 0, risk high, confidence 0, a single violation and
// a generic manual-review recommendation.
func (e *Engine) degradedUnknownType(documentType string) Outcome {
	violation := types.Violation{
		Code:     types.CodeUnknownDocumentType,
		Severity: types.SeverityCritical,
		Message:  fmt.Sprintf("Document type %q is not supported; supported types are will, poa_property and poa_personal_care", documentType),
	}
	return Outcome{
		Result: types.AnalysisResult{
			DocumentType:    types.DocumentType(documentType),
			ComplianceScore: 0,
			RiskLevel:       types.RiskHigh,
			RiskScore:       1,
			Violations:      []types.Violation{violation},
			RiskFactors:     []string{},
			Recommendations: []string{"Manual review required: unsupported document type"},
			CaseReferences:  []types.CaseReference{},
			Confidence:      0,
		},
		Degraded: true,
		Reasons:  []string{types.CodeUnknownDocumentType},
	}
}

// confidence is a heuristic blend of score band, risk level and input
// completeness, capped at 1.
func confidence(dt types.DocumentType, fields types.Fields, score float64, riskLevel types.RiskLevel) float64 {
	c := confidenceLowScore
	switch {
	case score >= 80:
		c = confidenceHighScore
	case score >= 60:
		c = confidenceMidScore
	}

	if riskLevel == types.RiskLow {
		c += confidenceLowRisk
	}

	present := 0
	for _, key := range informativeKeys[dt] {
		if _, ok := fields[key]; ok {
			present++
		}
	}
	if present >= informativeKeysNeeded {
		c += confidenceFieldBonus
	}

	if c > 1 {
		c = 1
	}
	return c
}

// recoveredAnomalies extracts the codes of recoverable anomalies from the
// violation list, so callers can tell a clean evaluation from one that
// recovered from malformed input.
func recoveredAnomalies(violations []types.Violation) []string {
	var reasons []string
	for _, v := range violations {
		if strings.HasPrefix(v.Code, "malformed_field:") {
			reasons = append(reasons, v.Code)
		}
	}
	return reasons
}

// nonNil normalizes nil slices to empty ones; the engine guarantees output
// lists are always present.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
