// Package compliance implements the rule-based compliance evaluator. Given
// a document type and structured field data it walks the rule catalog,
// determines which requirements are satisfied, and computes a compliance
// score via fixed point deductions.
package compliance

import (
	"fmt"

	"github.com/mlaurier/doccheck/internal/catalog"
	"github.com/mlaurier/doccheck/internal/types"
)

// Point deductions per violation severity. The score starts at 100 and is
// clamped to [0, 100].
const (
	deductionCritical = 25.0
	deductionMajor    = 10.0
	deductionMinor    = 5.0
)

// Evaluator walks the rule catalog for a document type and scores field
// data against it. Stateless apart from the injected read-only catalog;
// safe for concurrent use.
type Evaluator struct {
	cat *catalog.Catalog
}

// NewEvaluator creates an evaluator bound to a loaded catalog.
func NewEvaluator(cat *catalog.Catalog) *Evaluator {
	return &Evaluator{cat: cat}
}

// Evaluate checks every requirement for the document type and returns the
// compliance score with the ordered violation list. It is a pure function
// of its inputs and the static catalog.
//
// Unknown document types yield score 0 and a single unknown_document_type
// violation rather than an error. Fields that are present with the wrong
// shape are treated as absent for the affected check and recorded once as
// a minor malformed_field violation.
func (e *Evaluator) Evaluate(dt types.DocumentType, fields types.Fields) (float64, []types.Violation) {
	if !e.cat.Supports(dt) {
		return 0, []types.Violation{unknownDocumentTypeViolation(dt)}
	}

	var violations []types.Violation
	seenMalformed := make(map[string]bool)

	for _, req := range e.cat.Requirements(dt) {
		check, ok := checks[req.ID]
		if !ok {
			// Catalog entry without an implemented check; conditions are
			// documentation only, so the requirement cannot fail.
			continue
		}
		res := check(fields)

		for _, name := range res.malformed {
			if seenMalformed[name] {
				continue
			}
			seenMalformed[name] = true
			violations = append(violations, types.Violation{
				RequirementID: req.ID,
				Code:          fmt.Sprintf(types.CodeMalformedFieldFmt, name),
				Severity:      types.SeverityMinor,
				Message:       fmt.Sprintf("Field %q has an unexpected shape and was treated as absent", name),
				Remedy:        fmt.Sprintf("Supply %q in the documented structure", name),
			})
		}

		if res.satisfied {
			continue
		}
		violations = append(violations, types.Violation{
			RequirementID: req.ID,
			Code:          res.code,
			Severity:      violationSeverity(req, res),
			Message:       res.message,
			Remedy:        res.remedy,
		})
	}

	return Score(violations), violations
}

// Score computes the compliance score for a violation list: start at 100,
// deduct per severity, clamp to [0, 100]. Exposed separately so tests can
// verify monotonicity against synthetic violations.
func Score(violations []types.Violation) float64 {
	score := 100.0
	for _, v := range violations {
		switch v.Severity {
		case types.SeverityCritical:
			score -= deductionCritical
		case types.SeverityMajor:
			score -= deductionMajor
		case types.SeverityMinor:
			score -= deductionMinor
		}
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// violationSeverity resolves the severity of a failed check. Mandatory
// requirement failures are always critical; optional requirements use the
// check's override, defaulting to minor.
func violationSeverity(req types.Requirement, res checkResult) types.Severity {
	if req.Mandatory {
		return types.SeverityCritical
	}
	if res.severity != "" {
		return res.severity
	}
	return types.SeverityMinor
}

func unknownDocumentTypeViolation(dt types.DocumentType) types.Violation {
	return types.Violation{
		Code:     types.CodeUnknownDocumentType,
		Severity: types.SeverityCritical,
		Message:  fmt.Sprintf("Document type %q is not supported; supported types are will, poa_property and poa_personal_care", string(dt)),
		Remedy:   "Manual review required",
	}
}
