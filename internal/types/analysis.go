package types

// ComplianceThreshold is the compliance score at or above which a document
// is considered compliant.
const ComplianceThreshold = 80.0

// AnalysisResult is the engine's output for a single document evaluation.
// It is immutable once assembled and has no identity beyond what the caller
// assigns when persisting it.
type AnalysisResult struct {
	DocumentType    DocumentType    `json:"document_type"`
	ComplianceScore float64         `json:"compliance_score"` // 0-100
	RiskLevel       RiskLevel       `json:"risk_level"`
	RiskScore       float64         `json:"risk_score"` // 0-1
	Violations      []Violation     `json:"violations"`
	RiskFactors     []string        `json:"risk_factors"`
	Recommendations []string        `json:"recommendations"`
	CaseReferences  []CaseReference `json:"case_references"`
	Confidence      float64         `json:"confidence"` // 0-1
}

// Compliant reports whether the compliance score clears the threshold.
// Status is derived, never stored.
func (r *AnalysisResult) Compliant() bool {
	return r.ComplianceScore >= ComplianceThreshold
}

// ComplianceStatus returns the string form of the derived status.
func (r *AnalysisResult) ComplianceStatus() string {
	if r.Compliant() {
		return "compliant"
	}
	return "non_compliant"
}

// CriticalViolations returns the subset of violations with critical severity.
func (r *AnalysisResult) CriticalViolations() []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Severity == SeverityCritical {
			out = append(out, v)
		}
	}
	return out
}
