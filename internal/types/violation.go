package types

// Violation codes for findings that do not map to a single failed check.
const (
	CodeUnknownDocumentType = "unknown_document_type"
	CodeMalformedFieldFmt   = "malformed_field:%s"
)

// Violation represents the runtime finding that a specific requirement was
// not met. Violations are created fresh on every evaluation call and never
// stored by the engine itself.
type Violation struct {
	// RequirementID references a Requirement in the rule catalog for the
	// evaluated document type. Empty only for unknown_document_type.
	RequirementID string `json:"requirement_id,omitempty"`
	// Code is a stable machine-readable identifier for the finding
	// (e.g. "missing_executor", "insufficient_witnesses").
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// Remedy is an optional suggested fix, surfaced verbatim in recommendations.
	Remedy string `json:"remedy,omitempty"`
}
