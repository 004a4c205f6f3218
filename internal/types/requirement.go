package types

// Requirement is a single jurisdiction-specific rule a document must satisfy.
// Requirements are loaded once at startup from static tables and never mutated.
type Requirement struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Statute     string   `json:"statute"`
	Section     string   `json:"section"`
	Mandatory   bool     `json:"mandatory"`
	// Category groups requirements for risk weighting and case retrieval
	// (e.g. "witnesses", "capacity", "executor", "attorney", "execution").
	Category string `json:"category" validate:"required"`
	// Conditions document what the check verifies; the actual pass/fail
	// logic is implemented in code keyed by requirement ID.
	Conditions []string `json:"conditions"`
	// Exceptions document conditions that waive the requirement.
	Exceptions []string `json:"exceptions,omitempty"`
}
