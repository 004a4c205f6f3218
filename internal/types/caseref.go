package types

// CaseReference is a static precedent record used only for citation and
// keyword retrieval, never for legal reasoning.
type CaseReference struct {
	CaseName      string   `json:"case_name" validate:"required"`
	Citation      string   `json:"citation" validate:"required"`
	Year          int      `json:"year" validate:"required"`
	Court         string   `json:"court" validate:"required"`
	Summary       string   `json:"summary" validate:"required"`
	KeyPrinciples []string `json:"key_principles" validate:"min=1"`
	Outcome       string   `json:"outcome"`
	RelevanceTags []string `json:"relevance_tags"`
}
