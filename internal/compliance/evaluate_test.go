package compliance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaurier/doccheck/internal/catalog"
	"github.com/mlaurier/doccheck/internal/types"
)

func newEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return NewEvaluator(cat)
}

// completeWillFields satisfies every will requirement.
func completeWillFields() types.Fields {
	return types.Fields{
		"testator_name":      "Margaret Hale",
		"testator_age":       float64(72),
		"executors":          []any{"John Thornton"},
		"witnesses":          []any{"Ann Latimer", "Henry Lennox"},
		"beneficiaries":      []any{"Frederick Hale"},
		"signature_date":     "2024-03-15",
		"capacity_confirmed": true,
	}
}

func TestEvaluate_CompleteWill(t *testing.T) {
	e := newEvaluator(t)

	score, violations := e.Evaluate(types.DocumentWill, completeWillFields())

	assert.Equal(t, 100.0, score)
	assert.Empty(t, violations)
}

func TestEvaluate_EmptyWillFields(t *testing.T) {
	e := newEvaluator(t)

	score, violations := e.Evaluate(types.DocumentWill, types.Fields{})

	// All three mandatory requirements fail; optional ones stay silent on
	// absent fields.
	require.Len(t, violations, 3)
	codes := []string{violations[0].Code, violations[1].Code, violations[2].Code}
	assert.Equal(t, []string{"missing_signature_date", "insufficient_witnesses", "missing_executor"}, codes)
	for _, v := range violations {
		assert.Equal(t, types.SeverityCritical, v.Severity)
		assert.NotEmpty(t, v.RequirementID)
		assert.NotEmpty(t, v.Remedy)
	}
	assert.Equal(t, 25.0, score)
}

func TestEvaluate_OptionalRequirementsSilentOnAbsence(t *testing.T) {
	e := newEvaluator(t)

	// Only the mandatory fields are present; no capacity, age or
	// beneficiary data. Score must still clear the compliance threshold.
	fields := types.Fields{
		"executors":      []any{"Jane Eyre"},
		"witnesses":      []any{"A", "B"},
		"signature_date": "2024-01-10",
	}
	score, violations := e.Evaluate(types.DocumentWill, fields)

	assert.Empty(t, violations)
	assert.GreaterOrEqual(t, score, types.ComplianceThreshold)
}

func TestEvaluate_UnknownDocumentType(t *testing.T) {
	e := newEvaluator(t)

	score, violations := e.Evaluate(types.DocumentType("trust"), types.Fields{})

	assert.Equal(t, 0.0, score)
	require.Len(t, violations, 1)
	assert.Equal(t, types.CodeUnknownDocumentType, violations[0].Code)
	assert.Equal(t, types.SeverityCritical, violations[0].Severity)
	assert.Empty(t, violations[0].RequirementID)
}

func TestEvaluate_MalformedFieldRecordedOnce(t *testing.T) {
	e := newEvaluator(t)

	// witnesses is read by the witness-count check and the
	// beneficiary-witness check; the malformed finding must appear once.
	fields := completeWillFields()
	fields["witnesses"] = "two people were there"

	score, violations := e.Evaluate(types.DocumentWill, fields)

	var malformed, insufficient int
	for _, v := range violations {
		switch v.Code {
		case "malformed_field:witnesses":
			malformed++
			assert.Equal(t, types.SeverityMinor, v.Severity)
		case "insufficient_witnesses":
			insufficient++
			assert.Equal(t, types.SeverityCritical, v.Severity)
		}
	}
	assert.Equal(t, 1, malformed)
	assert.Equal(t, 1, insufficient)
	assert.Equal(t, 70.0, score)
}

func TestEvaluate_MalformedFieldDeterministic(t *testing.T) {
	e := newEvaluator(t)

	fields := completeWillFields()
	fields["executors"] = "not a list"

	score1, first := e.Evaluate(types.DocumentWill, fields)
	score2, second := e.Evaluate(types.DocumentWill, fields)

	assert.Equal(t, score1, score2)
	assert.Equal(t, first, second)

	codes := make([]string, 0, len(first))
	for _, v := range first {
		codes = append(codes, v.Code)
	}
	assert.Contains(t, codes, "malformed_field:executors")
	assert.Contains(t, codes, "missing_executor")
}

func TestEvaluate_BeneficiaryWitness(t *testing.T) {
	e := newEvaluator(t)

	fields := completeWillFields()
	fields["witnesses"] = []any{"Frederick Hale", "Henry Lennox"}

	score, violations := e.Evaluate(types.DocumentWill, fields)

	require.Len(t, violations, 1)
	assert.Equal(t, "beneficiary_witness", violations[0].Code)
	assert.Equal(t, types.SeverityMajor, violations[0].Severity)
	assert.Equal(t, 90.0, score)
}

func TestEvaluate_BeneficiaryWitness_CaseInsensitive(t *testing.T) {
	e := newEvaluator(t)

	fields := completeWillFields()
	fields["beneficiaries"] = []any{map[string]any{"name": "ANN LATIMER"}}

	_, violations := e.Evaluate(types.DocumentWill, fields)

	require.Len(t, violations, 1)
	assert.Equal(t, "beneficiary_witness", violations[0].Code)
}

func TestEvaluate_UnderageTestator(t *testing.T) {
	e := newEvaluator(t)

	fields := completeWillFields()
	fields["testator_age"] = float64(16)

	_, violations := e.Evaluate(types.DocumentWill, fields)

	require.Len(t, violations, 1)
	assert.Equal(t, "underage_testator", violations[0].Code)
	assert.Equal(t, types.SeverityMinor, violations[0].Severity)
}

func TestEvaluate_CapacityNotConfirmed(t *testing.T) {
	e := newEvaluator(t)

	fields := completeWillFields()
	fields["capacity_confirmed"] = false

	_, violations := e.Evaluate(types.DocumentWill, fields)

	require.Len(t, violations, 1)
	assert.Equal(t, "capacity_not_confirmed", violations[0].Code)
	assert.Equal(t, types.SeverityMajor, violations[0].Severity)
}

func completePOAPropertyFields() types.Fields {
	return types.Fields{
		"grantor_name":   "Arthur Clennam",
		"attorneys":      []any{"Amy Dorrit"},
		"witnesses":      []any{"Flora Finching", "Daniel Doyce"},
		"signature_date": "2024-05-02",
		"continuing":     true,
	}
}

func TestEvaluate_CompletePOAProperty(t *testing.T) {
	e := newEvaluator(t)

	score, violations := e.Evaluate(types.DocumentPOAProperty, completePOAPropertyFields())

	assert.Equal(t, 100.0, score)
	assert.Empty(t, violations)
}

func TestEvaluate_POAProperty_MissingAttorney(t *testing.T) {
	e := newEvaluator(t)

	fields := completePOAPropertyFields()
	delete(fields, "attorneys")

	_, violations := e.Evaluate(types.DocumentPOAProperty, fields)

	require.Len(t, violations, 1)
	assert.Equal(t, "missing_attorney", violations[0].Code)
	assert.Equal(t, types.SeverityCritical, violations[0].Severity)
	assert.Contains(t, violations[0].Remedy, "attorney")
}

func TestEvaluate_POAProperty_NotContinuing(t *testing.T) {
	e := newEvaluator(t)

	fields := completePOAPropertyFields()
	fields["continuing"] = false

	_, violations := e.Evaluate(types.DocumentPOAProperty, fields)

	require.Len(t, violations, 1)
	assert.Equal(t, "not_continuing", violations[0].Code)
	assert.Equal(t, types.SeverityMinor, violations[0].Severity)
}

func TestEvaluate_POAProperty_AttorneyAsWitness(t *testing.T) {
	e := newEvaluator(t)

	fields := completePOAPropertyFields()
	fields["witnesses"] = []any{"Amy Dorrit", "Daniel Doyce"}

	_, violations := e.Evaluate(types.DocumentPOAProperty, fields)

	require.Len(t, violations, 1)
	assert.Equal(t, "ineligible_witness", violations[0].Code)
	assert.Equal(t, types.SeverityMajor, violations[0].Severity)
}

func TestEvaluate_POAProperty_ExcludedRelationshipWitness(t *testing.T) {
	e := newEvaluator(t)

	fields := completePOAPropertyFields()
	fields["witnesses"] = []any{
		map[string]any{"name": "Minnie Meagles", "relationship": "spouse"},
		"Daniel Doyce",
	}

	_, violations := e.Evaluate(types.DocumentPOAProperty, fields)

	require.Len(t, violations, 1)
	assert.Equal(t, "ineligible_witness", violations[0].Code)
	assert.Contains(t, violations[0].Message, "spouse")
}

func completePOAPersonalCareFields() types.Fields {
	return types.Fields{
		"grantor_name":   "Esther Summerson",
		"attorneys":      []any{map[string]any{"name": "John Jarndyce"}},
		"witnesses":      []any{"Ada Clare", "Richard Carstone"},
		"signature_date": "2024-06-20",
	}
}

func TestEvaluate_CompletePOAPersonalCare(t *testing.T) {
	e := newEvaluator(t)

	score, violations := e.Evaluate(types.DocumentPOAPersonalCare, completePOAPersonalCareFields())

	assert.Equal(t, 100.0, score)
	assert.Empty(t, violations)
}

func TestEvaluate_POAPersonalCare_PaidCareProvider(t *testing.T) {
	e := newEvaluator(t)

	fields := completePOAPersonalCareFields()
	fields["attorneys"] = []any{
		map[string]any{"name": "Harold Skimpole", "paid_care_provider": true},
	}

	_, violations := e.Evaluate(types.DocumentPOAPersonalCare, fields)

	require.Len(t, violations, 1)
	assert.Equal(t, "paid_care_provider_attorney", violations[0].Code)
	assert.Equal(t, types.SeverityMajor, violations[0].Severity)
}

func TestScore_Deductions(t *testing.T) {
	tests := []struct {
		name       string
		severities []types.Severity
		want       float64
	}{
		{"no violations", nil, 100},
		{"one critical", []types.Severity{types.SeverityCritical}, 75},
		{"one major", []types.Severity{types.SeverityMajor}, 90},
		{"one minor", []types.Severity{types.SeverityMinor}, 95},
		{"mixed", []types.Severity{types.SeverityCritical, types.SeverityMajor, types.SeverityMinor}, 60},
		{"clamped at zero", []types.Severity{
			types.SeverityCritical, types.SeverityCritical, types.SeverityCritical,
			types.SeverityCritical, types.SeverityCritical,
		}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := make([]types.Violation, 0, len(tt.severities))
			for _, sev := range tt.severities {
				violations = append(violations, types.Violation{Severity: sev})
			}
			assert.Equal(t, tt.want, Score(violations))
		})
	}
}

func TestScore_Monotonic(t *testing.T) {
	violations := []types.Violation{}
	prev := Score(violations)
	for i := 0; i < 10; i++ {
		violations = append(violations, types.Violation{Severity: types.SeverityMinor})
		next := Score(violations)
		assert.LessOrEqual(t, next, prev)
		prev = next
	}
}

func TestChecks_CoverEveryCatalogRequirement(t *testing.T) {
	cat, err := catalog.Load()
	require.NoError(t, err)

	for _, dt := range types.SupportedDocumentTypes {
		for _, req := range cat.Requirements(dt) {
			_, ok := checks[req.ID]
			assert.True(t, ok, "requirement %q has no check implementation", req.ID)
		}
	}
}
