package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaurier/doccheck/internal/catalog"
	"github.com/mlaurier/doccheck/internal/types"
)

func newEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return NewEngine(cat)
}

func validWillFields() types.Fields {
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

func TestAnalyze_CompliantWill(t *testing.T) {
	engine := newEngine(t)

	outcome := engine.Analyze("will", validWillFields())

	assert.False(t, outcome.Degraded)
	assert.Empty(t, outcome.Reasons)

	result := outcome.Result
	assert.Equal(t, types.DocumentWill, result.DocumentType)
	assert.Equal(t, 100.0, result.ComplianceScore)
	assert.True(t, result.Compliant())
	assert.Equal(t, types.RiskLow, result.RiskLevel)
	assert.Empty(t, result.Violations)
	assert.NotEmpty(t, result.Recommendations)
	// Score band 0.5 + low risk 0.1 + informative fields 0.1
	assert.InDelta(t, 0.7, result.Confidence, 1e-9)
}

func TestAnalyze_EmptyWillFields(t *testing.T) {
	engine := newEngine(t)

	outcome := engine.Analyze("will", types.Fields{})

	assert.False(t, outcome.Degraded, "missing fields are not an anomaly")

	result := outcome.Result
	assert.Equal(t, 25.0, result.ComplianceScore)
	assert.False(t, result.Compliant())
	assert.Len(t, result.CriticalViolations(), 3)
	assert.Equal(t, types.RiskHigh, result.RiskLevel)
	assert.Equal(t, 1.0, result.RiskScore)
	assert.NotEmpty(t, result.Recommendations)
	assert.NotEmpty(t, result.CaseReferences)
}

func TestAnalyze_UnknownDocumentType(t *testing.T) {
	engine := newEngine(t)

	outcome := engine.Analyze("codicil", types.Fields{"witnesses": []any{"A", "B"}})

	assert.True(t, outcome.Degraded)
	assert.Equal(t, []string{types.CodeUnknownDocumentType}, outcome.Reasons)

	result := outcome.Result
	assert.Equal(t, 0.0, result.ComplianceScore)
	assert.Equal(t, types.RiskHigh, result.RiskLevel)
	assert.Equal(t, 1.0, result.RiskScore)
	assert.Equal(t, 0.0, result.Confidence)
	require.Len(t, result.Violations, 1)
	assert.Equal(t, types.CodeUnknownDocumentType, result.Violations[0].Code)
	assert.Equal(t, []string{"Manual review required: unsupported document type"}, result.Recommendations)
	assert.Empty(t, result.CaseReferences)
}

func TestAnalyze_UnknownDocumentType_Idempotent(t *testing.T) {
	engine := newEngine(t)

	first := engine.Analyze("codicil", nil)
	second := engine.Analyze("codicil", nil)

	assert.Equal(t, first, second)
}

func TestAnalyze_MalformedFieldDegradesButRecovers(t *testing.T) {
	engine := newEngine(t)

	fields := validWillFields()
	fields["witnesses"] = "two people"

	outcome := engine.Analyze("will", fields)

	assert.True(t, outcome.Degraded)
	assert.Contains(t, outcome.Reasons, "malformed_field:witnesses")
	// Recovery still yields a full result.
	assert.NotEmpty(t, outcome.Result.Violations)
	assert.NotEmpty(t, outcome.Result.Recommendations)
}

func TestAnalyze_Deterministic(t *testing.T) {
	engine := newEngine(t)
	fields := validWillFields()
	fields["special_instructions"] = "my estranged son may contest this will"

	first := engine.Analyze("will", fields)
	second := engine.Analyze("will", fields)

	assert.Equal(t, first, second)
}

func TestAnalyze_OutputBounds(t *testing.T) {
	engine := newEngine(t)

	inputs := []types.Fields{
		{},
		validWillFields(),
		{"witnesses": "bad", "executors": 3.0, "signature_date": true},
		{"special_instructions": "dispute contest challenge abuse dementia pressure"},
	}

	for _, fields := range inputs {
		for _, dt := range types.SupportedDocumentTypes {
			result := engine.Analyze(string(dt), fields).Result
			assert.GreaterOrEqual(t, result.ComplianceScore, 0.0)
			assert.LessOrEqual(t, result.ComplianceScore, 100.0)
			assert.GreaterOrEqual(t, result.RiskScore, 0.0)
			assert.LessOrEqual(t, result.RiskScore, 1.0)
			assert.GreaterOrEqual(t, result.Confidence, 0.0)
			assert.LessOrEqual(t, result.Confidence, 1.0)
			assert.LessOrEqual(t, len(result.Recommendations), 15)
			assert.LessOrEqual(t, len(result.CaseReferences), 5)
		}
	}
}

func TestAnalyze_ViolationReferentialIntegrity(t *testing.T) {
	engine := newEngine(t)
	cat, err := catalog.Load()
	require.NoError(t, err)

	fields := types.Fields{
		"witnesses":          "malformed",
		"capacity_confirmed": false,
	}

	for _, dt := range types.SupportedDocumentTypes {
		result := engine.Analyze(string(dt), fields).Result
		for _, v := range result.Violations {
			if v.RequirementID == "" {
				continue
			}
			_, ok := cat.Requirement(v.RequirementID)
			assert.True(t, ok, "violation %q references unknown requirement %q", v.Code, v.RequirementID)
		}
	}
}

func TestAnalyze_OutputListsNeverNil(t *testing.T) {
	engine := newEngine(t)

	result := engine.Analyze("will", validWillFields()).Result

	assert.NotNil(t, result.Violations)
	assert.NotNil(t, result.RiskFactors)
	assert.NotNil(t, result.Recommendations)
	assert.NotNil(t, result.CaseReferences)
}

func TestAnalyze_ConfidenceBands(t *testing.T) {
	engine := newEngine(t)

	// Empty fields: score 25 (< 60), high risk, fewer than 4 informative keys.
	low := engine.Analyze("will", types.Fields{}).Result
	assert.InDelta(t, 0.1, low.Confidence, 1e-9)

	// One major violation (capacity not confirmed, x1.5 on wills): score 90,
	// risk 0.75 (high), all informative keys present.
	fields := validWillFields()
	fields["capacity_confirmed"] = false
	mid := engine.Analyze("will", fields).Result
	assert.Equal(t, 90.0, mid.ComplianceScore)
	assert.InDelta(t, 0.6, mid.Confidence, 1e-9)
}

func TestAnalyze_FreeTextRaisesRisk(t *testing.T) {
	engine := newEngine(t)

	calm := engine.Analyze("will", validWillFields()).Result

	worried := validWillFields()
	worried["special_instructions"] = "I expect my children to dispute this; there has been pressure from a caregiver"
	flagged := engine.Analyze("will", worried).Result

	assert.Greater(t, flagged.RiskScore, calm.RiskScore)
	assert.Equal(t, calm.ComplianceScore, flagged.ComplianceScore, "free text never affects compliance")
}
