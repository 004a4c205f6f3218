package db

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaurier/doccheck/internal/types"
)

// Integration tests against a live database live behind DATABASE_URL; these
// cover what can be verified without one.

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "not-a-connection-string")
	assert.Error(t, err)
}

func TestAnalysisRecord_JSONRoundTrip(t *testing.T) {
	rec := AnalysisRecord{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		DocumentType: types.DocumentWill,
		Degraded:     true,
		Result: types.AnalysisResult{
			DocumentType:    types.DocumentWill,
			ComplianceScore: 70,
			RiskLevel:       types.RiskMedium,
			Violations: []types.Violation{
				{Code: "malformed_field:witnesses", Severity: types.SeverityMinor, Message: "bad shape"},
			},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded AnalysisRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, rec.ID, decoded.ID)
	assert.Equal(t, rec.Result.ComplianceScore, decoded.Result.ComplianceScore)
	assert.True(t, decoded.Degraded)
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := User{
		ID:           uuid.New(),
		Email:        "margaret@example.com",
		PasswordHash: "$2a$12$secret",
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret")
	assert.Contains(t, string(data), "margaret@example.com")
}

func TestSchema_CoversAllTables(t *testing.T) {
	assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS users")
	assert.Contains(t, Schema, "CREATE TABLE IF NOT EXISTS analyses")
	assert.Contains(t, Schema, "result JSONB NOT NULL")
}
