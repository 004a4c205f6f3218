package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/mlaurier/doccheck/internal/types"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// AnalysisRecord is a stored analysis with its persistence identity. The
// engine output itself carries no identity; the ID and timestamp are
// assigned here.
type AnalysisRecord struct {
	ID           uuid.UUID            `json:"id"`
	UserID       uuid.UUID            `json:"user_id"`
	DocumentType types.DocumentType   `json:"document_type"`
	Degraded     bool                 `json:"degraded"`
	Result       types.AnalysisResult `json:"result"`
	CreatedAt    time.Time            `json:"created_at"`
}

// SaveAnalysis stores an analysis result for a user and returns the new
// record ID.
func (db *DB) SaveAnalysis(ctx context.Context, userID uuid.UUID, result types.AnalysisResult, degraded bool) (uuid.UUID, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, document_type, compliance_score, risk_level, degraded, result)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		userID, result.DocumentType, result.ComplianceScore, result.RiskLevel, degraded, payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis fetches a stored analysis by ID.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var rec AnalysisRecord
	var payload []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, document_type, degraded, result, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.UserID, &rec.DocumentType, &rec.Degraded, &payload, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if err := json.Unmarshal(payload, &rec.Result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
	}
	return &rec, nil
}

// ListAnalyses returns a user's stored analyses, newest first.
func (db *DB) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, document_type, degraded, result, created_at
		 FROM analyses WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		var payload []byte
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.DocumentType, &rec.Degraded, &payload, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		if err := json.Unmarshal(payload, &rec.Result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis result: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}
	return records, nil
}
