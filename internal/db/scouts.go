package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Scout Methods
// -----------------------------------------------------------------------------

// CreateScout inserts a new scout record with its match score and breakdown,
// and returns its ID
func (db *DB) CreateScout(ctx context.Context, s *Scout) (uuid.UUID, error) {
	breakdownJSON, err := json.Marshal(s.ScoreBreakdown)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal score breakdown: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO scouts (job_id, engineer_id, message, match_score, score_breakdown)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		s.JobID, s.EngineerID, s.Message, s.MatchScore, breakdownJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create scout: %w", err)
	}
	return id, nil
}

// GetScout retrieves a scout record by ID.
// Returns nil without error when no record exists.
func (db *DB) GetScout(ctx context.Context, id uuid.UUID) (*Scout, error) {
	var s Scout
	var breakdownJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, job_id, engineer_id, message, match_score, score_breakdown, created_at
		 FROM scouts WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.JobID, &s.EngineerID, &s.Message, &s.MatchScore, &breakdownJSON, &s.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get scout: %w", err)
	}

	if breakdownJSON != nil {
		_ = json.Unmarshal(breakdownJSON, &s.ScoreBreakdown)
	}

	return &s, nil
}
