package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Application Methods
// -----------------------------------------------------------------------------

// CreateApplication inserts a new application record with its match score and
// breakdown, and returns its ID. The score columns are written only here.
func (db *DB) CreateApplication(ctx context.Context, a *Application) (uuid.UUID, error) {
	breakdownJSON, err := json.Marshal(a.ScoreBreakdown)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal score breakdown: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO applications (engineer_id, job_id, message, match_score, score_breakdown)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		a.EngineerID, a.JobID, a.Message, a.MatchScore, breakdownJSON,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create application: %w", err)
	}
	return id, nil
}

// GetApplication retrieves an application by ID.
// Returns nil without error when no record exists.
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*Application, error) {
	var a Application
	var breakdownJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, engineer_id, job_id, message, match_score, score_breakdown, created_at
		 FROM applications WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.EngineerID, &a.JobID, &a.Message, &a.MatchScore, &breakdownJSON, &a.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	if breakdownJSON != nil {
		_ = json.Unmarshal(breakdownJSON, &a.ScoreBreakdown)
	}

	return &a, nil
}
