package db

import (
	"context"
	"fmt"
)

// -----------------------------------------------------------------------------
// Match Weight Methods
// -----------------------------------------------------------------------------

// GetMatchWeights retrieves the stored factor weight rows as a map. A factor
// with no row is simply absent; defaulting is the caller's concern.
func (db *DB) GetMatchWeights(ctx context.Context) (map[string]float64, error) {
	rows, err := db.pool.Query(ctx, `SELECT factor, weight FROM match_weights`)
	if err != nil {
		return nil, fmt.Errorf("failed to get match weights: %w", err)
	}
	defer rows.Close()

	weights := make(map[string]float64)
	for rows.Next() {
		var factor string
		var weight float64
		if err := rows.Scan(&factor, &weight); err != nil {
			return nil, fmt.Errorf("failed to scan match weight: %w", err)
		}
		weights[factor] = weight
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read match weights: %w", err)
	}

	return weights, nil
}

// ReplaceMatchWeights replaces the whole weight set in one transaction.
// Scoring reads concurrent with an update see either the old set or the new
// set, never a mix.
func (db *DB) ReplaceMatchWeights(ctx context.Context, weights map[string]float64) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM match_weights`); err != nil {
		return fmt.Errorf("failed to clear match weights: %w", err)
	}

	for factor, weight := range weights {
		_, err := tx.Exec(ctx,
			`INSERT INTO match_weights (factor, weight, updated_at)
			 VALUES ($1, $2, NOW())`,
			factor, weight,
		)
		if err != nil {
			return fmt.Errorf("failed to insert match weight %s: %w", factor, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit match weights: %w", err)
	}
	return nil
}
