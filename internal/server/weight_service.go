package server

import (
	"context"
	"fmt"

	"github.com/jonathan/talent-match/internal/matching"
)

// WeightService provides the weight-configuration lifecycle: loading the
// active configuration with defaults applied, and admin updates as an atomic
// whole-set replace.
type WeightService struct {
	db DBClient
}

// NewWeightService creates a new WeightService with the given dependencies
func NewWeightService(db DBClient) *WeightService {
	return &WeightService{db: db}
}

// Load returns the active weight configuration. Stored rows win over
// defaults; any recognized factor without a row gets its documented default;
// unknown stored keys are dropped.
func (s *WeightService) Load(ctx context.Context) (matching.FactorWeights, error) {
	stored, err := s.db.GetMatchWeights(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load match weights: %w", err)
	}
	return matching.FactorWeights(stored).Resolve(), nil
}

// Update validates the submitted entries and persists the merged full set.
// The map may be partial; factors it omits keep their current value. On a
// validation error nothing is written, so the prior configuration stays
// active.
func (s *WeightService) Update(ctx context.Context, entries matching.FactorWeights) (matching.FactorWeights, error) {
	if err := entries.Validate(); err != nil {
		return nil, err
	}

	current, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	for _, factor := range matching.Factors() {
		if v, ok := entries[factor]; ok {
			current[factor] = v
		}
	}

	if err := s.db.ReplaceMatchWeights(ctx, current); err != nil {
		return nil, fmt.Errorf("failed to persist match weights: %w", err)
	}
	return current, nil
}

// Seed replaces the stored configuration with the given full set, filling
// defaults for missing factors. Used at system setup and by the CLI.
func (s *WeightService) Seed(ctx context.Context, entries matching.FactorWeights) (matching.FactorWeights, error) {
	if err := entries.Validate(); err != nil {
		return nil, err
	}

	seeded := entries.Resolve()
	if err := s.db.ReplaceMatchWeights(ctx, seeded); err != nil {
		return nil, fmt.Errorf("failed to seed match weights: %w", err)
	}
	return seeded, nil
}
