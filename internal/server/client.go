// Package server provides the HTTP REST API for the talent-match service.
package server

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/talent-match/internal/db"
)

// DBClient is the storage surface the services need. *db.DB satisfies it;
// tests substitute an in-memory fake.
type DBClient interface {
	GetEngineer(ctx context.Context, id uuid.UUID) (*db.Engineer, error)
	GetJobPost(ctx context.Context, id uuid.UUID) (*db.JobPost, error)
	ListOpenJobPosts(ctx context.Context, limit int) ([]db.JobPost, error)

	GetMatchWeights(ctx context.Context) (map[string]float64, error)
	ReplaceMatchWeights(ctx context.Context, weights map[string]float64) error

	CreateApplication(ctx context.Context, a *db.Application) (uuid.UUID, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*db.Application, error)
	CreateScout(ctx context.Context, s *db.Scout) (uuid.UUID, error)
	GetScout(ctx context.Context, id uuid.UUID) (*db.Scout, error)
}
