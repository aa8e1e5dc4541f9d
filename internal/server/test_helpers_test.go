package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/talent-match/internal/db"
)

// fakeDBClient is an in-memory DBClient for handler and service tests.
type fakeDBClient struct {
	engineers    map[uuid.UUID]*db.Engineer
	jobs         map[uuid.UUID]*db.JobPost
	weights      map[string]float64
	applications map[uuid.UUID]*db.Application
	scouts       map[uuid.UUID]*db.Scout

	weightsErr  error
	replacedCnt int
}

func newFakeDBClient() *fakeDBClient {
	return &fakeDBClient{
		engineers:    make(map[uuid.UUID]*db.Engineer),
		jobs:         make(map[uuid.UUID]*db.JobPost),
		weights:      make(map[string]float64),
		applications: make(map[uuid.UUID]*db.Application),
		scouts:       make(map[uuid.UUID]*db.Scout),
	}
}

func (f *fakeDBClient) GetEngineer(_ context.Context, id uuid.UUID) (*db.Engineer, error) {
	return f.engineers[id], nil
}

func (f *fakeDBClient) GetJobPost(_ context.Context, id uuid.UUID) (*db.JobPost, error) {
	return f.jobs[id], nil
}

func (f *fakeDBClient) ListOpenJobPosts(_ context.Context, limit int) ([]db.JobPost, error) {
	var posts []db.JobPost
	for _, j := range f.jobs {
		if j.Status == db.JobStatusOpen && len(posts) < limit {
			posts = append(posts, *j)
		}
	}
	return posts, nil
}

func (f *fakeDBClient) GetMatchWeights(_ context.Context) (map[string]float64, error) {
	if f.weightsErr != nil {
		return nil, f.weightsErr
	}
	out := make(map[string]float64, len(f.weights))
	for k, v := range f.weights {
		out[k] = v
	}
	return out, nil
}

func (f *fakeDBClient) ReplaceMatchWeights(_ context.Context, weights map[string]float64) error {
	f.weights = make(map[string]float64, len(weights))
	for k, v := range weights {
		f.weights[k] = v
	}
	f.replacedCnt++
	return nil
}

func (f *fakeDBClient) CreateApplication(_ context.Context, a *db.Application) (uuid.UUID, error) {
	stored := *a
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	f.applications[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeDBClient) GetApplication(_ context.Context, id uuid.UUID) (*db.Application, error) {
	return f.applications[id], nil
}

func (f *fakeDBClient) CreateScout(_ context.Context, s *db.Scout) (uuid.UUID, error) {
	stored := *s
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	f.scouts[stored.ID] = &stored
	return stored.ID, nil
}

func (f *fakeDBClient) GetScout(_ context.Context, id uuid.UUID) (*db.Scout, error) {
	return f.scouts[id], nil
}

// newTestServer wires a Server around a fake client, skipping the real
// database connection
func newTestServer(client DBClient) *Server {
	weights := NewWeightService(client)
	return &Server{
		matches: NewMatchService(client, weights),
		weights: weights,
		logger:  zap.NewNop(),
	}
}

// seedScenario loads the fake with the worked scoring example: skill overlap
// 0.4, budget fit 0.875, availability fit 0.75, remote fit 1.0 -> score 68
// under default weights.
func seedScenario(f *fakeDBClient) (engineerID, jobID uuid.UUID) {
	engineerID = uuid.New()
	jobID = uuid.New()

	desired := int64(900_000)
	hours := 15
	f.engineers[engineerID] = &db.Engineer{
		ID:                    engineerID,
		Name:                  "Scenario Engineer",
		Email:                 "scenario@example.com",
		DesiredMonthlyMin:     &desired,
		AvailableHoursPerWeek: &hours,
		Skills: []db.EngineerSkill{
			{SkillID: "python", ProficiencyLevel: 4},
		},
	}

	budgetMin := int64(600_000)
	budgetMax := int64(800_000)
	hoursMin := 20
	f.jobs[jobID] = &db.JobPost{
		ID:          jobID,
		CompanyName: "Scenario Corp",
		Title:       "ML Engineer",
		Status:      db.JobStatusOpen,
		BudgetMin:   &budgetMin,
		BudgetMax:   &budgetMax,
		HoursMin:    &hoursMin,
		RemoteOK:    true,
		Requirements: []db.JobSkillRequirement{
			{SkillID: "python", Weight: 1},
			{SkillID: "pytorch", Weight: 1},
		},
	}

	return engineerID, jobID
}
