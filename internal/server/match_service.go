package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/talent-match/internal/db"
	"github.com/jonathan/talent-match/internal/matching"
)

// recommendationJobLimit caps how many open jobs one recommendation request scores.
const recommendationJobLimit = 200

// MatchService provides business logic for scoring and for creating scored
// application and scout records.
type MatchService struct {
	db      DBClient
	weights *WeightService
}

// NewMatchService creates a new MatchService with the given dependencies
func NewMatchService(db DBClient, weights *WeightService) *MatchService {
	return &MatchService{db: db, weights: weights}
}

// convertEngineerToCandidate maps a stored engineer row into the engine's
// candidate type. Absence handling happens once here, so the engine never
// sees the storage layer's nullable shapes.
func convertEngineerToCandidate(e *db.Engineer) matching.CandidateProfile {
	skills := make([]matching.CandidateSkill, 0, len(e.Skills))
	for _, s := range e.Skills {
		skills = append(skills, matching.CandidateSkill{
			SkillID:         s.SkillID,
			Level:           s.ProficiencyLevel,
			YearsExperience: s.YearsExperience,
		})
	}
	return matching.CandidateProfile{
		ID:                    e.ID,
		Skills:                skills,
		DesiredMonthlyMin:     e.DesiredMonthlyMin,
		AvailableHoursPerWeek: e.AvailableHoursPerWeek,
		RemoteOnly:            e.RemoteOnly,
	}
}

// convertJobPostToProfile maps a stored job post row into the engine's job type
func convertJobPostToProfile(j *db.JobPost) matching.JobProfile {
	reqs := make([]matching.SkillRequirement, 0, len(j.Requirements))
	for _, r := range j.Requirements {
		reqs = append(reqs, matching.SkillRequirement{SkillID: r.SkillID, Weight: r.Weight})
	}
	return matching.JobProfile{
		ID:           j.ID,
		Requirements: reqs,
		BudgetMin:    j.BudgetMin,
		BudgetMax:    j.BudgetMax,
		HoursMin:     j.HoursMin,
		HoursMax:     j.HoursMax,
		RemoteOK:     j.RemoteOK,
	}
}

// breakdownToMap flattens a breakdown for JSONB storage on a record
func breakdownToMap(b matching.Breakdown) map[string]float64 {
	return map[string]float64{
		matching.FactorSkillOverlap:    b.SkillOverlap,
		matching.FactorBudgetFit:       b.BudgetFit,
		matching.FactorAvailabilityFit: b.AvailabilityFit,
		matching.FactorRemoteFit:       b.RemoteFit,
	}
}

// Score resolves both profiles and computes the match score under the active
// weight configuration.
func (s *MatchService) Score(ctx context.Context, engineerID, jobID uuid.UUID) (matching.MatchScore, error) {
	engineer, err := s.db.GetEngineer(ctx, engineerID)
	if err != nil {
		return matching.MatchScore{}, fmt.Errorf("failed to resolve engineer: %w", err)
	}
	if engineer == nil {
		return matching.MatchScore{}, &ErrEngineerNotFound{EngineerID: engineerID}
	}

	job, err := s.db.GetJobPost(ctx, jobID)
	if err != nil {
		return matching.MatchScore{}, fmt.Errorf("failed to resolve job post: %w", err)
	}
	if job == nil {
		return matching.MatchScore{}, &ErrJobNotFound{JobID: jobID}
	}

	weights, err := s.weights.Load(ctx)
	if err != nil {
		return matching.MatchScore{}, err
	}

	return matching.ComputeMatchScore(convertEngineerToCandidate(engineer), convertJobPostToProfile(job), weights)
}

// CreateApplication scores the pairing and persists an application record
// with the score written immutably at creation time.
func (s *MatchService) CreateApplication(ctx context.Context, engineerID, jobID uuid.UUID, message string) (*db.Application, error) {
	result, err := s.Score(ctx, engineerID, jobID)
	if err != nil {
		return nil, err
	}

	application := &db.Application{
		EngineerID:     engineerID,
		JobID:          jobID,
		Message:        message,
		MatchScore:     result.Score,
		ScoreBreakdown: breakdownToMap(result.Breakdown),
	}
	id, err := s.db.CreateApplication(ctx, application)
	if err != nil {
		return nil, err
	}

	created, err := s.db.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("created application not found: %s", id)
	}
	return created, nil
}

// CreateScout scores the pairing and persists a company-initiated scout
// record, same scoring-at-creation semantics as applications.
func (s *MatchService) CreateScout(ctx context.Context, jobID, engineerID uuid.UUID, message string) (*db.Scout, error) {
	result, err := s.Score(ctx, engineerID, jobID)
	if err != nil {
		return nil, err
	}

	scout := &db.Scout{
		JobID:          jobID,
		EngineerID:     engineerID,
		Message:        message,
		MatchScore:     result.Score,
		ScoreBreakdown: breakdownToMap(result.Breakdown),
	}
	id, err := s.db.CreateScout(ctx, scout)
	if err != nil {
		return nil, err
	}

	created, err := s.db.GetScout(ctx, id)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("created scout not found: %s", id)
	}
	return created, nil
}

// JobRecommendation pairs a job post with the engineer's live score against it
type JobRecommendation struct {
	Job    db.JobPost          `json:"job"`
	Result matching.MatchScore `json:"result"`
}

// RecommendJobs returns up to limit open jobs ranked by the engineer's live
// match score, highest first. Scores here are computed on the fly and are
// not persisted anywhere.
func (s *MatchService) RecommendJobs(ctx context.Context, engineerID uuid.UUID, limit int) ([]JobRecommendation, error) {
	engineer, err := s.db.GetEngineer(ctx, engineerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve engineer: %w", err)
	}
	if engineer == nil {
		return nil, &ErrEngineerNotFound{EngineerID: engineerID}
	}

	posts, err := s.db.ListOpenJobPosts(ctx, recommendationJobLimit)
	if err != nil {
		return nil, err
	}

	postByID := make(map[uuid.UUID]db.JobPost, len(posts))
	jobs := make([]matching.JobProfile, 0, len(posts))
	for i := range posts {
		postByID[posts[i].ID] = posts[i]
		jobs = append(jobs, convertJobPostToProfile(&posts[i]))
	}

	weights, err := s.weights.Load(ctx)
	if err != nil {
		return nil, err
	}

	ranked, err := matching.ScoreAgainst(ctx, convertEngineerToCandidate(engineer), jobs, weights, 0)
	if err != nil {
		return nil, err
	}

	if limit <= 0 || limit > len(ranked) {
		limit = len(ranked)
	}
	recommendations := make([]JobRecommendation, 0, limit)
	for _, r := range ranked[:limit] {
		recommendations = append(recommendations, JobRecommendation{
			Job:    postByID[r.Job.ID],
			Result: r.Result,
		})
	}
	return recommendations, nil
}
