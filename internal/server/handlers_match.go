package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jonathan/talent-match/internal/matching"
)

// ScoreMatchRequest represents the request body for /matches/score
type ScoreMatchRequest struct {
	CandidateID string `json:"candidate_id" validate:"required,uuid4"`
	TargetID    string `json:"target_id" validate:"required,uuid4"`
}

// Validate validates the ScoreMatchRequest using the validator.
func (r *ScoreMatchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ScoreMatchResponse represents the response for /matches/score
type ScoreMatchResponse struct {
	Score     int                `json:"score"`
	Breakdown matching.Breakdown `json:"breakdown"`
}

// handleScoreMatch computes a match score without persisting anything
func (s *Server) handleScoreMatch(w http.ResponseWriter, r *http.Request) {
	var req ScoreMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	engineerID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid candidate ID format")
		return
	}
	jobID, err := uuid.Parse(req.TargetID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid target ID format")
		return
	}

	result, err := s.matches.Score(r.Context(), engineerID, jobID)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, ScoreMatchResponse{
		Score:     result.Score,
		Breakdown: result.Breakdown,
	})
}

// handleRecommendations returns open jobs ranked by live match score for one engineer
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	engineerID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid engineer ID format")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	recommendations, err := s.matches.RecommendJobs(r.Context(), engineerID, limit)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"engineer_id":     engineerID.String(),
		"recommendations": recommendations,
	})
}
