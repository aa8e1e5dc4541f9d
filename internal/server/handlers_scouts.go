package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateScoutRequest represents the request body for POST /scouts
type CreateScoutRequest struct {
	JobID      string `json:"job_id" validate:"required,uuid4"`
	EngineerID string `json:"engineer_id" validate:"required,uuid4"`
	Message    string `json:"message,omitempty" validate:"max=2000"`
}

// Validate validates the CreateScoutRequest using the validator.
func (r *CreateScoutRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleCreateScout creates a company-initiated scout record, scored at
// creation like an application
func (s *Server) handleCreateScout(w http.ResponseWriter, r *http.Request) {
	var req CreateScoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID format")
		return
	}
	engineerID, err := uuid.Parse(req.EngineerID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid engineer ID format")
		return
	}

	scout, err := s.matches.CreateScout(r.Context(), jobID, engineerID, req.Message)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, scout)
}

// handleGetScout returns a stored scout record
func (s *Server) handleGetScout(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid scout ID format")
		return
	}

	scout, err := s.matches.db.GetScout(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if scout == nil {
		s.serviceError(w, &ErrScoutNotFound{ScoutID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, scout)
}
