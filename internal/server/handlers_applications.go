package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CreateApplicationRequest represents the request body for POST /applications
type CreateApplicationRequest struct {
	EngineerID string `json:"engineer_id" validate:"required,uuid4"`
	JobID      string `json:"job_id" validate:"required,uuid4"`
	Message    string `json:"message,omitempty" validate:"max=2000"`
}

// Validate validates the CreateApplicationRequest using the validator.
func (r *CreateApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// handleCreateApplication creates an application record with its match score
// computed and persisted at creation time
func (s *Server) handleCreateApplication(w http.ResponseWriter, r *http.Request) {
	var req CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	engineerID, err := uuid.Parse(req.EngineerID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid engineer ID format")
		return
	}
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job ID format")
		return
	}

	application, err := s.matches.CreateApplication(r.Context(), engineerID, jobID, req.Message)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, application)
}

// handleGetApplication returns a stored application record. The score on it
// is the one persisted at creation; it is never recomputed on read.
func (s *Server) handleGetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid application ID format")
		return
	}

	application, err := s.matches.db.GetApplication(r.Context(), id)
	if err != nil {
		s.serviceError(w, err)
		return
	}
	if application == nil {
		s.serviceError(w, &ErrApplicationNotFound{ApplicationID: id})
		return
	}

	s.jsonResponse(w, http.StatusOK, application)
}
