package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/talent-match/internal/matching"
)

// handleGetWeights returns the active weight configuration with defaults
// applied for any factor without a stored row
func (s *Server) handleGetWeights(w http.ResponseWriter, r *http.Request) {
	weights, err := s.weights.Load(r.Context())
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, weights)
}

// handleUpdateWeights applies an admin weight update. The body is a partial
// or full factor->weight map; unknown keys are ignored, and a negative or
// non-finite value rejects the whole update without touching storage.
func (s *Server) handleUpdateWeights(w http.ResponseWriter, r *http.Request) {
	var entries matching.FactorWeights
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(entries) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "At least one weight entry is required")
		return
	}

	updated, err := s.weights.Update(r.Context(), entries)
	if err != nil {
		s.serviceError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, updated)
}
