package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/talent-match/internal/matching"
)

// ErrEngineerNotFound indicates the engineer referenced by a request does not exist
type ErrEngineerNotFound struct {
	EngineerID uuid.UUID
}

func (e *ErrEngineerNotFound) Error() string {
	return fmt.Sprintf("engineer not found: %s", e.EngineerID)
}

// ErrJobNotFound indicates the job post referenced by a request does not exist
type ErrJobNotFound struct {
	JobID uuid.UUID
}

func (e *ErrJobNotFound) Error() string {
	return fmt.Sprintf("job post not found: %s", e.JobID)
}

// ErrApplicationNotFound indicates the application record does not exist
type ErrApplicationNotFound struct {
	ApplicationID uuid.UUID
}

func (e *ErrApplicationNotFound) Error() string {
	return fmt.Sprintf("application not found: %s", e.ApplicationID)
}

// ErrScoutNotFound indicates the scout record does not exist
type ErrScoutNotFound struct {
	ScoutID uuid.UUID
}

func (e *ErrScoutNotFound) Error() string {
	return fmt.Sprintf("scout not found: %s", e.ScoutID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var invalidWeight *matching.ErrInvalidWeight
	if errors.As(err, &invalidWeight) {
		return http.StatusBadRequest
	}
	var missingRef *matching.ErrMissingReference
	if errors.As(err, &missingRef) {
		// The services resolve references before scoring, so a missing
		// reference reaching the engine is a server-side bug.
		return http.StatusInternalServerError
	}

	switch err.(type) {
	case *ErrEngineerNotFound, *ErrJobNotFound, *ErrApplicationNotFound, *ErrScoutNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
