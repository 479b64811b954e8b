// Package server provides the HTTP API for the candidate screener.
package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/candidate-screener/internal/db"
	"github.com/jonathan/candidate-screener/internal/interview"
	"github.com/jonathan/candidate-screener/internal/schemas"
	"github.com/jonathan/candidate-screener/internal/screening"
	"github.com/jonathan/candidate-screener/internal/types"
)

// ErrPersistenceDisabled is returned by storage routes when no database is configured
var ErrPersistenceDisabled = errors.New("persistence is not configured")

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
	var (
		verr   *ErrValidation
		fields validator.ValidationErrors
		schema *schemas.ValidationError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &verr), errors.As(err, &fields), errors.As(err, &schema),
		errors.Is(err, types.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, db.ErrNotFound), errors.Is(err, interview.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, interview.ErrSessionCompleted):
		return http.StatusConflict
	case errors.Is(err, ErrPersistenceDisabled), errors.Is(err, screening.ErrLLMDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the client-facing message for err. Internal errors are not
// echoed back.
func errorMessage(err error) string {
	var fields validator.ValidationErrors
	if errors.As(err, &fields) {
		msgs := make([]string, 0, len(fields))
		for _, f := range fields {
			msgs = append(msgs, fmt.Sprintf("%s failed %q", f.Namespace(), f.Tag()))
		}
		return "validation error: " + strings.Join(msgs, "; ")
	}
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}
