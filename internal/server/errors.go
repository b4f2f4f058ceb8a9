package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/portfolio-studio/internal/db"
	"github.com/jonathan/portfolio-studio/internal/llm"
	"github.com/jonathan/portfolio-studio/internal/parsing"
	"github.com/jonathan/portfolio-studio/internal/pipeline"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// HTTPStatus maps domain errors to HTTP status codes. Caller mistakes are
// 4xx; a model that failed to deliver is 503 and a model that delivered
// garbage is 502, so clients can tell "retry later" from "report a bug".
func HTTPStatus(err error) int {
	var (
		validationErr  *pipeline.ValidationError
		emptyErr       *pipeline.EmptyInputError
		notFoundErr    *pipeline.NotFoundError
		unavailableErr *llm.UnavailableError
		parseErr       *parsing.ParseError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &emptyErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &unavailableErr):
		return http.StatusServiceUnavailable
	case errors.As(err, &parseErr):
		return http.StatusBadGateway
	}

	switch err.(type) {
	case *ErrEmailAlreadyExists:
		return http.StatusConflict
	case *ErrInvalidCredentials:
		return http.StatusUnauthorized
	case *ErrUserNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse writes an error as JSON with the status from HTTPStatus.
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		s.logger.Error("internal error", zap.Error(err))
		message = "internal server error"
	}
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// mapStoreError converts storage sentinels to API error types.
func mapStoreError(err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return &pipeline.NotFoundError{Resource: "portfolio"}
	}
	return err
}
