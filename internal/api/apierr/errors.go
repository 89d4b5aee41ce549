package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/services/auth"
	"github.com/prathamesh424/pixelwalk-go/internal/services/translate"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest        = "INVALID_REQUEST"
	CodeInvalidDirection      = "INVALID_DIRECTION"
	CodeInvalidBounds         = "INVALID_BOUNDS"
	CodeUnauthorized          = "UNAUTHORIZED"
	CodePlayerNotFound        = "PLAYER_NOT_FOUND"
	CodeMapNotFound           = "MAP_NOT_FOUND"
	CodeMapNameTaken          = "MAP_NAME_TAKEN"
	CodeThreadNotFound        = "THREAD_NOT_FOUND"
	CodeEmptyMessage          = "EMPTY_MESSAGE"
	CodeSelfMessage           = "SELF_MESSAGE"
	CodeIdentityExists        = "IDENTITY_EXISTS"
	CodeInvalidCredentials    = "INVALID_CREDENTIALS"
	CodeTranslatorUnavailable = "TRANSLATOR_UNAVAILABLE"
	CodeInternalError         = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrMapNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMapNotFound, "Map not found"}}
	case errors.Is(err, model.ErrThreadNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeThreadNotFound, "Thread not found"}}
	case errors.Is(err, model.ErrMapNameTaken):
		return &httpError{http.StatusConflict, APIError{CodeMapNameTaken, "A map with this name already exists"}}
	case errors.Is(err, model.ErrInvalidDirection):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidDirection, "Direction must be up, down, left, or right"}}
	case errors.Is(err, model.ErrInvalidBounds):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidBounds, "Map dimensions must be positive"}}
	case errors.Is(err, model.ErrEmptyMessage):
		return &httpError{http.StatusBadRequest, APIError{CodeEmptyMessage, "Message body is empty"}}
	case errors.Is(err, model.ErrSelfMessage):
		return &httpError{http.StatusBadRequest, APIError{CodeSelfMessage, "Cannot message yourself"}}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid identity or password"}}
	case errors.Is(err, auth.ErrInvalidSession):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired session"}}
	case errors.Is(err, auth.ErrIdentityExists):
		return &httpError{http.StatusConflict, APIError{CodeIdentityExists, "Identity already registered"}}

	// Translation upstream failures
	case errors.Is(err, translate.ErrNotConfigured):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeTranslatorUnavailable, "Translation service not configured"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
