package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/teamalloc/internal/model"
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

// Error codes
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeInvalidRoster    = "INVALID_ROSTER"
	CodeCapacityMismatch = "CAPACITY_MISMATCH"
	CodeRunNotFound      = "RUN_NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
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

// toHTTPError converts an error to an httpError. Input errors keep their
// wrapped detail as the message.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrEmptyPersonID),
		errors.Is(err, model.ErrDuplicatePerson),
		errors.Is(err, model.ErrUnknownGuest),
		errors.Is(err, model.ErrSelfInvite),
		errors.Is(err, model.ErrPersonInMultiplePairs):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRoster, err.Error()}}
	case errors.Is(err, model.ErrInvalidLayout),
		errors.Is(err, model.ErrInvalidTeamLabel):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, err.Error()}}
	case errors.Is(err, model.ErrCapacityMismatch),
		errors.Is(err, model.ErrNoCapacity):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeCapacityMismatch, err.Error()}}
	case errors.Is(err, model.ErrRunNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRunNotFound, "Run not found"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
