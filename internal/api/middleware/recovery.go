package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/teamalloc/internal/api/apierr"
	"github.com/mcoot/teamalloc/internal/middleware"
)

// Recovery creates panic recovery middleware for the API
// Returns JSON error responses on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

// Logging logs each API request with its request ID
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}

// RequestID tags each API request with an ID
func RequestID(next http.Handler) http.Handler {
	return middleware.RequestID(next)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	apierr.WriteError(w, apierr.NewInternalError())
}
