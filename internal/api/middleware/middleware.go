package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/teamroster/internal/api/apierr"
	"github.com/mcoot/teamroster/internal/middleware"
)

// Logging logs each API request with its request ID
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger.With(slog.String("surface", "api")))
}

// Recovery turns handler panics into a JSON INTERNAL_ERROR envelope
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
