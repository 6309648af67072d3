package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/teamroster/internal/middleware"
	"github.com/mcoot/teamroster/internal/web/templates/layout"
	"github.com/mcoot/teamroster/internal/web/templates/pages"
)

// Recovery creates panic recovery middleware for the web interface.
// The error page is rendered inside the normal layout.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, r *http.Request, _ any) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		page := pages.Error(layout.PageData{Title: "Error"}, "The roster could not be shown. Please try again.")
		if err := page.Render(r.Context(), w); err != nil {
			logger.Error("failed to render error page", slog.String("error", err.Error()))
		}
	})
}
