package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/teamroster/internal/api/handler"
	"github.com/mcoot/teamroster/internal/api/middleware"
	"github.com/mcoot/teamroster/internal/api/response"
	"github.com/mcoot/teamroster/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger        *slog.Logger
	RosterService *roster.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	// Match on the escaped path so a name containing "/" stays one segment
	r := mux.NewRouter().UseEncodedPath()

	playerHandler := handler.NewPlayerHandler(cfg.RosterService)
	substitutionHandler := handler.NewSubstitutionHandler(cfg.RosterService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/players/{name}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{name}", playerHandler.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/players/{name}/position", playerHandler.Reposition).Methods(http.MethodPatch)

	api.HandleFunc("/substitutions", substitutionHandler.Create).Methods(http.MethodPost)

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
