package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/teamroster/internal/services/roster"
	"github.com/mcoot/teamroster/internal/web/handler"
	"github.com/mcoot/teamroster/internal/web/middleware"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger        *slog.Logger
	RosterService *roster.Service
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Apply global middleware to all routes
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.Flash())

	rosterHandler := handler.NewRosterHandler(cfg.RosterService, cfg.Logger)

	r.HandleFunc("/", rosterHandler.Home).Methods(http.MethodGet)
	r.HandleFunc("/players", rosterHandler.Add).Methods(http.MethodPost)
	r.HandleFunc("/players/remove", rosterHandler.Remove).Methods(http.MethodPost)
	r.HandleFunc("/players/position", rosterHandler.Reposition).Methods(http.MethodPost)
	r.HandleFunc("/substitutions", rosterHandler.Substitute).Methods(http.MethodPost)

	return r
}
