package handler

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/teamroster/internal/api/request"
	"github.com/mcoot/teamroster/internal/api/response"
	"github.com/mcoot/teamroster/internal/model"
	"github.com/mcoot/teamroster/internal/services/roster"
)

// PlayerHandler handles roster endpoints
type PlayerHandler struct {
	roster *roster.Service
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(rosterService *roster.Service) *PlayerHandler {
	return &PlayerHandler{
		roster: rosterService,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	digest, err := h.roster.Digest(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	etag := `"` + digest + `"`
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		response.NotModified(w, etag)
		return
	}

	players := h.roster.ListSorted(r.Context())
	summary := h.roster.Summary(r.Context())

	w.Header().Set("ETag", etag)
	response.JSON(w, http.StatusOK, response.RosterFromModel(players, summary))
}

// Get handles GET /api/v1/players/{name}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	name, err := playerName(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.roster.Get(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Add handles POST /api/v1/players
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.roster.Add(r.Context(), model.Player{
		Name:     req.Name,
		Age:      req.Age,
		Position: req.Position,
		Status:   model.Status(strings.ToLower(strings.TrimSpace(req.Status))),
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Remove handles DELETE /api/v1/players/{name}
func (h *PlayerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	name, err := playerName(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if _, err = h.roster.Remove(r.Context(), name); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Reposition handles PATCH /api/v1/players/{name}/position
func (h *PlayerHandler) Reposition(w http.ResponseWriter, r *http.Request) {
	name, err := playerName(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req request.RepositionRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.roster.Reposition(r.Context(), name, req.Position)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// playerName decodes the {name} route variable, which arrives still escaped
func playerName(r *http.Request) (string, error) {
	name, err := url.PathUnescape(mux.Vars(r)["name"])
	if err != nil {
		return "", NewInvalidRequestError("invalid player name in path")
	}
	return name, nil
}

// etagMatches reports whether an If-None-Match header names the given tag
func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || strings.TrimPrefix(candidate, "W/") == etag {
			return true
		}
	}
	return false
}
