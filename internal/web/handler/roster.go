package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mcoot/teamroster/internal/model"
	"github.com/mcoot/teamroster/internal/services/roster"
	"github.com/mcoot/teamroster/internal/web/middleware"
	"github.com/mcoot/teamroster/internal/web/templates/components"
	"github.com/mcoot/teamroster/internal/web/templates/layout"
	"github.com/mcoot/teamroster/internal/web/templates/pages"
)

const msgAllFieldsRequired = "All fields are required."

// RosterHandler handles the roster page and its form actions
type RosterHandler struct {
	roster *roster.Service
	logger *slog.Logger
}

// NewRosterHandler creates a new RosterHandler
func NewRosterHandler(rosterService *roster.Service, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{
		roster: rosterService,
		logger: logger,
	}
}

// Home renders the roster page
func (h *RosterHandler) Home(w http.ResponseWriter, r *http.Request) {
	form := r.URL.Query().Get("form")
	if !components.ValidForm(form) {
		form = components.FormAdd
	}

	data := pages.RosterData{
		PageData: layout.PageData{
			Title: "Roster",
			Flash: middleware.GetFlash(r.Context()),
		},
		Players: h.roster.ListSorted(r.Context()),
		Summary: h.roster.Summary(r.Context()),
		Form:    form,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Roster(data).Render(r.Context(), w); err != nil {
		h.logger.Error("failed to render roster page", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// Add handles the add player form
func (h *RosterHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, components.FormAdd, "Invalid form submission.")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	age := strings.TrimSpace(r.FormValue("age"))
	position := strings.TrimSpace(r.FormValue("position"))
	status := strings.TrimSpace(r.FormValue("status"))
	if name == "" || age == "" || position == "" || status == "" {
		h.fail(w, r, components.FormAdd, msgAllFieldsRequired)
		return
	}

	player, err := model.ParsePlayerInput(name, age, position, status)
	if err == nil {
		_, err = h.roster.Add(r.Context(), player)
	}
	if err != nil {
		h.fail(w, r, components.FormAdd, h.errorMessage(err, "Could not add player"))
		return
	}

	h.succeed(w, r, components.FormAdd, "Player added.")
}

// Remove handles the per-row remove button
func (h *RosterHandler) Remove(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		h.fail(w, r, "", "Choose a player to remove.")
		return
	}

	removed, err := h.roster.Remove(r.Context(), name)
	if err != nil {
		h.fail(w, r, "", h.errorMessage(err, "Could not remove player"))
		return
	}

	h.succeed(w, r, "", fmt.Sprintf("Player %s removed.", removed.Name))
}

// Reposition handles the assign position form
func (h *RosterHandler) Reposition(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	position := strings.TrimSpace(r.FormValue("position"))
	if name == "" || position == "" {
		h.fail(w, r, components.FormPosition, "Enter the player's name and the new position.")
		return
	}

	player, err := h.roster.Reposition(r.Context(), name, position)
	if err != nil {
		h.fail(w, r, components.FormPosition, h.errorMessage(err, "Could not assign position"))
		return
	}

	h.succeed(w, r, components.FormPosition,
		fmt.Sprintf("%s's position updated to %s.", player.Name, player.Position))
}

// Substitute handles the substitution form
func (h *RosterHandler) Substitute(w http.ResponseWriter, r *http.Request) {
	incoming := strings.TrimSpace(r.FormValue("incoming"))
	outgoing := strings.TrimSpace(r.FormValue("outgoing"))
	if incoming == "" || outgoing == "" {
		h.fail(w, r, components.FormSubstitute, "Enter both the incoming and the outgoing player.")
		return
	}

	sub, err := h.roster.Substitute(r.Context(), incoming, outgoing)
	if errors.Is(err, model.ErrNotFound) {
		h.fail(w, r, components.FormSubstitute,
			"Could not make substitution: one or both players are not on the roster. Check the names entered.")
		return
	}
	if err != nil {
		h.fail(w, r, components.FormSubstitute, h.errorMessage(err, "Could not make substitution"))
		return
	}

	h.succeed(w, r, components.FormSubstitute,
		fmt.Sprintf("Substitution made: %s for %s.", sub.Outgoing.Name, sub.Incoming.Name))
}

// errorMessage turns a roster error into a user-facing message
func (h *RosterHandler) errorMessage(err error, prefix string) string {
	var verr *model.ValidationError
	var serr *model.SwapError
	switch {
	case errors.As(err, &verr):
		return fmt.Sprintf("%s: %s %s.", prefix, verr.Field, verr.Reason)
	case errors.As(err, &serr):
		return fmt.Sprintf("%s: %s.", prefix, serr.Reason)
	case errors.Is(err, model.ErrDuplicateName):
		return "That player is already on the team."
	case errors.Is(err, model.ErrNotFound):
		return prefix + ": the player is not on the team."
	default:
		h.logger.Error("roster operation failed", slog.String("error", err.Error()))
		return prefix + ". Please try again."
	}
}

func (h *RosterHandler) succeed(w http.ResponseWriter, r *http.Request, form, message string) {
	middleware.SetFlash(w, middleware.FlashSuccess, message)
	redirect(w, r, form)
}

func (h *RosterHandler) fail(w http.ResponseWriter, r *http.Request, form, message string) {
	middleware.SetFlash(w, middleware.FlashError, message)
	redirect(w, r, form)
}

// redirect sends the browser back to the roster page with the given form open.
// HTMX requests get an HX-Redirect instead of a 303.
func redirect(w http.ResponseWriter, r *http.Request, form string) {
	location := "/"
	if form != "" {
		location = "/?form=" + form
	}

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", location)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, location, http.StatusSeeOther)
}
