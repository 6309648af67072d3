package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mcoot/teamroster/internal/api/request"
	"github.com/mcoot/teamroster/internal/api/response"
	"github.com/mcoot/teamroster/internal/services/roster"
)

// SubstitutionHandler handles player swaps
type SubstitutionHandler struct {
	roster *roster.Service
}

// NewSubstitutionHandler creates a new substitution handler
func NewSubstitutionHandler(rosterService *roster.Service) *SubstitutionHandler {
	return &SubstitutionHandler{
		roster: rosterService,
	}
}

// Create handles POST /api/v1/substitutions
func (h *SubstitutionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.SubstitutionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Incoming == "" || req.Outgoing == "" {
		WriteError(w, NewInvalidRequestError("incoming and outgoing are required"))
		return
	}

	sub, err := h.roster.Substitute(r.Context(), req.Incoming, req.Outgoing)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubstitutionFromService(sub))
}
