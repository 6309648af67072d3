package response

import (
	"github.com/mcoot/teamroster/internal/model"
	"github.com/mcoot/teamroster/internal/services/roster"
)

// Player represents a player in API responses
type Player struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Position string `json:"position"`
	Status   string `json:"status"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		Name:     p.Name,
		Age:      p.Age,
		Position: p.Position,
		Status:   string(p.Status),
	}
}

// Summary represents roster counts
type Summary struct {
	Starters    int `json:"starters"`
	Substitutes int `json:"substitutes"`
	Total       int `json:"total"`
}

// SummaryFromService converts roster.Summary
func SummaryFromService(s roster.Summary) Summary {
	return Summary{
		Starters:    s.Starters,
		Substitutes: s.Substitutes,
		Total:       s.Total,
	}
}

// Roster is the response for the player list endpoint
type Roster struct {
	Players []Player `json:"players"`
	Summary Summary  `json:"summary"`
}

// RosterFromModel builds a Roster from sorted players and a summary
func RosterFromModel(players []model.Player, summary roster.Summary) Roster {
	out := make([]Player, len(players))
	for i, p := range players {
		out[i] = PlayerFromModel(p)
	}
	return Roster{
		Players: out,
		Summary: SummaryFromService(summary),
	}
}

// Substitution is the response for a completed swap
type Substitution struct {
	Incoming Player `json:"incoming"`
	Outgoing Player `json:"outgoing"`
}

// SubstitutionFromService converts roster.Substitution
func SubstitutionFromService(s roster.Substitution) Substitution {
	return Substitution{
		Incoming: PlayerFromModel(s.Incoming),
		Outgoing: PlayerFromModel(s.Outgoing),
	}
}

// Health is the response for the health endpoint
type Health struct {
	Status string `json:"status"`
}
