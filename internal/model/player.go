package model

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// Status is a player's participation state
type Status string

const (
	StatusStarter    Status = "starter"    // currently in active play
	StatusSubstitute Status = "substitute" // on the bench, eligible to swap in
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	return s == StatusStarter || s == StatusSubstitute
}

// ParseStatus converts raw input into a Status, ignoring case and surrounding space
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusStarter:
		return StatusStarter, nil
	case StatusSubstitute:
		return StatusSubstitute, nil
	case "":
		return "", NewValidationError("status", "is required")
	default:
		return "", NewValidationError("status", "must be starter or substitute")
	}
}

// Player is a single roster entry. Name is the case-insensitive key.
type Player struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Position string `json:"position"`
	Status   Status `json:"status"`
}

// IsStarter reports whether the player is in active play
func (p Player) IsStarter() bool {
	return p.Status == StatusStarter
}

// HasName reports whether the player's name matches name under Unicode case
// folding, ignoring surrounding space
func (p Player) HasName(name string) bool {
	return foldName(p.Name) == foldName(name)
}

// foldName builds a fresh Caser per call; Casers are not safe for concurrent use
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Normalize returns a copy with text fields trimmed
func (p Player) Normalize() Player {
	p.Name = strings.TrimSpace(p.Name)
	p.Position = strings.TrimSpace(p.Position)
	p.Status = Status(strings.ToLower(strings.TrimSpace(string(p.Status))))
	return p
}

// Validate checks that every field is populated and well-formed
func (p Player) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return NewValidationError("name", "is required")
	}
	if p.Age <= 0 {
		return NewValidationError("age", "must be a positive integer")
	}
	if strings.TrimSpace(p.Position) == "" {
		return NewValidationError("position", "is required")
	}
	if !p.Status.Valid() {
		if p.Status == "" {
			return NewValidationError("status", "is required")
		}
		return NewValidationError("status", "must be starter or substitute")
	}
	return nil
}

// ParsePlayerInput builds a Player from raw form values.
// The age must parse as a positive base-10 integer.
func ParsePlayerInput(name, age, position, status string) (Player, error) {
	p := Player{
		Name:     strings.TrimSpace(name),
		Position: strings.TrimSpace(position),
	}
	if p.Name == "" {
		return Player{}, NewValidationError("name", "is required")
	}

	age = strings.TrimSpace(age)
	if age == "" {
		return Player{}, NewValidationError("age", "is required")
	}
	n, err := strconv.Atoi(age)
	if err != nil || n <= 0 {
		return Player{}, NewValidationError("age", "must be a positive integer")
	}
	p.Age = n

	if p.Position == "" {
		return Player{}, NewValidationError("position", "is required")
	}

	st, err := ParseStatus(status)
	if err != nil {
		return Player{}, err
	}
	p.Status = st

	return p, nil
}
