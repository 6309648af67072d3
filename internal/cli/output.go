package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) error {
	switch o.format {
	case FormatJSON:
		return o.printJSON(data)
	case FormatYAML:
		return o.printYAML(data)
	default:
		return o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) error {
	switch o.format {
	case FormatJSON:
		return o.printJSON(Message{Message: msg})
	case FormatYAML:
		return o.printYAML(Message{Message: msg})
	default:
		_, err := fmt.Fprintln(o.w, msg)
		return err
	}
}

func (o *Output) printJSON(data any) error {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

func (o *Output) printYAML(data any) error {
	enc := yaml.NewEncoder(o.w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return err
	}
	return enc.Close()
}

func (o *Output) printText(data any) error {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Roster:
		o.printRoster(v)
	case Substitution:
		fmt.Fprintf(o.w, "Substitution made: %s for %s.\n", v.Outgoing.Name, v.Incoming.Name)
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
	default:
		// Fallback to JSON for unknown types
		return o.printJSON(data)
	}
	return nil
}

// Player response type (matches API)
type Player struct {
	Name     string `json:"name" yaml:"name"`
	Age      int    `json:"age" yaml:"age"`
	Position string `json:"position" yaml:"position"`
	Status   string `json:"status" yaml:"status"`
}

// Summary response type
type Summary struct {
	Starters    int `json:"starters" yaml:"starters"`
	Substitutes int `json:"substitutes" yaml:"substitutes"`
	Total       int `json:"total" yaml:"total"`
}

// Roster response type
type Roster struct {
	Players []Player `json:"players" yaml:"players"`
	Summary Summary  `json:"summary" yaml:"summary"`
}

// Substitution response type
type Substitution struct {
	Incoming Player `json:"incoming" yaml:"incoming"`
	Outgoing Player `json:"outgoing" yaml:"outgoing"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status" yaml:"status"`
}

// Message wraps a plain confirmation for structured output
type Message struct {
	Message string `json:"message" yaml:"message"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Fprintf(o.w, "Name: %s, Age: %d, Position: %s, Status: %s\n", p.Name, p.Age, p.Position, p.Status)
}

func (o *Output) printRoster(r Roster) {
	if len(r.Players) == 0 {
		fmt.Fprintln(o.w, "No players in the roster, or none of them has a defined status.")
		return
	}
	for _, p := range r.Players {
		marker := " "
		if p.Status == "starter" {
			marker = "*"
		}
		fmt.Fprintf(o.w, "%s ", marker)
		o.printPlayer(p)
	}
	fmt.Fprintf(o.w, "Starters: %d | Substitutes: %d | Total: %d\n",
		r.Summary.Starters, r.Summary.Substitutes, r.Summary.Total)
}
