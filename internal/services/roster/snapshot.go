package roster

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/mcoot/teamroster/internal/model"
)

// EncodeSnapshot serializes the full roster as a compact JSON array.
// An empty roster encodes as "[]".
func EncodeSnapshot(players []model.Player) (string, error) {
	if players == nil {
		players = []model.Player{}
	}
	data, err := json.Marshal(players)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// snapshotEntry mirrors model.Player with each field left raw, so one
// mistyped field does not cost the whole entry
type snapshotEntry struct {
	Name     json.RawMessage `json:"name"`
	Age      json.RawMessage `json:"age"`
	Position json.RawMessage `json:"position"`
	Status   json.RawMessage `json:"status"`
}

// DecodeSnapshot parses a snapshot, keeping every object entry with a non-blank
// string name. Fields of the wrong type decode as their zero value. Empty or
// corrupt input yields an empty roster.
func DecodeSnapshot(data string) []model.Player {
	players := []model.Player{}
	if strings.TrimSpace(data) == "" {
		return players
	}

	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return players
	}

	for _, raw := range entries {
		var e snapshotEntry
		if err := json.Unmarshal(raw, &e); err != nil {
			continue
		}
		name := rawString(e.Name)
		if strings.TrimSpace(name) == "" {
			continue
		}
		players = append(players, model.Player{
			Name:     name,
			Age:      rawAge(e.Age),
			Position: rawString(e.Position),
			Status:   model.Status(rawString(e.Status)),
		})
	}
	return players
}

func rawString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// rawAge accepts a whole JSON number or a numeric string
func rawAge(raw json.RawMessage) int {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n == math.Trunc(n) && n >= math.MinInt32 && n <= math.MaxInt32 {
			return int(n)
		}
		return 0
	}
	age, err := strconv.Atoi(strings.TrimSpace(rawString(raw)))
	if err != nil {
		return 0
	}
	return age
}

// Digest returns the hex BLAKE2b-256 hash of a snapshot
func Digest(snapshot string) string {
	sum := blake2b.Sum256([]byte(snapshot))
	return hex.EncodeToString(sum[:])
}
