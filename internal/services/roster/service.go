package roster

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/mcoot/teamroster/internal/model"
	"github.com/mcoot/teamroster/internal/storage"
)

// DefaultSnapshotKey is the storage slot holding the roster
const DefaultSnapshotKey = "players"

// Config holds roster service settings
type Config struct {
	// SnapshotKey names the storage slot; defaults to DefaultSnapshotKey
	SnapshotKey string
}

// DefaultConfig returns the default roster configuration
func DefaultConfig() Config {
	return Config{SnapshotKey: DefaultSnapshotKey}
}

// Substitution is the outcome of a successful swap, holding both players after the change
type Substitution struct {
	Incoming model.Player
	Outgoing model.Player
}

// Summary counts players by status
type Summary struct {
	Starters    int
	Substitutes int
	Total       int
}

// Service is the authoritative roster store. Every mutation reads the snapshot,
// applies the change and writes the full roster back.
type Service struct {
	storage storage.Storage
	key     string
	logger  *slog.Logger

	// mu serializes read-modify-write cycles
	mu sync.Mutex
}

// New creates a new roster Service
func New(storage storage.Storage, cfg Config, logger *slog.Logger) *Service {
	key := cfg.SnapshotKey
	if key == "" {
		key = DefaultSnapshotKey
	}
	return &Service{
		storage: storage,
		key:     key,
		logger:  logger.With(slog.String("component", "roster")),
	}
}

// Load returns the persisted roster in insertion order. It never fails:
// a missing, unreadable or corrupt snapshot yields an empty roster.
func (s *Service) Load(ctx context.Context) []model.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Save overwrites the persisted roster with players
func (s *Service) Save(ctx context.Context, players []model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, players)
}

// Get looks up a player by name, ignoring case
func (s *Service) Get(ctx context.Context, name string) (model.Player, error) {
	players := s.Load(ctx)
	i := indexOf(players, name)
	if i < 0 {
		return model.Player{}, model.ErrNotFound
	}
	return players[i], nil
}

// Add validates and appends a new player
func (s *Service) Add(ctx context.Context, player model.Player) (model.Player, error) {
	player = player.Normalize()
	if err := player.Validate(); err != nil {
		return model.Player{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.loadForUpdate(ctx)
	if err != nil {
		return model.Player{}, err
	}
	if indexOf(players, player.Name) >= 0 {
		return model.Player{}, model.ErrDuplicateName
	}

	if err := s.save(ctx, append(players, player)); err != nil {
		return model.Player{}, err
	}

	s.logger.Info("player added",
		slog.String("player", player.Name),
		slog.String("status", string(player.Status)))
	return player, nil
}

// Remove deletes the named player and returns it
func (s *Service) Remove(ctx context.Context, name string) (model.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.loadForUpdate(ctx)
	if err != nil {
		return model.Player{}, err
	}
	i := indexOf(players, name)
	if i < 0 {
		return model.Player{}, model.ErrNotFound
	}
	removed := players[i]

	if err := s.save(ctx, slices.Delete(players, i, i+1)); err != nil {
		return model.Player{}, err
	}

	s.logger.Info("player removed", slog.String("player", removed.Name))
	return removed, nil
}

// Reposition assigns a new position to the named player
func (s *Service) Reposition(ctx context.Context, name, position string) (model.Player, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return model.Player{}, model.NewValidationError("position", "is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.loadForUpdate(ctx)
	if err != nil {
		return model.Player{}, err
	}
	i := indexOf(players, name)
	if i < 0 {
		return model.Player{}, model.ErrNotFound
	}
	players[i].Position = position

	if err := s.save(ctx, players); err != nil {
		return model.Player{}, err
	}

	s.logger.Info("player repositioned",
		slog.String("player", players[i].Name),
		slog.String("position", position))
	return players[i], nil
}

// ListSorted returns starters before substitutes, each group in insertion order.
// Players without a valid status are left out.
func (s *Service) ListSorted(ctx context.Context) []model.Player {
	return sortByStatus(s.Load(ctx))
}

// Substitute brings a substitute on in place of a starter by swapping their statuses
func (s *Service) Substitute(ctx context.Context, incomingName, outgoingName string) (Substitution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	players, err := s.loadForUpdate(ctx)
	if err != nil {
		return Substitution{}, err
	}
	in := indexOf(players, incomingName)
	out := indexOf(players, outgoingName)
	if in < 0 || out < 0 {
		return Substitution{}, model.ErrNotFound
	}

	incoming, outgoing := players[in], players[out]
	switch {
	case incoming.Status == outgoing.Status:
		return Substitution{}, &model.SwapError{Reason: "both players have the same status"}
	case incoming.Status != model.StatusSubstitute:
		return Substitution{}, &model.SwapError{Reason: "incoming player must be a substitute"}
	case outgoing.Status != model.StatusStarter:
		return Substitution{}, &model.SwapError{Reason: "outgoing player must be a starter"}
	}

	players[in].Status, players[out].Status = outgoing.Status, incoming.Status

	if err := s.save(ctx, players); err != nil {
		return Substitution{}, err
	}

	s.logger.Info("substitution made",
		slog.String("incoming", players[in].Name),
		slog.String("outgoing", players[out].Name))
	return Substitution{Incoming: players[in], Outgoing: players[out]}, nil
}

// Summary counts the loaded roster by status
func (s *Service) Summary(ctx context.Context) Summary {
	var sum Summary
	for _, p := range s.Load(ctx) {
		sum.Total++
		switch p.Status {
		case model.StatusStarter:
			sum.Starters++
		case model.StatusSubstitute:
			sum.Substitutes++
		}
	}
	return sum
}

// Digest returns a content hash of the current roster, stable across re-saves
func (s *Service) Digest(ctx context.Context) (string, error) {
	snapshot, err := EncodeSnapshot(s.Load(ctx))
	if err != nil {
		return "", err
	}
	return Digest(snapshot), nil
}

// load reads the snapshot; callers must hold s.mu
func (s *Service) load(ctx context.Context) []model.Player {
	players, err := s.loadForUpdate(ctx)
	if err != nil {
		s.logger.Warn("could not read roster snapshot", slog.String("error", err.Error()))
		return []model.Player{}
	}
	return players
}

// loadForUpdate reads the snapshot ahead of a write and reports storage
// failures; a missing slot is an empty roster. Callers must hold s.mu.
func (s *Service) loadForUpdate(ctx context.Context) ([]model.Player, error) {
	data, err := s.storage.GetSnapshot(ctx, s.key)
	if err != nil {
		if errors.Is(err, model.ErrSnapshotNotFound) {
			return []model.Player{}, nil
		}
		return nil, fmt.Errorf("read roster snapshot: %w", err)
	}
	return DecodeSnapshot(data), nil
}

// save writes the snapshot; callers must hold s.mu
func (s *Service) save(ctx context.Context, players []model.Player) error {
	data, err := EncodeSnapshot(players)
	if err != nil {
		return err
	}
	return s.storage.SaveSnapshot(ctx, s.key, data)
}

func indexOf(players []model.Player, name string) int {
	if strings.TrimSpace(name) == "" {
		return -1
	}
	return slices.IndexFunc(players, func(p model.Player) bool {
		return p.HasName(name)
	})
}

func sortByStatus(players []model.Player) []model.Player {
	sorted := make([]model.Player, 0, len(players))
	for _, p := range players {
		if p.Status == model.StatusStarter {
			sorted = append(sorted, p)
		}
	}
	for _, p := range players {
		if p.Status == model.StatusSubstitute {
			sorted = append(sorted, p)
		}
	}
	return sorted
}
