package factory

import (
	"context"

	"github.com/mcoot/teamroster/internal/model"
	"github.com/mcoot/teamroster/internal/services/roster"
	"github.com/mcoot/teamroster/internal/storage/memory"
	"github.com/mcoot/teamroster/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// MemoryStorage exposes the backing slot for direct inspection
	MemoryStorage *memory.Storage
}

// NewTestApp creates an App backed by in-memory storage
func NewTestApp() *TestApp {
	store := memory.New()
	app := newWithDependencies(store, roster.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:           app,
		MemoryStorage: store,
	}
}

// SeedRoster adds a small mixed roster: two starters and two substitutes
func (t *TestApp) SeedRoster(ctx context.Context) error {
	players := []model.Player{
		{Name: "Ana", Age: 23, Position: "Forward", Status: model.StatusStarter},
		{Name: "Bea", Age: 31, Position: "Keeper", Status: model.StatusSubstitute},
		{Name: "Cris", Age: 27, Position: "Defender", Status: model.StatusStarter},
		{Name: "Dani", Age: 19, Position: "Midfielder", Status: model.StatusSubstitute},
	}
	for _, p := range players {
		if _, err := t.RosterService.Add(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
