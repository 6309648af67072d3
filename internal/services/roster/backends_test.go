package roster

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/teamroster/internal/model"
	"github.com/mcoot/teamroster/internal/storage"
	"github.com/mcoot/teamroster/internal/storage/memory"
	redisstorage "github.com/mcoot/teamroster/internal/storage/redis"
	"github.com/mcoot/teamroster/internal/storage/sqlite"
	"github.com/mcoot/teamroster/internal/testutil"
)

// TestRosterAcrossBackends runs the same roster scenario against every storage backend
func TestRosterAcrossBackends(t *testing.T) {
	backends := map[string]func(t *testing.T) storage.Storage{
		"memory": func(t *testing.T) storage.Storage {
			return memory.New()
		},
		"redis": func(t *testing.T) storage.Storage {
			mini := miniredis.RunT(t)
			client := goredis.NewClient(&goredis.Options{Addr: mini.Addr()})
			store := redisstorage.NewWithClient(client, redisstorage.DefaultConfig())
			t.Cleanup(func() { _ = store.Close() })
			return store
		},
		"sqlite": func(t *testing.T) storage.Storage {
			store, err := sqlite.Open(filepath.Join(t.TempDir(), "roster.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = store.Close() })
			return store
		},
	}

	for name, newStore := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)
			svc := New(store, DefaultConfig(), testutil.NopLogger())

			assert.Empty(t, svc.Load(ctx))

			for _, p := range []model.Player{
				{Name: "Ana", Age: 23, Position: "Forward", Status: model.StatusSubstitute},
				{Name: "Bea", Age: 31, Position: "Keeper", Status: model.StatusStarter},
				{Name: "Cris", Age: 27, Position: "Back", Status: model.StatusStarter},
			} {
				_, err := svc.Add(ctx, p)
				require.NoError(t, err)
			}

			_, err := svc.Add(ctx, model.Player{Name: "cris", Age: 40, Position: "Wing", Status: model.StatusStarter})
			assert.ErrorIs(t, err, model.ErrDuplicateName)

			_, err = svc.Substitute(ctx, "Ana", "Cris")
			require.NoError(t, err)

			_, err = svc.Reposition(ctx, "bea", "Sweeper")
			require.NoError(t, err)

			_, err = svc.Remove(ctx, "Nobody")
			assert.ErrorIs(t, err, model.ErrNotFound)

			sorted := svc.ListSorted(ctx)
			assert.Equal(t, []string{"Ana", "Bea", "Cris"}, names(sorted))
			assert.Equal(t, "Sweeper", sorted[1].Position)
			assert.Equal(t, model.StatusSubstitute, sorted[2].Status)

			before, err := store.GetSnapshot(ctx, DefaultSnapshotKey)
			require.NoError(t, err)
			require.NoError(t, svc.Save(ctx, svc.Load(ctx)))
			after, err := store.GetSnapshot(ctx, DefaultSnapshotKey)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}
