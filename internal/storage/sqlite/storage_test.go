package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/teamroster/internal/dependencies/mocks"
	"github.com/mcoot/teamroster/internal/model"
)

var kickoff = time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)

type StorageSuite struct {
	suite.Suite
	path    string
	storage *Storage
	clock   *mocks.MockClock
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "roster.db")
	s.clock = mocks.NewMockClock(kickoff)
	store, err := OpenWithClock(s.path, s.clock)
	s.Require().NoError(err)
	s.storage = store
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	_ = s.storage.Close()
}

func (s *StorageSuite) TestOpenRequiresPath() {
	_, err := Open("  ")
	s.Error(err)
}

func (s *StorageSuite) TestOpenCreatesParentDir() {
	nested, err := Open(filepath.Join(s.T().TempDir(), "data", "nested", "roster.db"))
	s.Require().NoError(err)
	s.NoError(nested.Close())
}

func (s *StorageSuite) TestGetSnapshotNotFound() {
	_, err := s.storage.GetSnapshot(s.ctx, "players")
	s.ErrorIs(err, model.ErrSnapshotNotFound)
}

func (s *StorageSuite) TestSaveAndGetSnapshot() {
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, "players", `[{"name":"Ana"}]`))

	data, err := s.storage.GetSnapshot(s.ctx, "players")
	s.Require().NoError(err)
	s.Equal(`[{"name":"Ana"}]`, data)
}

func (s *StorageSuite) TestSaveSnapshotOverwrites() {
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, "players", "first"))
	first, err := s.storage.UpdatedAt(s.ctx, "players")
	s.Require().NoError(err)
	s.True(first.Equal(kickoff))

	s.clock.Advance(45 * time.Minute)
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, "players", "second"))

	data, err := s.storage.GetSnapshot(s.ctx, "players")
	s.Require().NoError(err)
	s.Equal("second", data)

	second, err := s.storage.UpdatedAt(s.ctx, "players")
	s.Require().NoError(err)
	s.True(second.Equal(kickoff.Add(45 * time.Minute)))
}

func (s *StorageSuite) TestSnapshotSurvivesReopen() {
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, "players", "[]"))
	s.Require().NoError(s.storage.Close())

	reopened, err := Open(s.path)
	s.Require().NoError(err)
	s.storage = reopened

	data, err := s.storage.GetSnapshot(s.ctx, "players")
	s.Require().NoError(err)
	s.Equal("[]", data)
}

func (s *StorageSuite) TestUpdatedAtNotFound() {
	_, err := s.storage.UpdatedAt(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSnapshotNotFound)
}
