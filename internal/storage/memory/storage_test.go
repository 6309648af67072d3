package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/teamroster/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
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
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, "players", "second"))

	data, err := s.storage.GetSnapshot(s.ctx, "players")
	s.Require().NoError(err)
	s.Equal("second", data)
	s.Len(s.storage.Keys(), 1)
}

func (s *StorageSuite) TestKeysAreIndependent() {
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, "home", "a"))
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, "away", "b"))

	home, _ := s.storage.GetSnapshot(s.ctx, "home")
	away, _ := s.storage.GetSnapshot(s.ctx, "away")
	s.Equal("a", home)
	s.Equal("b", away)
	s.ElementsMatch([]string{"home", "away"}, s.storage.Keys())
}

func (s *StorageSuite) TestEmptySnapshotIsStored() {
	s.Require().NoError(s.storage.SaveSnapshot(s.ctx, "players", ""))

	data, err := s.storage.GetSnapshot(s.ctx, "players")
	s.Require().NoError(err)
	s.Equal("", data)
}
