package player

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/prathamesh424/pixelwalk-go/internal/dependencies/mocks"
	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/storage/memory"
	"github.com/prathamesh424/pixelwalk-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

// CreateOrLocate tests

func (s *ServiceSuite) TestCreateOrLocateCreatesNewPlayer() {
	p, err := s.service.CreateOrLocate(s.ctx, "alice", model.Position{X: 2, Y: 3}, nil, "https://example.com/a.png", false)
	s.Require().NoError(err)

	s.NotEmpty(p.ID)
	s.Equal(model.Identity("alice"), p.Identity)
	s.Equal(model.Position{X: 2, Y: 3}, p.Position)
	s.Equal("https://example.com/a.png", p.AvatarURL)
	s.False(p.Guest)
	s.Equal(s.clock.Now(), p.CreatedAt)
}

func (s *ServiceSuite) TestCreateOrLocateIsIdempotent() {
	first, err := s.service.CreateOrLocate(s.ctx, "alice", model.Position{X: 2, Y: 3}, nil, "https://example.com/a.png", false)
	s.Require().NoError(err)

	// The second call returns the existing record untouched
	second, err := s.service.CreateOrLocate(s.ctx, "alice", model.Position{X: 9, Y: 9}, nil, "https://example.com/other.png", true)
	s.Require().NoError(err)

	s.Equal(first.ID, second.ID)
	s.Equal(model.Position{X: 2, Y: 3}, second.Position)
	s.Equal("https://example.com/a.png", second.AvatarURL)
}

func (s *ServiceSuite) TestCreateOrLocateWithMap() {
	mapID := model.MapID("map-1")
	p, err := s.service.CreateOrLocate(s.ctx, "alice", model.Position{}, &mapID, "https://example.com/a.png", false)
	s.Require().NoError(err)

	s.Require().NotNil(p.MapID)
	s.Equal(mapID, *p.MapID)
}

func (s *ServiceSuite) TestCreateOrLocateGuest() {
	p, err := s.service.CreateOrLocate(s.ctx, "guest-abc", model.Position{}, nil, "https://example.com/g.png", true)
	s.Require().NoError(err)
	s.True(p.Guest)
}

func (s *ServiceSuite) TestCreateOrLocateLosesInsertRace() {
	// Another writer claims the identity between the lookup and insert
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, &model.Player{
		ID: "winner", Identity: "alice",
	}))

	p, err := s.service.CreateOrLocate(s.ctx, "alice", model.Position{}, nil, "https://example.com/a.png", false)
	s.Require().NoError(err)
	s.Equal(model.PlayerID("winner"), p.ID)
}

// Update tests

func (s *ServiceSuite) TestUpdatePosition() {
	_, _ = s.service.CreateOrLocate(s.ctx, "alice", model.Position{X: 2, Y: 3}, nil, "https://example.com/a.png", false)

	pos := model.Position{X: 7, Y: 8}
	updated, err := s.service.Update(s.ctx, "alice", model.PlayerPatch{Position: &pos})
	s.Require().NoError(err)

	s.Equal(pos, updated.Position)
	s.Equal("https://example.com/a.png", updated.AvatarURL)
}

func (s *ServiceSuite) TestUpdateMapPlacement() {
	_, _ = s.service.CreateOrLocate(s.ctx, "alice", model.Position{}, nil, "https://example.com/a.png", false)

	mapID := model.MapID("map-1")
	updated, err := s.service.Update(s.ctx, "alice", model.PlayerPatch{MapID: &mapID})
	s.Require().NoError(err)

	s.Require().NotNil(updated.MapID)
	s.Equal(mapID, *updated.MapID)
}

func (s *ServiceSuite) TestUpdateAvatar() {
	_, _ = s.service.CreateOrLocate(s.ctx, "alice", model.Position{X: 2, Y: 3}, nil, "https://example.com/a.png", false)

	avatar := "https://example.com/new.png"
	updated, err := s.service.Update(s.ctx, "alice", model.PlayerPatch{AvatarURL: &avatar})
	s.Require().NoError(err)

	s.Equal(avatar, updated.AvatarURL)
	s.Equal(model.Position{X: 2, Y: 3}, updated.Position)
}

func (s *ServiceSuite) TestUpdateUnknownIdentity() {
	pos := model.Position{X: 1, Y: 1}
	_, err := s.service.Update(s.ctx, "ghost", model.PlayerPatch{Position: &pos})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Delete tests

func (s *ServiceSuite) TestDeleteIdempotent() {
	p, _ := s.service.CreateOrLocate(s.ctx, "alice", model.Position{}, nil, "https://example.com/a.png", false)

	s.Require().NoError(s.service.Delete(s.ctx, p.ID))
	s.Require().NoError(s.service.Delete(s.ctx, p.ID))

	_, err := s.service.LocateByIdentity(s.ctx, "alice")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// ListOnMap tests

func (s *ServiceSuite) TestListOnMap() {
	mapID := model.MapID("map-1")
	_, _ = s.service.CreateOrLocate(s.ctx, "alice", model.Position{}, &mapID, "https://example.com/a.png", false)
	_, _ = s.service.CreateOrLocate(s.ctx, "bob", model.Position{}, &mapID, "https://example.com/b.png", false)
	_, _ = s.service.CreateOrLocate(s.ctx, "carol", model.Position{}, nil, "https://example.com/c.png", false)

	players, err := s.service.ListOnMap(s.ctx, mapID)
	s.Require().NoError(err)
	s.Len(players, 2)
}
