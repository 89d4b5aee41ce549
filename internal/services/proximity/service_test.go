package proximity

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/storage/memory"
	"github.com/prathamesh424/pixelwalk-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
	mapID   model.MapID
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()

	s.mapID = "map-1"
	s.Require().NoError(s.storage.CreateMap(s.ctx, &model.Map{
		ID: s.mapID, Name: "plaza", Width: 10, Height: 10,
	}))
}

func (s *ServiceSuite) placePlayer(identity model.Identity, x, y int) {
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, &model.Player{
		ID:        model.PlayerID("id-" + identity),
		Identity:  identity,
		Position:  model.Position{X: x, Y: y},
		MapID:     &s.mapID,
		AvatarURL: "https://example.com/" + string(identity) + ".png",
	}))
}

func (s *ServiceSuite) identities(players []NearbyPlayer) []model.Identity {
	out := make([]model.Identity, len(players))
	for i, p := range players {
		out[i] = p.Identity
	}
	return out
}

func (s *ServiceSuite) TestHorizontalNeighboursAreMutuallyNearby() {
	s.placePlayer("alice", 3, 0)
	s.placePlayer("bob", 4, 0)

	nearby, err := s.service.Nearby(s.ctx, "plaza", "alice")
	s.Require().NoError(err)
	s.ElementsMatch([]model.Identity{"bob"}, s.identities(nearby))

	nearby, err = s.service.Nearby(s.ctx, "plaza", "bob")
	s.Require().NoError(err)
	s.ElementsMatch([]model.Identity{"alice"}, s.identities(nearby))
}

func (s *ServiceSuite) TestVerticalNeighbourIsNotNearby() {
	s.placePlayer("alice", 3, 0)
	s.placePlayer("carol", 3, 1)

	nearby, err := s.service.Nearby(s.ctx, "plaza", "alice")
	s.Require().NoError(err)
	s.Empty(nearby)
}

func (s *ServiceSuite) TestSameCellIsNearby() {
	s.placePlayer("alice", 5, 5)
	s.placePlayer("bob", 5, 5)

	nearby, err := s.service.Nearby(s.ctx, "plaza", "alice")
	s.Require().NoError(err)
	s.ElementsMatch([]model.Identity{"bob"}, s.identities(nearby))
}

func (s *ServiceSuite) TestRequesterExcludedFromOwnResult() {
	s.placePlayer("alice", 5, 5)

	nearby, err := s.service.Nearby(s.ctx, "plaza", "alice")
	s.Require().NoError(err)
	s.Empty(nearby)
}

func (s *ServiceSuite) TestTwoCellsAwayIsNotNearby() {
	s.placePlayer("alice", 3, 0)
	s.placePlayer("bob", 5, 0)

	nearby, err := s.service.Nearby(s.ctx, "plaza", "alice")
	s.Require().NoError(err)
	s.Empty(nearby)
}

func (s *ServiceSuite) TestMixedNeighbours() {
	s.placePlayer("alice", 3, 0)
	s.placePlayer("bob", 4, 0)   // right
	s.placePlayer("carol", 2, 0) // left
	s.placePlayer("dave", 3, 1)  // below, excluded
	s.placePlayer("erin", 3, 0)  // same cell

	nearby, err := s.service.Nearby(s.ctx, "plaza", "alice")
	s.Require().NoError(err)
	s.ElementsMatch([]model.Identity{"bob", "carol", "erin"}, s.identities(nearby))
}

func (s *ServiceSuite) TestOtherMapsDoNotLeak() {
	otherMap := model.MapID("map-2")
	s.Require().NoError(s.storage.CreateMap(s.ctx, &model.Map{
		ID: otherMap, Name: "garden", Width: 10, Height: 10,
	}))

	s.placePlayer("alice", 3, 0)
	s.Require().NoError(s.storage.CreatePlayer(s.ctx, &model.Player{
		ID: "id-bob", Identity: "bob", Position: model.Position{X: 4, Y: 0}, MapID: &otherMap,
	}))

	nearby, err := s.service.Nearby(s.ctx, "plaza", "alice")
	s.Require().NoError(err)
	s.Empty(nearby)
}

func (s *ServiceSuite) TestNearbyCarriesAvatarURL() {
	s.placePlayer("alice", 3, 0)
	s.placePlayer("bob", 4, 0)

	nearby, err := s.service.Nearby(s.ctx, "plaza", "alice")
	s.Require().NoError(err)
	s.Require().Len(nearby, 1)
	s.Equal("https://example.com/bob.png", nearby[0].AvatarURL)
}

func (s *ServiceSuite) TestUnknownMap() {
	s.placePlayer("alice", 3, 0)

	_, err := s.service.Nearby(s.ctx, "atlantis", "alice")
	s.ErrorIs(err, model.ErrMapNotFound)
}

func (s *ServiceSuite) TestUnknownRequester() {
	_, err := s.service.Nearby(s.ctx, "plaza", "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}
