package proximity

import (
	"context"
	"log/slog"

	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/storage"
)

// nearbyDeltas is the fixed adjacency pattern: same cell or one step
// left/right. Vertical neighbours are deliberately not in the set;
// changing that decision is a one-line edit here.
var nearbyDeltas = []struct{ dx, dy int }{
	{0, 0},
	{1, 0},
	{-1, 0},
}

// NearbyPlayer is one adjacent player, enough to render an avatar
// and open a chat
type NearbyPlayer struct {
	Identity  model.Identity
	AvatarURL string
}

// Service computes which players are within move-adjacency range
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new proximity resolver
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Nearby returns the players on the named map adjacent to the
// requester. The requester is never in its own result. Result order
// is not significant.
func (s *Service) Nearby(ctx context.Context, mapName string, requester model.Identity) ([]NearbyPlayer, error) {
	m, err := s.storage.GetMapByName(ctx, mapName)
	if err != nil {
		return nil, err
	}

	self, err := s.storage.GetPlayerByIdentity(ctx, requester)
	if err != nil {
		return nil, err
	}

	players, err := s.storage.ListPlayersByMap(ctx, m.ID)
	if err != nil {
		return nil, err
	}

	var nearby []NearbyPlayer
	for _, p := range players {
		if p.ID == self.ID {
			continue
		}
		if adjacent(self.Position, p.Position) {
			nearby = append(nearby, NearbyPlayer{
				Identity:  p.Identity,
				AvatarURL: p.AvatarURL,
			})
		}
	}

	return nearby, nil
}

// adjacent reports whether candidate sits at one of the fixed offsets
// from the requester's position
func adjacent(self, candidate model.Position) bool {
	for _, d := range nearbyDeltas {
		if candidate == self.Offset(d.dx, d.dy) {
			return true
		}
	}
	return false
}
