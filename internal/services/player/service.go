package player

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prathamesh424/pixelwalk-go/internal/dependencies/clock"
	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/storage"
)

// Service is the player registry: one presence record per identity
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new player registry service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// CreateOrLocate returns the existing record for the identity
// unchanged, or inserts a new one with the given initial fields.
// Losing the storage-level insert race means someone else just
// created the record, so the loser re-reads it.
func (s *Service) CreateOrLocate(ctx context.Context, identity model.Identity, pos model.Position, mapID *model.MapID, avatarURL string, guest bool) (*model.Player, error) {
	existing, err := s.storage.GetPlayerByIdentity(ctx, identity)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	p := &model.Player{
		ID:        model.PlayerID(uuid.NewString()),
		Identity:  identity,
		Position:  pos,
		MapID:     mapID,
		AvatarURL: avatarURL,
		Guest:     guest,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.CreatePlayer(ctx, p); err != nil {
		if errors.Is(err, model.ErrPlayerExists) {
			return s.storage.GetPlayerByIdentity(ctx, identity)
		}
		return nil, err
	}

	s.logger.Info("player created",
		slog.String("player_id", string(p.ID)),
		slog.String("identity", string(p.Identity)),
	)

	return p, nil
}

// Update applies a partial update to the player with this identity.
// Omitted fields retain their prior values.
func (s *Service) Update(ctx context.Context, identity model.Identity, patch model.PlayerPatch) (*model.Player, error) {
	p, err := s.storage.GetPlayerByIdentity(ctx, identity)
	if err != nil {
		return nil, err
	}

	patch.Apply(p)
	p.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Delete removes a player record by key. Idempotent: deleting an
// absent key is not an error.
func (s *Service) Delete(ctx context.Context, id model.PlayerID) error {
	return s.storage.DeletePlayer(ctx, id)
}

// LocateByIdentity returns the player record for an identity
func (s *Service) LocateByIdentity(ctx context.Context, identity model.Identity) (*model.Player, error) {
	return s.storage.GetPlayerByIdentity(ctx, identity)
}

// ListOnMap returns all players currently placed on the given map
func (s *Service) ListOnMap(ctx context.Context, mapID model.MapID) ([]*model.Player, error) {
	return s.storage.ListPlayersByMap(ctx, mapID)
}
