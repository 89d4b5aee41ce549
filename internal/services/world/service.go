package world

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/prathamesh424/pixelwalk-go/internal/dependencies/clock"
	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/storage"
)

// Service is the map registry: named grids with dimensions.
// It performs no cross-validation against player positions; shrinking
// a map under a placed player is the caller's problem.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new map registry service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Create registers a new named map. Names are unique; the storage
// index reservation rejects duplicates.
func (s *Service) Create(ctx context.Context, name string, width, height int) (*model.Map, error) {
	if name == "" {
		return nil, errors.New("map name is required")
	}
	if width <= 0 || height <= 0 {
		return nil, model.ErrInvalidBounds
	}

	now := s.clock.Now()
	m := &model.Map{
		ID:        model.MapID(uuid.NewString()),
		Name:      name,
		Width:     width,
		Height:    height,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.CreateMap(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("map created",
		slog.String("map_id", string(m.ID)),
		slog.String("name", m.Name),
		slog.Int("width", m.Width),
		slog.Int("height", m.Height),
	)

	return m, nil
}

// Get retrieves a map by key
func (s *Service) Get(ctx context.Context, id model.MapID) (*model.Map, error) {
	return s.storage.GetMap(ctx, id)
}

// LocateByName retrieves a map by its unique name
func (s *Service) LocateByName(ctx context.Context, name string) (*model.Map, error) {
	return s.storage.GetMapByName(ctx, name)
}

// Update applies a partial update (rename and/or resize). Only the
// supplied fields change.
func (s *Service) Update(ctx context.Context, id model.MapID, patch model.MapPatch) (*model.Map, error) {
	m, err := s.storage.GetMap(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil && *patch.Name != m.Name {
		if existing, err := s.storage.GetMapByName(ctx, *patch.Name); err == nil && existing.ID != id {
			return nil, model.ErrMapNameTaken
		} else if err != nil && !errors.Is(err, model.ErrMapNotFound) {
			return nil, err
		}
	}
	if (patch.Width != nil && *patch.Width <= 0) || (patch.Height != nil && *patch.Height <= 0) {
		return nil, model.ErrInvalidBounds
	}

	patch.Apply(m)
	m.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveMap(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// Delete removes a map. Idempotent; players referencing the map keep
// their dangling reference (no cascade).
func (s *Service) Delete(ctx context.Context, id model.MapID) error {
	return s.storage.DeleteMap(ctx, id)
}

// List returns all registered maps
func (s *Service) List(ctx context.Context) ([]*model.Map, error) {
	return s.storage.ListMaps(ctx)
}
