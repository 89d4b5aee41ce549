package movement

import (
	"context"
	"errors"
	"log/slog"

	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/storage"
)

// Config holds movement engine settings
type Config struct {
	// DefaultWidth and DefaultHeight bound players that have no
	// current map (or a dangling map reference)
	DefaultWidth  int
	DefaultHeight int
}

// DefaultConfig returns the default movement configuration
func DefaultConfig() Config {
	return Config{
		DefaultWidth:  10,
		DefaultHeight: 10,
	}
}

// Service applies single-step moves against map bounds
type Service struct {
	storage storage.Storage
	cfg     Config
	logger  *slog.Logger
}

// New creates a new movement engine
func New(storage storage.Storage, cfg Config, logger *slog.Logger) *Service {
	if cfg.DefaultWidth <= 0 || cfg.DefaultHeight <= 0 {
		cfg = DefaultConfig()
	}
	return &Service{
		storage: storage,
		cfg:     cfg,
		logger:  logger,
	}
}

// Step is the pure move function. An out-of-bounds candidate is
// rejected and the original position returned: clamp-by-rejection,
// not a wrap, not a clamp-to-edge, and not an error.
func Step(pos model.Position, dir model.Direction, width, height int) model.Position {
	candidate := dir.Apply(pos)
	if !candidate.InBounds(width, height) {
		return pos
	}
	return candidate
}

// Move applies one step for the identified player and persists the
// result. The position is written back even when the move was
// rejected at an edge. Unknown directions fail with
// model.ErrInvalidDirection; bounds rejection never fails.
func (s *Service) Move(ctx context.Context, identity model.Identity, direction string) (model.Position, error) {
	dir, err := model.ParseDirection(direction)
	if err != nil {
		return model.Position{}, err
	}

	p, err := s.storage.GetPlayerByIdentity(ctx, identity)
	if err != nil {
		return model.Position{}, err
	}

	width, height, err := s.bounds(ctx, p)
	if err != nil {
		return model.Position{}, err
	}

	p.Position = Step(p.Position, dir, width, height)
	if err := s.storage.SavePlayer(ctx, p); err != nil {
		return model.Position{}, err
	}

	return p.Position, nil
}

// bounds resolves the grid the player moves on. Unplaced players and
// dangling map references fall back to the configured default grid.
func (s *Service) bounds(ctx context.Context, p *model.Player) (int, int, error) {
	if p.MapID == nil {
		return s.cfg.DefaultWidth, s.cfg.DefaultHeight, nil
	}

	m, err := s.storage.GetMap(ctx, *p.MapID)
	if err != nil {
		if errors.Is(err, model.ErrMapNotFound) {
			s.logger.Warn("player references missing map, using default bounds",
				slog.String("player_id", string(p.ID)),
				slog.String("map_id", string(*p.MapID)),
			)
			return s.cfg.DefaultWidth, s.cfg.DefaultHeight, nil
		}
		return 0, 0, err
	}

	return m.Width, m.Height, nil
}
