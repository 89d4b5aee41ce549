package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/prathamesh424/pixelwalk-go/internal/dependencies/clock"
	"github.com/prathamesh424/pixelwalk-go/internal/dependencies/random"
	"github.com/prathamesh424/pixelwalk-go/internal/services/auth"
	"github.com/prathamesh424/pixelwalk-go/internal/services/chat"
	"github.com/prathamesh424/pixelwalk-go/internal/services/movement"
	"github.com/prathamesh424/pixelwalk-go/internal/services/player"
	"github.com/prathamesh424/pixelwalk-go/internal/services/proximity"
	"github.com/prathamesh424/pixelwalk-go/internal/services/translate"
	"github.com/prathamesh424/pixelwalk-go/internal/services/world"
	"github.com/prathamesh424/pixelwalk-go/internal/storage"
	"github.com/prathamesh424/pixelwalk-go/internal/storage/memory"
	redisstorage "github.com/prathamesh424/pixelwalk-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	WorldService     *world.Service
	PlayerService    *player.Service
	MovementService  *movement.Service
	ProximityService *proximity.Service
	ChatService      *chat.Service
	AuthService      *auth.Service
	Translator       *translate.Client
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// MovementConfig holds the fallback grid bounds (optional)
	// If zero value, defaults to movement.DefaultConfig()
	MovementConfig movement.Config
	// TranslateConfig holds upstream translator settings (optional)
	// An empty BaseURL leaves translation unconfigured
	TranslateConfig translate.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	// Use default movement config if not provided
	moveCfg := cfg.MovementConfig
	if moveCfg.DefaultWidth == 0 || moveCfg.DefaultHeight == 0 {
		moveCfg = movement.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, authCfg, moveCfg, cfg.TranslateConfig, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	authCfg auth.Config,
	moveCfg movement.Config,
	translateCfg translate.Config,
	logger *slog.Logger,
) *App {
	// Create services
	worldService := world.New(store, clk, logger)
	playerService := player.New(store, clk, logger)
	movementService := movement.New(store, moveCfg, logger)
	proximityService := proximity.New(store, logger)
	chatService := chat.New(store, clk, logger)
	authService := auth.New(store, clk, rnd, authCfg, logger)
	translator := translate.New(translateCfg)

	return &App{
		Storage:          store,
		Clock:            clk,
		Random:           rnd,
		WorldService:     worldService,
		PlayerService:    playerService,
		MovementService:  movementService,
		ProximityService: proximityService,
		ChatService:      chatService,
		AuthService:      authService,
		Translator:       translator,
	}
}
