package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/prathamesh424/pixelwalk-go/internal/api/handler"
	"github.com/prathamesh424/pixelwalk-go/internal/api/middleware"
	"github.com/prathamesh424/pixelwalk-go/internal/services/auth"
	"github.com/prathamesh424/pixelwalk-go/internal/services/chat"
	"github.com/prathamesh424/pixelwalk-go/internal/services/movement"
	"github.com/prathamesh424/pixelwalk-go/internal/services/player"
	"github.com/prathamesh424/pixelwalk-go/internal/services/proximity"
	"github.com/prathamesh424/pixelwalk-go/internal/services/translate"
	"github.com/prathamesh424/pixelwalk-go/internal/services/world"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	AuthService      *auth.Service
	WorldService     *world.Service
	PlayerService    *player.Service
	MovementService  *movement.Service
	ProximityService *proximity.Service
	ChatService      *chat.Service
	Translator       *translate.Client
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	mapHandler := handler.NewMapHandler(cfg.WorldService)
	playerHandler := handler.NewPlayerHandler(cfg.PlayerService, cfg.WorldService, cfg.MovementService, cfg.ProximityService)
	chatHandler := handler.NewChatHandler(cfg.ChatService)
	translateHandler := handler.NewTranslateHandler(cfg.Translator)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no auth required for session creation)
	api.HandleFunc("/auth/guest", authHandler.Guest).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(authMiddleware)
	authProtected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// Player routes (all require auth)
	players := api.PathPrefix("/players").Subrouter()
	players.Use(authMiddleware)
	players.HandleFunc("/enter", playerHandler.Enter).Methods(http.MethodPost)
	players.HandleFunc("/me", playerHandler.Me).Methods(http.MethodGet)
	players.HandleFunc("/me", playerHandler.Update).Methods(http.MethodPatch)
	players.HandleFunc("/me/move", playerHandler.Move).Methods(http.MethodPost)
	players.HandleFunc("/{id}", playerHandler.Delete).Methods(http.MethodDelete)

	// Map routes (all require auth)
	maps := api.PathPrefix("/maps").Subrouter()
	maps.Use(authMiddleware)
	maps.HandleFunc("", mapHandler.Create).Methods(http.MethodPost)
	maps.HandleFunc("", mapHandler.List).Methods(http.MethodGet)
	maps.HandleFunc("/{name}", mapHandler.Get).Methods(http.MethodGet)
	maps.HandleFunc("/{id}", mapHandler.Update).Methods(http.MethodPatch)
	maps.HandleFunc("/{id}", mapHandler.Delete).Methods(http.MethodDelete)
	maps.HandleFunc("/{name}/players", playerHandler.ListOnMap).Methods(http.MethodGet)
	maps.HandleFunc("/{name}/nearby", playerHandler.Nearby).Methods(http.MethodGet)

	// Chat routes (all require auth)
	chatRoutes := api.PathPrefix("/chat").Subrouter()
	chatRoutes.Use(authMiddleware)
	chatRoutes.HandleFunc("/messages", chatHandler.Send).Methods(http.MethodPost)
	chatRoutes.HandleFunc("/threads", chatHandler.ListThreads).Methods(http.MethodGet)
	chatRoutes.HandleFunc("/threads/{identity}", chatHandler.History).Methods(http.MethodGet)

	// Translation proxy (requires auth)
	translateRoutes := api.PathPrefix("/translate").Subrouter()
	translateRoutes.Use(authMiddleware)
	translateRoutes.HandleFunc("", translateHandler.Translate).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
