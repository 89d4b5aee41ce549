package storage

import (
	"context"

	"github.com/prathamesh424/pixelwalk-go/internal/model"
)

// Storage defines the interface for data persistence.
//
// The Create* operations are insert-if-absent on the entity's unique
// index (identity, map name, participant pair) and fail with the
// matching Err*Exists sentinel when the index slot is already taken.
// Concurrent first-writers race at the store, not in process, so
// callers that lose the race re-read instead of duplicating records.
type Storage interface {
	// Player operations
	CreatePlayer(ctx context.Context, player *model.Player) error
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	GetPlayerByIdentity(ctx context.Context, identity model.Identity) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error
	ListPlayersByMap(ctx context.Context, mapID model.MapID) ([]*model.Player, error)

	// Map operations
	CreateMap(ctx context.Context, m *model.Map) error
	SaveMap(ctx context.Context, m *model.Map) error
	GetMap(ctx context.Context, id model.MapID) (*model.Map, error)
	GetMapByName(ctx context.Context, name string) (*model.Map, error)
	DeleteMap(ctx context.Context, id model.MapID) error
	ListMaps(ctx context.Context) ([]*model.Map, error)

	// Conversation thread operations. Pair lookups take the canonical
	// (sorted) participant pair; see model.CanonicalPair.
	CreateThread(ctx context.Context, thread *model.Thread) error
	SaveThread(ctx context.Context, thread *model.Thread) error
	GetThread(ctx context.Context, id model.ThreadID) (*model.Thread, error)
	GetThreadByPair(ctx context.Context, a, b model.Identity) (*model.Thread, error)
	ListThreadsFor(ctx context.Context, participant model.Identity) ([]*model.Thread, error)

	// Account operations
	CreateAccount(ctx context.Context, account *model.Account) error
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccount(ctx context.Context, identity model.Identity) (*model.Account, error)
}
