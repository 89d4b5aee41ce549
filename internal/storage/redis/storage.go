package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Reserve the identity index slot first; SETNX is the serialization
	// point that keeps two concurrent first-logins from minting two
	// records for the same identity.
	ok, err := s.client.SetNX(ctx, identityIndexKey(player.Identity), string(player.ID), 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrPlayerExists
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, s.playerTTL(player))
	if player.MapID != nil {
		pipe.SAdd(ctx, playersOnMapIndexKey(*player.MapID), string(player.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	data, err := json.Marshal(player)
	if err != nil {
		return err
	}

	// Diff against the stored record so a map change moves the player
	// between map membership sets.
	prev, err := s.GetPlayer(ctx, player.ID)
	if err != nil && !errors.Is(err, model.ErrPlayerNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, playerKey(player.ID), data, s.playerTTL(player))
	pipe.Set(ctx, identityIndexKey(player.Identity), string(player.ID), 0)
	if prev != nil && prev.MapID != nil && (player.MapID == nil || *prev.MapID != *player.MapID) {
		pipe.SRem(ctx, playersOnMapIndexKey(*prev.MapID), string(player.ID))
	}
	if player.MapID != nil {
		pipe.SAdd(ctx, playersOnMapIndexKey(*player.MapID), string(player.ID))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	data, err := s.client.Get(ctx, playerKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	var player model.Player
	if err := json.Unmarshal(data, &player); err != nil {
		return nil, err
	}
	return &player, nil
}

func (s *Storage) GetPlayerByIdentity(ctx context.Context, identity model.Identity) (*model.Player, error) {
	idStr, err := s.client.Get(ctx, identityIndexKey(identity)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPlayerNotFound
		}
		return nil, err
	}

	return s.GetPlayer(ctx, model.PlayerID(idStr))
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	player, err := s.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			return nil
		}
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, playerKey(id))
	pipe.Del(ctx, identityIndexKey(player.Identity))
	if player.MapID != nil {
		pipe.SRem(ctx, playersOnMapIndexKey(*player.MapID), string(id))
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListPlayersByMap(ctx context.Context, mapID model.MapID) ([]*model.Player, error) {
	ids, err := s.client.SMembers(ctx, playersOnMapIndexKey(mapID)).Result()
	if err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = playerKey(model.PlayerID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	players := make([]*model.Player, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Record may have expired
		}
		var player model.Player
		if err := json.Unmarshal([]byte(val.(string)), &player); err != nil {
			continue // Skip invalid data
		}
		players = append(players, &player)
	}

	return players, nil
}

// playerTTL returns the TTL to apply to a player record
func (s *Storage) playerTTL(player *model.Player) time.Duration {
	if player.Guest {
		return s.cfg.GuestPlayerTTL
	}
	return 0
}

// Map operations

func (s *Storage) CreateMap(ctx context.Context, m *model.Map) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}

	// Name uniqueness is enforced by the index reservation
	ok, err := s.client.SetNX(ctx, mapNameIndexKey(m.Name), string(m.ID), 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrMapNameTaken
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, mapKey(m.ID), data, 0)
	pipe.SAdd(ctx, allMapsIndexKey(), mapKey(m.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) SaveMap(ctx context.Context, m *model.Map) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}

	prev, err := s.GetMap(ctx, m.ID)
	if err != nil && !errors.Is(err, model.ErrMapNotFound) {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, mapKey(m.ID), data, 0)
	pipe.SAdd(ctx, allMapsIndexKey(), mapKey(m.ID))
	if prev != nil && prev.Name != m.Name {
		pipe.Del(ctx, mapNameIndexKey(prev.Name))
	}
	pipe.Set(ctx, mapNameIndexKey(m.Name), string(m.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMap(ctx context.Context, id model.MapID) (*model.Map, error) {
	data, err := s.client.Get(ctx, mapKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMapNotFound
		}
		return nil, err
	}

	var m model.Map
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Storage) GetMapByName(ctx context.Context, name string) (*model.Map, error) {
	idStr, err := s.client.Get(ctx, mapNameIndexKey(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMapNotFound
		}
		return nil, err
	}

	return s.GetMap(ctx, model.MapID(idStr))
}

func (s *Storage) DeleteMap(ctx context.Context, id model.MapID) error {
	m, err := s.GetMap(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrMapNotFound) {
			return nil
		}
		return err
	}

	// Player records keep their map reference; the dangling reference
	// is the documented no-cascade behavior. Only the membership index
	// goes away with the map.
	pipe := s.client.Pipeline()
	pipe.Del(ctx, mapKey(id))
	pipe.Del(ctx, mapNameIndexKey(m.Name))
	pipe.Del(ctx, playersOnMapIndexKey(id))
	pipe.SRem(ctx, allMapsIndexKey(), mapKey(id))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) ListMaps(ctx context.Context) ([]*model.Map, error) {
	keys, err := s.client.SMembers(ctx, allMapsIndexKey()).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.Map{}, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	maps := make([]*model.Map, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var m model.Map
		if err := json.Unmarshal([]byte(val.(string)), &m); err != nil {
			continue
		}
		maps = append(maps, &m)
	}

	return maps, nil
}

// Thread operations

func (s *Storage) CreateThread(ctx context.Context, thread *model.Thread) error {
	data, err := json.Marshal(thread)
	if err != nil {
		return err
	}

	// One thread per canonical pair; losers of the race re-read
	ok, err := s.client.SetNX(ctx, threadPairIndexKey(thread.ParticipantA, thread.ParticipantB), string(thread.ID), 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrThreadExists
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, threadKey(thread.ID), data, 0)
	pipe.SAdd(ctx, threadsForIndexKey(thread.ParticipantA), threadKey(thread.ID))
	pipe.SAdd(ctx, threadsForIndexKey(thread.ParticipantB), threadKey(thread.ID))
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) SaveThread(ctx context.Context, thread *model.Thread) error {
	data, err := json.Marshal(thread)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, threadKey(thread.ID), data, 0).Err()
}

func (s *Storage) GetThread(ctx context.Context, id model.ThreadID) (*model.Thread, error) {
	data, err := s.client.Get(ctx, threadKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrThreadNotFound
		}
		return nil, err
	}

	var thread model.Thread
	if err := json.Unmarshal(data, &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

func (s *Storage) GetThreadByPair(ctx context.Context, a, b model.Identity) (*model.Thread, error) {
	idStr, err := s.client.Get(ctx, threadPairIndexKey(a, b)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrThreadNotFound
		}
		return nil, err
	}

	return s.GetThread(ctx, model.ThreadID(idStr))
}

func (s *Storage) ListThreadsFor(ctx context.Context, participant model.Identity) ([]*model.Thread, error) {
	keys, err := s.client.SMembers(ctx, threadsForIndexKey(participant)).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return nil, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	threads := make([]*model.Thread, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue
		}
		var thread model.Thread
		if err := json.Unmarshal([]byte(val.(string)), &thread); err != nil {
			continue
		}
		threads = append(threads, &thread)
	}

	return threads, nil
}

// Account operations

func (s *Storage) CreateAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	ok, err := s.client.SetNX(ctx, accountKey(account.Identity), data, 0).Result()
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrAccountExists
	}
	return nil
}

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, accountKey(account.Identity), data, 0).Err()
}

func (s *Storage) GetAccount(ctx context.Context, identity model.Identity) (*model.Account, error) {
	data, err := s.client.Get(ctx, accountKey(identity)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}
