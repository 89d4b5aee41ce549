package memory

import (
	"context"
	"sync"

	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players       map[model.PlayerID]*model.Player
	identityIndex map[model.Identity]model.PlayerID

	maps      map[model.MapID]*model.Map
	nameIndex map[string]model.MapID

	threads   map[model.ThreadID]*model.Thread
	pairIndex map[pairKey]model.ThreadID

	accounts map[model.Identity]*model.Account
}

// pairKey is the canonical participant pair
type pairKey struct {
	a, b model.Identity
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:       make(map[model.PlayerID]*model.Player),
		identityIndex: make(map[model.Identity]model.PlayerID),
		maps:          make(map[model.MapID]*model.Map),
		nameIndex:     make(map[string]model.MapID),
		threads:       make(map[model.ThreadID]*model.Thread),
		pairIndex:     make(map[pairKey]model.ThreadID),
		accounts:      make(map[model.Identity]*model.Account),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.identityIndex[player.Identity]; taken {
		return model.ErrPlayerExists
	}
	s.players[player.ID] = player
	s.identityIndex[player.Identity] = player.ID
	return nil
}

func (s *Storage) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = player
	s.identityIndex[player.Identity] = player.ID
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) GetPlayerByIdentity(ctx context.Context, identity model.Identity) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.identityIndex[identity]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return player, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	player, ok := s.players[id]
	if !ok {
		return nil
	}
	delete(s.identityIndex, player.Identity)
	delete(s.players, id)
	return nil
}

func (s *Storage) ListPlayersByMap(ctx context.Context, mapID model.MapID) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var players []*model.Player
	for _, p := range s.players {
		if p.MapID != nil && *p.MapID == mapID {
			players = append(players, p)
		}
	}
	return players, nil
}

// Map operations

func (s *Storage) CreateMap(ctx context.Context, m *model.Map) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.nameIndex[m.Name]; taken {
		return model.ErrMapNameTaken
	}
	s.maps[m.ID] = m
	s.nameIndex[m.Name] = m.ID
	return nil
}

func (s *Storage) SaveMap(ctx context.Context, m *model.Map) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Drop a stale name index entry left behind by a rename
	for name, id := range s.nameIndex {
		if id == m.ID && name != m.Name {
			delete(s.nameIndex, name)
		}
	}
	s.maps[m.ID] = m
	s.nameIndex[m.Name] = m.ID
	return nil
}

func (s *Storage) GetMap(ctx context.Context, id model.MapID) (*model.Map, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.maps[id]
	if !ok {
		return nil, model.ErrMapNotFound
	}
	return m, nil
}

func (s *Storage) GetMapByName(ctx context.Context, name string) (*model.Map, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.nameIndex[name]
	if !ok {
		return nil, model.ErrMapNotFound
	}
	m, ok := s.maps[id]
	if !ok {
		return nil, model.ErrMapNotFound
	}
	return m, nil
}

func (s *Storage) DeleteMap(ctx context.Context, id model.MapID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.maps[id]
	if !ok {
		return nil
	}
	delete(s.nameIndex, m.Name)
	delete(s.maps, id)
	return nil
}

func (s *Storage) ListMaps(ctx context.Context) ([]*model.Map, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	maps := make([]*model.Map, 0, len(s.maps))
	for _, m := range s.maps {
		maps = append(maps, m)
	}
	return maps, nil
}

// Thread operations

func (s *Storage) CreateThread(ctx context.Context, thread *model.Thread) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey{a: thread.ParticipantA, b: thread.ParticipantB}
	if _, taken := s.pairIndex[key]; taken {
		return model.ErrThreadExists
	}
	s.threads[thread.ID] = thread
	s.pairIndex[key] = thread.ID
	return nil
}

func (s *Storage) SaveThread(ctx context.Context, thread *model.Thread) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.threads[thread.ID] = thread
	s.pairIndex[pairKey{a: thread.ParticipantA, b: thread.ParticipantB}] = thread.ID
	return nil
}

func (s *Storage) GetThread(ctx context.Context, id model.ThreadID) (*model.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	thread, ok := s.threads[id]
	if !ok {
		return nil, model.ErrThreadNotFound
	}
	return thread, nil
}

func (s *Storage) GetThreadByPair(ctx context.Context, a, b model.Identity) (*model.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.pairIndex[pairKey{a: a, b: b}]
	if !ok {
		return nil, model.ErrThreadNotFound
	}
	thread, ok := s.threads[id]
	if !ok {
		return nil, model.ErrThreadNotFound
	}
	return thread, nil
}

func (s *Storage) ListThreadsFor(ctx context.Context, participant model.Identity) ([]*model.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var threads []*model.Thread
	for _, t := range s.threads {
		if t.Involves(participant) {
			threads = append(threads, t)
		}
	}
	return threads, nil
}

// Account operations

func (s *Storage) CreateAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.accounts[account.Identity]; taken {
		return model.ErrAccountExists
	}
	s.accounts[account.Identity] = account
	return nil
}

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.Identity] = account
	return nil
}

func (s *Storage) GetAccount(ctx context.Context, identity model.Identity) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[identity]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}
