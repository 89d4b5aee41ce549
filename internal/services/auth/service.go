package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/prathamesh424/pixelwalk-go/internal/dependencies/clock"
	"github.com/prathamesh424/pixelwalk-go/internal/dependencies/random"
	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrIdentityExists     = errors.New("identity already registered")
)

const (
	// guestSuffixLength is the length of generated guest identity suffixes
	guestSuffixLength = 10
	// guestSuffixAlphabet avoids confusable characters
	guestSuffixAlphabet = "abcdefghjkmnpqrstuvwxyz23456789"
)

// Session binds a bearer token to an identity. The identity is the
// opaque stable identifier everything downstream keys on.
type Session struct {
	Token     string
	Identity  model.Identity
	Guest     bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Service stands in for the external identity provider: it hands out
// stable identities and validates the sessions that carry them.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session

	sessionDuration time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
	}
}

// New creates a new auth service
func New(storage storage.Storage, clock clock.Clock, random random.Random, cfg Config, logger *slog.Logger) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:         storage,
		clock:           clock,
		random:          random,
		logger:          logger,
		sessions:        make(map[string]*Session),
		sessionDuration: cfg.SessionDuration,
	}
}

// CreateGuestSession mints a throwaway identity and a session for it
func (s *Service) CreateGuestSession(ctx context.Context) (*Session, error) {
	identity := model.Identity("guest-" + s.random.String(guestSuffixLength, guestSuffixAlphabet))
	return s.createSession(identity, true), nil
}

// Register creates an account for the identity and opens a session
func (s *Service) Register(ctx context.Context, identity model.Identity, password string) (*Session, error) {
	if identity == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	account := &model.Account{
		Identity:     identity,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, model.ErrAccountExists) {
			return nil, ErrIdentityExists
		}
		return nil, err
	}

	s.logger.Info("account registered", slog.String("identity", string(identity)))

	return s.createSession(identity, false), nil
}

// Login authenticates a registered identity and opens a session
func (s *Service) Login(ctx context.Context, identity model.Identity, password string) (*Session, error) {
	account, err := s.storage.GetAccount(ctx, identity)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(identity, false), nil
}

// ValidateSession checks a token and returns its session
func (s *Service) ValidateSession(token string) (*Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrInvalidSession
	}

	if s.clock.Now().After(session.ExpiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return nil, ErrInvalidSession
	}

	return session, nil
}

// InvalidateSession removes a session (logout)
func (s *Service) InvalidateSession(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// CleanExpiredSessions removes expired sessions (call periodically)
func (s *Service) CleanExpiredSessions() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()

	for token, session := range s.sessions {
		if now.After(session.ExpiresAt) {
			delete(s.sessions, token)
		}
	}
}

// createSession opens a session for an identity
func (s *Service) createSession(identity model.Identity, guest bool) *Session {
	now := s.clock.Now()
	session := &Session{
		Token:     generateToken(),
		Identity:  identity,
		Guest:     guest,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionDuration),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session
}

// generateToken generates a random bearer token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
