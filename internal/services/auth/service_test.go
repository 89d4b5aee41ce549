package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/prathamesh424/pixelwalk-go/internal/dependencies/mocks"
	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/storage/memory"
	"github.com/prathamesh424/pixelwalk-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	random  *mocks.MockRandom
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.service = New(s.storage, s.clock, s.random, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

// Guest session tests

func (s *ServiceSuite) TestCreateGuestSession() {
	s.random.QueueString("abc123defg")

	session, err := s.service.CreateGuestSession(s.ctx)
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal(model.Identity("guest-abc123defg"), session.Identity)
	s.True(session.Guest)
	s.Equal(s.clock.Now().Add(24*time.Hour), session.ExpiresAt)
}

func (s *ServiceSuite) TestGuestSessionIsValid() {
	s.random.QueueString("abc123defg")
	session, _ := s.service.CreateGuestSession(s.ctx)

	validated, err := s.service.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.Identity, validated.Identity)
	s.True(validated.Guest)
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	session, err := s.service.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal(model.Identity("alice@example.com"), session.Identity)
	s.False(session.Guest)
}

func (s *ServiceSuite) TestRegisterPersistsHashedPassword() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	account, err := s.storage.GetAccount(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.NotEmpty(account.PasswordHash)
	s.NotEqual("password123", account.PasswordHash)
}

func (s *ServiceSuite) TestRegisterDuplicateIdentity() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	_, err = s.service.Register(s.ctx, "alice@example.com", "other-password")
	s.ErrorIs(err, ErrIdentityExists)
}

func (s *ServiceSuite) TestRegisterRequiresIdentityAndPassword() {
	_, err := s.service.Register(s.ctx, "", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)

	_, err = s.service.Register(s.ctx, "alice@example.com", "")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	_, err := s.service.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)

	session, err := s.service.Login(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)
	s.Equal(model.Identity("alice@example.com"), session.Identity)
	s.False(session.Guest)
}

func (s *ServiceSuite) TestLoginWrongPassword() {
	_, _ = s.service.Register(s.ctx, "alice@example.com", "password123")

	_, err := s.service.Login(s.ctx, "alice@example.com", "wrong")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginUnknownIdentity() {
	_, err := s.service.Login(s.ctx, "nobody@example.com", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Session lifecycle tests

func (s *ServiceSuite) TestValidateUnknownToken() {
	_, err := s.service.ValidateSession("sess_bogus")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestSessionExpires() {
	session, _ := s.service.Register(s.ctx, "alice@example.com", "password123")

	s.clock.Advance(25 * time.Hour)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestInvalidateSession() {
	session, _ := s.service.Register(s.ctx, "alice@example.com", "password123")

	s.service.InvalidateSession(session.Token)

	_, err := s.service.ValidateSession(session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestCleanExpiredSessions() {
	stale, _ := s.service.Register(s.ctx, "alice@example.com", "password123")

	s.clock.Advance(25 * time.Hour)
	fresh, _ := s.service.Login(s.ctx, "alice@example.com", "password123")

	s.service.CleanExpiredSessions()

	_, err := s.service.ValidateSession(stale.Token)
	s.ErrorIs(err, ErrInvalidSession)

	_, err = s.service.ValidateSession(fresh.Token)
	s.NoError(err)
}
