package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/prathamesh424/pixelwalk-go/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: A full session from entering the world to chatting with a
// neighbour, exercising every service through the wired app
func (s *IntegrationSuite) TestCompletePresenceFlow() {
	// Step 1: Guest sessions for two visitors
	s.app.MockRandom.QueueString("aliceident", "bobident00")

	aliceSession, err := s.app.AuthService.CreateGuestSession(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Identity("guest-aliceident"), aliceSession.Identity)

	bobSession, err := s.app.AuthService.CreateGuestSession(s.ctx)
	s.Require().NoError(err)

	alice := aliceSession.Identity
	bob := bobSession.Identity

	// Step 2: Create a map
	plaza, err := s.app.WorldService.Create(s.ctx, "plaza", 10, 10)
	s.Require().NoError(err)

	// Step 3: Both players enter the world on it
	_, err = s.app.PlayerService.CreateOrLocate(s.ctx, alice, model.Position{X: 2, Y: 0}, &plaza.ID, "https://example.com/a.png", true)
	s.Require().NoError(err)
	_, err = s.app.PlayerService.CreateOrLocate(s.ctx, bob, model.Position{X: 4, Y: 0}, &plaza.ID, "https://example.com/b.png", true)
	s.Require().NoError(err)

	// Step 4: Alice walks one cell toward Bob
	pos, err := s.app.MovementService.Move(s.ctx, alice, "right")
	s.Require().NoError(err)
	s.Equal(model.Position{X: 3, Y: 0}, pos)

	// Step 5: Now they see each other
	nearby, err := s.app.ProximityService.Nearby(s.ctx, "plaza", alice)
	s.Require().NoError(err)
	s.Require().Len(nearby, 1)
	s.Equal(bob, nearby[0].Identity)

	nearby, err = s.app.ProximityService.Nearby(s.ctx, "plaza", bob)
	s.Require().NoError(err)
	s.Require().Len(nearby, 1)
	s.Equal(alice, nearby[0].Identity)

	// Step 6: They exchange messages in one shared thread
	_, err = s.app.ChatService.Send(s.ctx, alice, bob, "hi")
	s.Require().NoError(err)

	s.app.MockClock.Advance(time.Minute)
	_, err = s.app.ChatService.Send(s.ctx, bob, alice, "hello")
	s.Require().NoError(err)

	history, err := s.app.ChatService.GetThread(s.ctx, bob, alice)
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal("hi", history[0].Body)
	s.Equal("hello", history[1].Body)

	threads, err := s.app.ChatService.ListThreadsFor(s.ctx, alice)
	s.Require().NoError(err)
	s.Len(threads, 1)
}

// Test: Deleting a map strands its players on the default grid
func (s *IntegrationSuite) TestMapDeletionFallsBackToDefaultGrid() {
	plaza, err := s.app.WorldService.Create(s.ctx, "plaza", 30, 30)
	s.Require().NoError(err)

	_, err = s.app.PlayerService.CreateOrLocate(s.ctx, "alice", model.Position{X: 15, Y: 5}, &plaza.ID, "https://example.com/a.png", false)
	s.Require().NoError(err)

	s.Require().NoError(s.app.WorldService.Delete(s.ctx, plaza.ID))

	// x=15 is outside the 10x10 fallback grid, so the step is rejected
	pos, err := s.app.MovementService.Move(s.ctx, "alice", "right")
	s.Require().NoError(err)
	s.Equal(model.Position{X: 15, Y: 5}, pos)
}

// Test: Registered account flow through auth and presence
func (s *IntegrationSuite) TestRegisteredAccountFlow() {
	session, err := s.app.AuthService.Register(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)
	s.False(session.Guest)

	validated, err := s.app.AuthService.ValidateSession(session.Token)
	s.Require().NoError(err)
	s.Equal(session.Identity, validated.Identity)

	p, err := s.app.PlayerService.CreateOrLocate(s.ctx, session.Identity, model.Position{}, nil, "https://example.com/a.png", false)
	s.Require().NoError(err)
	s.False(p.Guest)

	// Session expiry invalidates the token but not the account
	s.app.MockClock.Advance(25 * time.Hour)
	_, err = s.app.AuthService.ValidateSession(session.Token)
	s.Error(err)

	_, err = s.app.AuthService.Login(s.ctx, "alice@example.com", "password123")
	s.Require().NoError(err)
}
