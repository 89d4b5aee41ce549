package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/prathamesh424/pixelwalk-go/internal/dependencies/clock"
	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/storage"
)

// Service is the conversation store: at most one thread per unordered
// pair of players, messages appended in send order with server-side
// timestamps.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new conversation store service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Send appends a message to the pair's thread, creating the thread
// lazily on first contact. The pair is canonicalized before lookup,
// so who sent first never matters.
func (s *Service) Send(ctx context.Context, sender, receiver model.Identity, body string) (*model.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, model.ErrEmptyMessage
	}
	if sender == receiver {
		return nil, model.ErrSelfMessage
	}

	msg := model.Message{
		Sender:   sender,
		Receiver: receiver,
		Body:     body,
		SentAt:   s.clock.Now(),
	}

	a, b := model.CanonicalPair(sender, receiver)

	thread, err := s.storage.GetThreadByPair(ctx, a, b)
	if errors.Is(err, model.ErrThreadNotFound) {
		thread, err = s.createThread(ctx, a, b, msg)
		if err != nil {
			return nil, err
		}
		return &thread.Messages[len(thread.Messages)-1], nil
	}
	if err != nil {
		return nil, err
	}

	thread.Messages = append(thread.Messages, msg)
	thread.UpdatedAt = msg.SentAt
	if err := s.storage.SaveThread(ctx, thread); err != nil {
		return nil, err
	}

	return &thread.Messages[len(thread.Messages)-1], nil
}

// createThread inserts the pair's thread with its first message. If a
// concurrent sender created it first, the message is appended to the
// winner's thread instead.
func (s *Service) createThread(ctx context.Context, a, b model.Identity, msg model.Message) (*model.Thread, error) {
	now := msg.SentAt
	thread := &model.Thread{
		ID:           model.ThreadID(uuid.NewString()),
		ParticipantA: a,
		ParticipantB: b,
		Messages:     []model.Message{msg},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.storage.CreateThread(ctx, thread)
	if err == nil {
		s.logger.Info("thread created",
			slog.String("thread_id", string(thread.ID)),
			slog.String("participant_a", string(a)),
			slog.String("participant_b", string(b)),
		)
		return thread, nil
	}
	if !errors.Is(err, model.ErrThreadExists) {
		return nil, err
	}

	thread, err = s.storage.GetThreadByPair(ctx, a, b)
	if err != nil {
		return nil, err
	}
	thread.Messages = append(thread.Messages, msg)
	thread.UpdatedAt = msg.SentAt
	if err := s.storage.SaveThread(ctx, thread); err != nil {
		return nil, err
	}
	return thread, nil
}

// GetThread returns the message history between two parties in send
// order. Argument order does not matter; an absent thread is an empty
// history, not an error.
func (s *Service) GetThread(ctx context.Context, p, q model.Identity) ([]model.Message, error) {
	a, b := model.CanonicalPair(p, q)
	thread, err := s.storage.GetThreadByPair(ctx, a, b)
	if errors.Is(err, model.ErrThreadNotFound) {
		return []model.Message{}, nil
	}
	if err != nil {
		return nil, err
	}
	return thread.Messages, nil
}

// ListThreadsFor returns every thread the party participates in,
// regardless of which side of the canonical pair they landed on.
func (s *Service) ListThreadsFor(ctx context.Context, participant model.Identity) ([]*model.Thread, error) {
	return s.storage.ListThreadsFor(ctx, participant)
}
