package response

import (
	"time"

	"github.com/prathamesh424/pixelwalk-go/internal/model"
	"github.com/prathamesh424/pixelwalk-go/internal/services/auth"
	"github.com/prathamesh424/pixelwalk-go/internal/services/proximity"
)

// Position represents a grid coordinate in API responses
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PositionFromModel converts a model.Position
func PositionFromModel(p model.Position) Position {
	return Position{X: p.X, Y: p.Y}
}

// Player represents a player in API responses
type Player struct {
	ID        string   `json:"id"`
	Identity  string   `json:"identity"`
	Position  Position `json:"position"`
	MapID     *string  `json:"map_id"`
	AvatarURL string   `json:"avatar_url"`
	Guest     bool     `json:"is_guest,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	var mapID *string
	if p.MapID != nil {
		id := string(*p.MapID)
		mapID = &id
	}
	return Player{
		ID:        string(p.ID),
		Identity:  string(p.Identity),
		Position:  PositionFromModel(p.Position),
		MapID:     mapID,
		AvatarURL: p.AvatarURL,
		Guest:     p.Guest,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Identity     string `json:"identity"`
	Guest        bool   `json:"is_guest"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Identity:     string(s.Identity),
		Guest:        s.Guest,
		SessionToken: s.Token,
	}
}

// Map represents a map in API responses
type Map struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// MapFromModel converts a model.Map
func MapFromModel(m *model.Map) Map {
	return Map{
		ID:     string(m.ID),
		Name:   m.Name,
		Width:  m.Width,
		Height: m.Height,
	}
}

// MoveResponse is the response after a move request
type MoveResponse struct {
	Position Position `json:"position"`
}

// NearbyPlayer represents one adjacent player
type NearbyPlayer struct {
	Identity  string `json:"identity"`
	AvatarURL string `json:"avatar_url"`
}

// NearbyResponse is the response to a nearby query
type NearbyResponse struct {
	Players []NearbyPlayer `json:"players"`
}

// NearbyResponseFromModel converts the proximity result
func NearbyResponseFromModel(players []proximity.NearbyPlayer) NearbyResponse {
	out := make([]NearbyPlayer, len(players))
	for i, p := range players {
		out[i] = NearbyPlayer{
			Identity:  string(p.Identity),
			AvatarURL: p.AvatarURL,
		}
	}
	return NearbyResponse{Players: out}
}

// Message represents one chat message
type Message struct {
	Sender   string    `json:"sender"`
	Receiver string    `json:"receiver"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sent_at"`
}

// MessageFromModel converts a model.Message
func MessageFromModel(m model.Message) Message {
	return Message{
		Sender:   string(m.Sender),
		Receiver: string(m.Receiver),
		Body:     m.Body,
		SentAt:   m.SentAt,
	}
}

// Thread represents a conversation in API responses
type Thread struct {
	ID           string    `json:"id"`
	Participants [2]string `json:"participants"`
	Messages     []Message `json:"messages,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ThreadFromModel converts a model.Thread. Messages are included only
// when full is set; thread listings carry just the envelope.
func ThreadFromModel(t *model.Thread, full bool) Thread {
	out := Thread{
		ID:           string(t.ID),
		Participants: [2]string{string(t.ParticipantA), string(t.ParticipantB)},
		UpdatedAt:    t.UpdatedAt,
	}
	if full {
		out.Messages = make([]Message, len(t.Messages))
		for i, m := range t.Messages {
			out.Messages[i] = MessageFromModel(m)
		}
	}
	return out
}

// ThreadHistoryResponse is the response for a pair's message history
type ThreadHistoryResponse struct {
	Messages []Message `json:"messages"`
}

// ThreadListResponse is the response for a participant's inbox
type ThreadListResponse struct {
	Threads []Thread `json:"threads"`
}

// TranslateResponse is the response for a translation request
type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
}
