package request

// GuestRequest is the request body for creating a guest session.
// It has no fields today but keeps the endpoint shape uniform.
type GuestRequest struct{}

// RegisterRequest is the request body for registering an identity
type RegisterRequest struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

// CreateMapRequest is the request body for creating a map
type CreateMapRequest struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// UpdateMapRequest is the request body for renaming/resizing a map.
// Omitted fields are left unchanged.
type UpdateMapRequest struct {
	Name   *string `json:"name,omitempty"`
	Width  *int    `json:"width,omitempty"`
	Height *int    `json:"height,omitempty"`
}

// EnterWorldRequest is the request body for placing the
// authenticated identity on a map with an avatar
type EnterWorldRequest struct {
	MapName   string `json:"map_name,omitempty"`
	AvatarURL string `json:"avatar_url"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
}

// UpdatePlayerRequest is the request body for a partial player update
type UpdatePlayerRequest struct {
	AvatarURL *string `json:"avatar_url,omitempty"`
	MapName   *string `json:"map_name,omitempty"`
	X         *int    `json:"x,omitempty"`
	Y         *int    `json:"y,omitempty"`
}

// MoveRequest is the request body for a single-step move
type MoveRequest struct {
	Direction string `json:"direction"`
}

// SendMessageRequest is the request body for sending a chat message
type SendMessageRequest struct {
	Receiver string `json:"receiver"`
	Body     string `json:"body"`
}

// TranslateRequest is the request body for translating display text
type TranslateRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"target_language"`
}
