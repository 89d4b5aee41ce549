package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case Player:
		o.printPlayer(v)
	case PlayerList:
		o.printPlayerList(v)
	case Map:
		o.printMap(v)
	case MapList:
		o.printMapList(v)
	case MoveResult:
		o.printMoveResult(v)
	case NearbyResult:
		o.printNearbyResult(v)
	case Message:
		o.printChatMessage(v)
	case ThreadHistory:
		o.printThreadHistory(v)
	case ThreadList:
		o.printThreadList(v)
	case TranslateResult:
		o.printTranslateResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Position response type (matches API)
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// AuthResult response type
type AuthResult struct {
	Identity     string `json:"identity"`
	IsGuest      bool   `json:"is_guest"`
	SessionToken string `json:"session_token"`
}

// Player response type
type Player struct {
	ID        string   `json:"id"`
	Identity  string   `json:"identity"`
	Position  Position `json:"position"`
	MapID     *string  `json:"map_id"`
	AvatarURL string   `json:"avatar_url"`
	IsGuest   bool     `json:"is_guest,omitempty"`
}

// PlayerList wraps a list of players for text output
type PlayerList struct {
	Players []Player `json:"players"`
}

// Map response type
type Map struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// MapList wraps a list of maps for text output
type MapList struct {
	Maps []Map `json:"maps"`
}

// MoveResult response type
type MoveResult struct {
	Position Position `json:"position"`
}

// NearbyPlayer response type
type NearbyPlayer struct {
	Identity  string `json:"identity"`
	AvatarURL string `json:"avatar_url"`
}

// NearbyResult response type
type NearbyResult struct {
	Players []NearbyPlayer `json:"players"`
}

// Message response type
type Message struct {
	Sender   string    `json:"sender"`
	Receiver string    `json:"receiver"`
	Body     string    `json:"body"`
	SentAt   time.Time `json:"sent_at"`
}

// ThreadHistory response type
type ThreadHistory struct {
	Messages []Message `json:"messages"`
}

// Thread response type
type Thread struct {
	ID           string    `json:"id"`
	Participants [2]string `json:"participants"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ThreadList response type
type ThreadList struct {
	Threads []Thread `json:"threads"`
}

// TranslateResult response type
type TranslateResult struct {
	TranslatedText string `json:"translated_text"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAuthResult(a AuthResult) {
	guestStr := "no"
	if a.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Identity: %s\n", a.Identity)
	fmt.Printf("Guest: %s\n", guestStr)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Identity, p.ID)
	fmt.Printf("Position: (%d, %d)\n", p.Position.X, p.Position.Y)
	if p.MapID != nil {
		fmt.Printf("Map: %s\n", *p.MapID)
	} else {
		fmt.Println("Map: (none)")
	}
	fmt.Printf("Avatar: %s\n", p.AvatarURL)
}

func (o *Output) printPlayerList(l PlayerList) {
	fmt.Printf("Players (%d):\n", len(l.Players))
	for _, p := range l.Players {
		fmt.Printf("  - %s at (%d, %d)\n", p.Identity, p.Position.X, p.Position.Y)
	}
}

func (o *Output) printMap(m Map) {
	fmt.Printf("Map: %s (%s)\n", m.Name, m.ID)
	fmt.Printf("Size: %dx%d\n", m.Width, m.Height)
}

func (o *Output) printMapList(l MapList) {
	fmt.Printf("Maps (%d):\n", len(l.Maps))
	for _, m := range l.Maps {
		fmt.Printf("  - %s (%dx%d)\n", m.Name, m.Width, m.Height)
	}
}

func (o *Output) printMoveResult(m MoveResult) {
	fmt.Printf("Position: (%d, %d)\n", m.Position.X, m.Position.Y)
}

func (o *Output) printNearbyResult(n NearbyResult) {
	if len(n.Players) == 0 {
		fmt.Println("Nobody nearby")
		return
	}
	fmt.Printf("Nearby (%d):\n", len(n.Players))
	for _, p := range n.Players {
		fmt.Printf("  - %s\n", p.Identity)
	}
}

func (o *Output) printChatMessage(m Message) {
	fmt.Printf("[%s] %s -> %s: %s\n", m.SentAt.Format(time.RFC3339), m.Sender, m.Receiver, m.Body)
}

func (o *Output) printThreadHistory(h ThreadHistory) {
	if len(h.Messages) == 0 {
		fmt.Println("No messages")
		return
	}
	for _, m := range h.Messages {
		o.printChatMessage(m)
	}
}

func (o *Output) printThreadList(l ThreadList) {
	fmt.Printf("Threads (%d):\n", len(l.Threads))
	for _, t := range l.Threads {
		fmt.Printf("  - %s <> %s (updated %s)\n",
			t.Participants[0], t.Participants[1], t.UpdatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printTranslateResult(t TranslateResult) {
	fmt.Println(t.TranslatedText)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
