package model

import "time"

// PlayerID uniquely identifies a player record
type PlayerID string

// Identity is the opaque stable identifier assigned by the identity
// provider (an email address in practice). The core never inspects it.
type Identity string

// Player is one presence record: who, where, and what they look like
type Player struct {
	ID        PlayerID
	Identity  Identity
	Position  Position
	MapID     *MapID // nil while the player is unplaced
	AvatarURL string
	Guest     bool // true for identities without a registered account
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlayerPatch is a partial update; nil fields are left unchanged
type PlayerPatch struct {
	Position  *Position
	MapID     *MapID
	AvatarURL *string
}

// Apply copies the set fields onto the player
func (p *PlayerPatch) Apply(player *Player) {
	if p.Position != nil {
		player.Position = *p.Position
	}
	if p.MapID != nil {
		player.MapID = p.MapID
	}
	if p.AvatarURL != nil {
		player.AvatarURL = *p.AvatarURL
	}
}
