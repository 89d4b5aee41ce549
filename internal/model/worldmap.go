package model

import "time"

// MapID uniquely identifies a map
type MapID string

// Map is a named grid the players walk on
type Map struct {
	ID        MapID
	Name      string
	Width     int
	Height    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MapPatch is a partial update; nil fields are left unchanged.
// Resizing does not re-validate existing player positions; movement
// re-reads bounds on every step, so a stranded player just cannot
// move further out.
type MapPatch struct {
	Name   *string
	Width  *int
	Height *int
}

// Apply copies the set fields onto the map
func (p *MapPatch) Apply(m *Map) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Width != nil {
		m.Width = *p.Width
	}
	if p.Height != nil {
		m.Height = *p.Height
	}
}
