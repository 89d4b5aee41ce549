package model

import "fmt"

// Position is a discrete grid coordinate on a map
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Offset returns the position shifted by the given deltas
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// InBounds reports whether the position lies within [0,width) x [0,height)
func (p Position) InBounds(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Direction is a single-step move direction
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

// ParseDirection validates a direction string
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Apply returns the candidate position one step in this direction.
// It does no bounds checking; callers decide what to do with an
// out-of-bounds candidate.
func (d Direction) Apply(p Position) Position {
	switch d {
	case DirectionUp:
		return p.Offset(0, -1)
	case DirectionDown:
		return p.Offset(0, 1)
	case DirectionLeft:
		return p.Offset(-1, 0)
	case DirectionRight:
		return p.Offset(1, 0)
	default:
		return p
	}
}
