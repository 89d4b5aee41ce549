package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerExists   = errors.New("player already exists")

	// Map errors
	ErrMapNotFound   = errors.New("map not found")
	ErrMapNameTaken  = errors.New("map name already taken")
	ErrInvalidBounds = errors.New("map dimensions must be positive")

	// Movement errors
	ErrInvalidDirection = errors.New("invalid direction")

	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")

	// Chat errors
	ErrThreadNotFound = errors.New("thread not found")
	ErrThreadExists   = errors.New("thread already exists")
	ErrEmptyMessage   = errors.New("message body is empty")
	ErrSelfMessage    = errors.New("cannot message yourself")
)
