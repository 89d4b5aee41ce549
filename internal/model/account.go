package model

import "time"

// Account holds the credentials for a registered identity.
// Stored separately from Player so presence reads never carry the
// password hash around.
type Account struct {
	Identity     Identity
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
