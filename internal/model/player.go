package model

import "time"

// Player is a registered account. Players are created at registration
// and never mutated or deleted.
type Player struct {
	Username     string // unique, non-empty
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
}
