package models

import "time"

// Session represents an authenticated browser session.
// It is bound to an account by username only, not a foreign key, so
// deleting an account never cascades into live sessions.
type Session struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	TokenHash string    `json:"-"` // Never expose in JSON
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}
