package models

import (
	"time"

	"github.com/google/uuid"
)

// Session is a server-side record associating a browser's requests with an
// authenticated user.
type Session struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
