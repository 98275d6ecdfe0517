package models

import (
	"time"
)

// User defines the staff identity based on the 'users' table. Username is
// the login identifier and is set to the registration email; profile edits
// change FirstName and Email but never Username, which keeps authentication
// stable after an email change.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"`
	FirstName string    `json:"firstName" db:"first_name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
