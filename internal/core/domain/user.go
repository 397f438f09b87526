package domain

import (
	"errors"
	"time"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStatus represents a user's presence state.
type UserStatus string

const (
	StatusOffline UserStatus = "offline"
	StatusOnline  UserStatus = "online"
)

// User is an account record. Users are seeded at process start; there is no
// signup flow. Passwords are stored as bcrypt hashes and never serialized.
type User struct {
	ID        int        `json:"id"`
	Username  string     `json:"username"`
	Password  string     `json:"-"`
	IsAdmin   bool       `json:"isAdmin"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
}
