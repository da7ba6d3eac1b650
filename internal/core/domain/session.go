package domain

import (
	"errors"
	"time"
)

var ErrUnauthenticated = errors.New("unauthenticated")
var ErrSessionNotFound = errors.New("session not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is the authenticated user's credential plus minimal identity.
// The Token is the CMS-issued bearer credential; this layer only reads it
// and forwards it on every upstream call, never mutates it.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
