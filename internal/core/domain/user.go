package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingFields      = errors.New("required fields are missing")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already in use")
)

// User models an account holder. The email is unique case-insensitively;
// the password hash never leaves the persistence boundary in a response.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicProfile is the projection of a user safe to embed in other
// users' responses (friend requests, candidate lists, post authors).
type PublicProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// Public returns the embeddable projection of u.
func (u *User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Username: u.Username, Avatar: u.Avatar}
}
