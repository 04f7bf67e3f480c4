package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// Post is a feed entry authored by a user. Media entries are opaque URL
// references; tags reference other users by id.
type Post struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Text      string    `json:"text,omitempty"`
	Media     []string  `json:"media,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
