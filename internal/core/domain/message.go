package domain

import (
	"errors"
	"time"
)

// ErrNotFriends is returned when a message is attempted between users
// without an accepted friendship edge.
var ErrNotFriends = errors.New("users are not friends")

// Message is a direct message between two users. Created unread; the
// friendship gate is checked at creation time only, so unfriending later
// does not invalidate existing history.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}
