package domain

import (
	"errors"
	"strings"
	"time"
)

// FriendshipStatus represents the lifecycle state of a friendship edge.
type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
	FriendshipRejected FriendshipStatus = "rejected"
)

var (
	ErrFriendshipExists      = errors.New("friendship already exists")
	ErrFriendRequestNotFound = errors.New("friend request not found")
)

// Friendship is the single edge for an unordered pair of users. Requester
// records who initiated; at most one edge exists per pair regardless of
// direction, enforced by a unique index on the pair key.
type Friendship struct {
	ID          string           `json:"id"`
	RequesterID string           `json:"requester_id"`
	RecipientID string           `json:"recipient_id"`
	Status      FriendshipStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// OtherSide returns the edge partner of userID.
func (f *Friendship) OtherSide(userID string) string {
	if f.RequesterID == userID {
		return f.RecipientID
	}
	return f.RequesterID
}

// PairKey maps an unordered user pair to a canonical string, so a single
// unique index covers both storage directions of an edge.
func PairKey(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + ":" + b
}
