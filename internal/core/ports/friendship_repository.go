package ports

import (
	"context"

	"github.com/wavepoint/social-system/internal/core/domain"
)

// FriendshipRepository defines persistence operations for friendship edges.
type FriendshipRepository interface {
	// Insert creates a new edge. Returns domain.ErrFriendshipExists when an
	// edge for the unordered pair already exists in either direction, in any
	// status (unique pair-key index violation).
	Insert(ctx context.Context, f *domain.Friendship) (*domain.Friendship, error)
	// UpdatePendingStatus atomically transitions the edge matching the exact
	// (requester, recipient, pending) triple to the given status. Returns
	// domain.ErrFriendRequestNotFound when no such pending edge exists.
	UpdatePendingStatus(ctx context.Context, requesterID, recipientID string, status domain.FriendshipStatus) (*domain.Friendship, error)
	// FindAcceptedBetween returns the accepted edge connecting the two users
	// regardless of direction, or domain.ErrFriendRequestNotFound.
	FindAcceptedBetween(ctx context.Context, a, b string) (*domain.Friendship, error)
	// FindPendingForRecipient lists pending edges where userID is recipient.
	FindPendingForRecipient(ctx context.Context, userID string) ([]*domain.Friendship, error)
	// FindAcceptedFor lists accepted edges where userID is on either side.
	FindAcceptedFor(ctx context.Context, userID string) ([]*domain.Friendship, error)
	// DeleteFor removes every edge where userID is requester or recipient.
	DeleteFor(ctx context.Context, userID string) error
}
