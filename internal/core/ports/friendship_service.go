package ports

import (
	"context"

	"github.com/wavepoint/social-system/internal/core/domain"
)

// FriendRequestView is a pending edge joined with the requester's public
// profile, for the recipient's inbox.
type FriendRequestView struct {
	Friendship *domain.Friendship   `json:"friendship"`
	Requester  domain.PublicProfile `json:"requester"`
}

// FriendshipService owns the friendship state machine.
type FriendshipService interface {
	SendRequest(ctx context.Context, requesterID, recipientID string) (*domain.Friendship, error)
	AcceptRequest(ctx context.Context, requesterID, recipientID string) (*domain.Friendship, error)
	RejectRequest(ctx context.Context, requesterID, recipientID string) (*domain.Friendship, error)
	// PendingFor lists the friend-request inbox for userID.
	PendingFor(ctx context.Context, userID string) ([]FriendRequestView, error)
	// Candidates lists users eligible to receive a request from userID:
	// everyone except userID and their accepted-edge partners.
	Candidates(ctx context.Context, userID string) ([]domain.PublicProfile, error)
}
