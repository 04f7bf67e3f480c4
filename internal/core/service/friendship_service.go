package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wavepoint/social-system/internal/core/domain"
	"github.com/wavepoint/social-system/internal/core/ports"
)

// FriendshipService owns the edge state machine. Pair uniqueness is
// enforced by the store's pair-key index, so concurrent duplicate requests
// resolve to a conflict instead of a second edge.
type FriendshipService struct {
	friendships ports.FriendshipRepository
	users       ports.UserRepository
	logger      zerolog.Logger
}

func NewFriendshipService(friendships ports.FriendshipRepository, users ports.UserRepository, logger zerolog.Logger) *FriendshipService {
	return &FriendshipService{friendships: friendships, users: users, logger: logger}
}

// SendRequest creates a pending edge from requester to recipient. Fails
// with domain.ErrFriendshipExists when any edge already connects the pair,
// whichever direction it was created in and whatever its status.
func (s *FriendshipService) SendRequest(ctx context.Context, requesterID, recipientID string) (*domain.Friendship, error) {
	if requesterID == "" || recipientID == "" || requesterID == recipientID {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, recipientID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	edge, err := s.friendships.Insert(ctx, &domain.Friendship{
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      domain.FriendshipPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("requester", requesterID).Str("recipient", recipientID).Msg("friend request sent")
	return edge, nil
}

// AcceptRequest transitions the exact (requester, recipient, pending)
// triple to accepted. A swapped pair, an unknown pair, or an edge no longer
// pending all fail identically with domain.ErrFriendRequestNotFound.
func (s *FriendshipService) AcceptRequest(ctx context.Context, requesterID, recipientID string) (*domain.Friendship, error) {
	if requesterID == "" || recipientID == "" {
		return nil, domain.ErrMissingFields
	}

	edge, err := s.friendships.UpdatePendingStatus(ctx, requesterID, recipientID, domain.FriendshipAccepted)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("requester", requesterID).Str("recipient", recipientID).Msg("friend request accepted")
	return edge, nil
}

// RejectRequest is the symmetric counterpart of AcceptRequest. The edge
// stays in place as rejected, so the pair cannot re-request.
func (s *FriendshipService) RejectRequest(ctx context.Context, requesterID, recipientID string) (*domain.Friendship, error) {
	if requesterID == "" || recipientID == "" {
		return nil, domain.ErrMissingFields
	}

	edge, err := s.friendships.UpdatePendingStatus(ctx, requesterID, recipientID, domain.FriendshipRejected)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("requester", requesterID).Str("recipient", recipientID).Msg("friend request rejected")
	return edge, nil
}

// PendingFor returns userID's friend-request inbox, each entry joined with
// the requester's public profile.
func (s *FriendshipService) PendingFor(ctx context.Context, userID string) ([]ports.FriendRequestView, error) {
	if userID == "" {
		return nil, domain.ErrMissingFields
	}

	edges, err := s.friendships.FindPendingForRecipient(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return []ports.FriendRequestView{}, nil
	}

	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.RequesterID)
	}
	requesters, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.User, len(requesters))
	for _, u := range requesters {
		byID[u.ID] = u
	}

	views := make([]ports.FriendRequestView, 0, len(edges))
	for _, e := range edges {
		view := ports.FriendRequestView{Friendship: e}
		if u, ok := byID[e.RequesterID]; ok {
			view.Requester = u.Public()
		}
		views = append(views, view)
	}
	return views, nil
}

// Candidates returns users eligible to receive a request from userID:
// everyone except userID and their accepted-edge partners.
func (s *FriendshipService) Candidates(ctx context.Context, userID string) ([]domain.PublicProfile, error) {
	if userID == "" {
		return nil, domain.ErrMissingFields
	}

	edges, err := s.friendships.FindAcceptedFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	excluded := make([]string, 0, len(edges)+1)
	excluded = append(excluded, userID)
	for _, e := range edges {
		excluded = append(excluded, e.OtherSide(userID))
	}

	users, err := s.users.FindExcluding(ctx, excluded)
	if err != nil {
		return nil, err
	}

	profiles := make([]domain.PublicProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Public())
	}
	return profiles, nil
}
