package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/wavepoint/social-system/internal/core/domain"
	"github.com/wavepoint/social-system/internal/core/ports"
)

// MessageService consults the friendship graph before persisting messages.
type MessageService struct {
	messages    ports.MessageRepository
	friendships ports.FriendshipRepository
	logger      zerolog.Logger
}

func NewMessageService(messages ports.MessageRepository, friendships ports.FriendshipRepository, logger zerolog.Logger) *MessageService {
	return &MessageService{messages: messages, friendships: friendships, logger: logger}
}

// CanMessage reports whether an accepted edge connects the two users.
// Direction of the stored edge is irrelevant, so the check is symmetric.
func (s *MessageService) CanMessage(ctx context.Context, a, b string) (bool, error) {
	_, err := s.friendships.FindAcceptedBetween(ctx, a, b)
	if err != nil {
		if errors.Is(err, domain.ErrFriendRequestNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Send persists an unread message after the friendship gate passes. The
// gate is evaluated once, at creation time.
func (s *MessageService) Send(ctx context.Context, senderID, receiverID, content string) (*domain.Message, error) {
	if senderID == "" || receiverID == "" || content == "" {
		return nil, domain.ErrMissingFields
	}

	ok, err := s.CanMessage(ctx, senderID, receiverID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFriends
	}

	msg, err := s.messages.Insert(ctx, &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		IsRead:     false,
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("sender", senderID).Str("receiver", receiverID).Msg("message sent")
	return msg, nil
}

// Conversation returns the full history between the two users, oldest
// first. Unbounded: pagination is out of scope.
func (s *MessageService) Conversation(ctx context.Context, userID, friendID string) ([]*domain.Message, error) {
	if userID == "" || friendID == "" {
		return nil, domain.ErrMissingFields
	}
	return s.messages.FindConversation(ctx, userID, friendID)
}
