package ports

import (
	"context"

	"github.com/wavepoint/social-system/internal/core/domain"
)

// MessageService gates and persists direct messages.
type MessageService interface {
	// CanMessage reports whether an accepted edge connects the two users.
	// Symmetric in its arguments.
	CanMessage(ctx context.Context, a, b string) (bool, error)
	Send(ctx context.Context, senderID, receiverID, content string) (*domain.Message, error)
	// Conversation returns the full bidirectional history between the two
	// users, ordered by creation time ascending.
	Conversation(ctx context.Context, userID, friendID string) ([]*domain.Message, error)
}
