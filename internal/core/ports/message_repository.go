package ports

import (
	"context"

	"github.com/wavepoint/social-system/internal/core/domain"
)

// MessageRepository defines persistence operations for direct messages.
type MessageRepository interface {
	Insert(ctx context.Context, m *domain.Message) (*domain.Message, error)
	// FindConversation returns all messages exchanged between the two users
	// in either direction, ordered by creation time ascending.
	FindConversation(ctx context.Context, a, b string) ([]*domain.Message, error)
	// FindFor lists every message where userID is sender or receiver.
	FindFor(ctx context.Context, userID string) ([]*domain.Message, error)
	// DeleteFor removes every message where userID is sender or receiver.
	DeleteFor(ctx context.Context, userID string) error
}
