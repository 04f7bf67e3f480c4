package ports

import (
	"context"

	"github.com/wavepoint/social-system/internal/core/domain"
)

// PostRepository defines persistence operations for feed posts.
type PostRepository interface {
	Insert(ctx context.Context, p *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// FindAll returns every post, newest first.
	FindAll(ctx context.Context) ([]*domain.Post, error)
	FindByAuthor(ctx context.Context, authorID string) ([]*domain.Post, error)
	DeleteByAuthor(ctx context.Context, authorID string) error
}
