package ports

import (
	"context"

	"github.com/wavepoint/social-system/internal/core/domain"
)

// CreatePostInput carries a new feed post.
type CreatePostInput struct {
	AuthorID string
	Text     string
	Media    []string
	Tags     []string
}

// PostView is a post joined with its author's public profile.
type PostView struct {
	Post   *domain.Post         `json:"post"`
	Author domain.PublicProfile `json:"author"`
}

// PostService implements the pass-through feed operations.
type PostService interface {
	// Feed returns every post, newest first, with author profiles attached.
	Feed(ctx context.Context) ([]PostView, error)
	Get(ctx context.Context, postID string) (*PostView, error)
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
}
