package ports

import (
	"context"

	"github.com/wavepoint/social-system/internal/core/domain"
)

// UpdateUserInput carries a profile update. Password and Avatar are
// optional; empty values leave the stored field untouched.
type UpdateUserInput struct {
	ID       string
	Username string
	Email    string
	Password string
	Avatar   string
}

// UserDetails aggregates an account with its related records.
type UserDetails struct {
	User     *domain.User           `json:"user"`
	Posts    []*domain.Post         `json:"posts"`
	Messages []*domain.Message      `json:"messages"`
	Friends  []domain.PublicProfile `json:"friends"`
}

// UserService implements account listing, aggregation, profile updates,
// and cascading deletion.
type UserService interface {
	// List returns every user except currentUserID.
	List(ctx context.Context, currentUserID string) ([]*domain.User, error)
	Details(ctx context.Context, userID string) (*UserDetails, error)
	Update(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	// Delete removes the user and cascades over their posts, friendship
	// edges, and messages before removing the account record.
	Delete(ctx context.Context, userID string) error
}
