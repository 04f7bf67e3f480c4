package ports

import (
	"context"

	"github.com/wavepoint/social-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail matches case-insensitively, mirroring the unique index
	// collation on the email field.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	// FindExcluding returns every user whose id is not in excluded.
	FindExcluding(ctx context.Context, excluded []string) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
