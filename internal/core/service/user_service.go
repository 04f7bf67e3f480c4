package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wavepoint/social-system/internal/core/domain"
	"github.com/wavepoint/social-system/internal/core/ports"
)

// UserService implements account listing, aggregation, profile updates,
// and the deletion cascade.
type UserService struct {
	users       ports.UserRepository
	posts       ports.PostRepository
	friendships ports.FriendshipRepository
	messages    ports.MessageRepository
	logger      zerolog.Logger
}

func NewUserService(users ports.UserRepository, posts ports.PostRepository, friendships ports.FriendshipRepository, messages ports.MessageRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, posts: posts, friendships: friendships, messages: messages, logger: logger}
}

// List returns every user except the caller.
func (s *UserService) List(ctx context.Context, currentUserID string) ([]*domain.User, error) {
	if currentUserID == "" {
		return nil, domain.ErrMissingFields
	}
	return s.users.FindExcluding(ctx, []string{currentUserID})
}

// Details aggregates a user with their posts, messages, and accepted
// friends' public profiles.
func (s *UserService) Details(ctx context.Context, userID string) (*ports.UserDetails, error) {
	if userID == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, err := s.posts.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messages.FindFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	edges, err := s.friendships.FindAcceptedFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	friendIDs := make([]string, 0, len(edges))
	for _, e := range edges {
		friendIDs = append(friendIDs, e.OtherSide(userID))
	}
	friendUsers, err := s.users.FindByIDs(ctx, friendIDs)
	if err != nil {
		return nil, err
	}
	friends := make([]domain.PublicProfile, 0, len(friendUsers))
	for _, u := range friendUsers {
		friends = append(friends, u.Public())
	}

	return &ports.UserDetails{User: user, Posts: posts, Messages: messages, Friends: friends}, nil
}

// Update applies a profile change. Username and email are required; the
// email must stay unique case-insensitively against everyone but the user
// themselves. Password and avatar are replaced only when provided.
func (s *UserService) Update(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if input.ID == "" || input.Username == "" || input.Email == "" {
		return nil, domain.ErrMissingFields
	}

	user, err := s.users.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		if existing.ID != user.ID {
			return nil, domain.ErrEmailTaken
		}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	user.Username = input.Username
	user.Email = input.Email
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if input.Avatar != "" {
		user.Avatar = input.Avatar
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", updated.ID).Msg("user updated")
	return updated, nil
}

// Delete removes the user after cascading over their related records:
// posts, then friendship edges on either side, then messages on either
// side, then the account itself. The account goes last so a partial
// failure leaves the user present rather than orphaning references.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return domain.ErrMissingFields
	}

	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return err
	}

	if err := s.posts.DeleteByAuthor(ctx, userID); err != nil {
		return err
	}
	if err := s.friendships.DeleteFor(ctx, userID); err != nil {
		return err
	}
	if err := s.messages.DeleteFor(ctx, userID); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return err
	}

	s.logger.Info().Str("user_id", userID).Msg("user deleted with cascade")
	return nil
}
