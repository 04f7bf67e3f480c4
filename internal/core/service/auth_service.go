package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/wavepoint/social-system/internal/core/domain"
	"github.com/wavepoint/social-system/internal/core/ports"
)

const bcryptCost = 10

// AuthService implements login, registration, and access-token renewal.
type AuthService struct {
	users    ports.UserRepository
	tokens   *TokenService
	throttle ports.LoginThrottle // nil disables throttling
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle, logger: logger}
}

// Login verifies the credentials and issues a fresh token pair. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return nil, domain.ErrMissingFields
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, email)
		if err != nil {
			s.logger.Warn().Err(err).Msg("login throttle check failed")
		} else if blocked {
			s.logger.Info().Str("email", email).Msg("login blocked by throttle")
			return nil, domain.ErrInvalidCredentials
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	return s.issuePair(user)
}

// Register creates the account and behaves like a successful login.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (*ports.AuthResult, error) {
	if username == "" || password == "" || email == "" {
		return nil, domain.ErrMissingFields
	}

	// The unique email index is collated case-insensitively, so this check
	// and the insert below agree on what counts as a duplicate.
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return s.issuePair(created)
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token is not rotated. An absent token is an authentication failure; a
// present but invalid one is an authorization failure.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrInvalidCredentials
	}

	email, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	return s.tokens.IssueAccessToken(user)
}

func (s *AuthService) issuePair(user *domain.User) (*ports.AuthResult, error) {
	access, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(user.Email)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         ports.UserProjection{ID: user.ID, Email: user.Email},
	}, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login throttle record failed")
	}
}
