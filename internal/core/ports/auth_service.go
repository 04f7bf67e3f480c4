package ports

import "context"

// UserProjection is the minimal account view returned by login and
// registration. Deliberately excludes everything but id and email.
type UserProjection struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthResult carries both tokens out of a successful login/registration.
// The refresh token is for the session cookie only and must never appear
// in a response body.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         UserProjection
}

// AuthService implements the credential lifecycle: login, registration,
// and access-token renewal from a refresh token.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Register(ctx context.Context, username, password, email string) (*AuthResult, error)
	// Refresh verifies the refresh token and mints a new access token. The
	// refresh token itself is not rotated.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// LoginThrottle limits consecutive failed login attempts per email.
// Implementations must treat absence of state as "not blocked".
type LoginThrottle interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
