package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wavepoint/social-system/internal/core/domain"
	"github.com/wavepoint/social-system/internal/core/ports"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// accessClaims is the payload of a short-lived access token.
type accessClaims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// refreshClaims carries only the email; the user is re-resolved from the
// store on every refresh.
type refreshClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies the two token kinds with independent
// secrets. Verification is pure computation and never touches the store.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssueAccessToken signs a 15-minute token carrying the user's identity claims.
func (s *TokenService) IssueAccessToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := accessClaims{
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
}

// IssueRefreshToken signs a 7-day token carrying only the email claim.
func (s *TokenService) IssueRefreshToken(email string) (string, error) {
	now := time.Now()
	claims := refreshClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.refreshSecret)
}

// DecodeAccessToken verifies an access token and returns the embedded
// identity. Satisfies ports.AccessTokenDecoder for the auth middleware.
func (s *TokenService) DecodeAccessToken(token string) (*ports.Identity, error) {
	claims := &accessClaims{}
	if err := s.parse(token, claims, s.accessSecret); err != nil {
		return nil, err
	}
	return &ports.Identity{ID: claims.UserID, Username: claims.Username, Email: claims.Email}, nil
}

// VerifyRefreshToken verifies a refresh token and returns its email claim.
func (s *TokenService) VerifyRefreshToken(token string) (string, error) {
	claims := &refreshClaims{}
	if err := s.parse(token, claims, s.refreshSecret); err != nil {
		return "", err
	}
	return claims.Email, nil
}

// parse collapses every verification failure into domain.ErrInvalidToken so
// callers cannot distinguish tampering from expiry.
func (s *TokenService) parse(token string, claims jwt.Claims, secret []byte) error {
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.ErrInvalidToken
	}
	return nil
}
