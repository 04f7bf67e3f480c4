package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	sessionCookieName = "jwt"
	sessionMaxAge     = 7 * 24 * time.Hour
)

// SessionCookie carries the refresh token between browser and server. The
// token travels only here, never in a response body. Flags are identical
// on set and clear so the browser actually drops the cookie on logout.
type SessionCookie struct{}

func NewSessionCookie() *SessionCookie {
	return &SessionCookie{}
}

// Set installs the refresh token on the response.
func (s *SessionCookie) Set(c echo.Context, refreshToken string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    refreshToken,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

// Read returns the refresh token from the request, or "" when absent.
func (s *SessionCookie) Read(c echo.Context) string {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Clear expires the cookie with the same flags it was set with.
func (s *SessionCookie) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
