package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wavepoint/social-system/internal/core/ports"
)

// Auth validates the bearer access token via the supplied decoder and
// injects the caller's identity into the request context. An absent or
// malformed header and a failed decode are both 401: no identity was
// proven either way.
func Auth(decoder ports.AccessTokenDecoder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := decoder.DecodeAccessToken(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", identity.ID)
			c.Set("username", identity.Username)
			c.Set("email", identity.Email)

			return next(c)
		}
	}
}
