package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wavepoint/social-system/internal/api/metrics"
	"github.com/wavepoint/social-system/internal/core/domain"
	"github.com/wavepoint/social-system/internal/core/ports"
)

// AuthHandler owns the credential lifecycle endpoints. The refresh token
// moves exclusively through the session cookie.
type AuthHandler struct {
	authService ports.AuthService
	session     *SessionCookie
}

func NewAuthHandler(authService ports.AuthService, session *SessionCookie) *AuthHandler {
	return &AuthHandler{authService: authService, session: session}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
}

type authResponse struct {
	AccessToken string               `json:"accessToken"`
	User        ports.UserProjection `json:"user"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

// Login authenticates a user and returns an access token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.session.Set(c, result.RefreshToken)
	return c.JSON(http.StatusOK, authResponse{AccessToken: result.AccessToken, User: result.User})
}

// Register creates a new account and logs it in.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Email)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.Inc()
	h.session.Set(c, result.RefreshToken)
	return c.JSON(http.StatusOK, authResponse{AccessToken: result.AccessToken, User: result.User})
}

// Refresh mints a new access token from the session cookie.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  refreshResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /auth/refresh [get]
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken := h.session.Read(c)
	if refreshToken == "" {
		metrics.TokenRefreshesTotal.WithLabelValues("missing_session").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	accessToken, err := h.authService.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("invalid").Inc()
		return err
	}

	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, refreshResponse{AccessToken: accessToken})
}

// Logout clears the session cookie. Idempotent: without a cookie it
// answers 204, with one it confirms the clear.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Success      204  "no session to clear"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if h.session.Read(c) == "" {
		return c.NoContent(http.StatusNoContent)
	}
	h.session.Clear(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "session cleared"})
}
