package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wavepoint/social-system/internal/core/ports"
)

// UserHandler exposes account listing, details, updates, and deletion.
// Registration lives on AuthHandler because it issues a token pair.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type updateUserRequest struct {
	ID       string `json:"id"       validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}

type deleteUserRequest struct {
	ID string `json:"id" validate:"required"`
}

// List returns everyone except the caller.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	callerID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	users, err := h.users.List(c.Request().Context(), callerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Details returns a user with their posts, messages, and friends.
//
// @Summary      Get user details
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  ports.UserDetails
// @Failure      404     {object}  errorResponse
// @Router       /users/{userId} [get]
func (h *UserHandler) Details(c echo.Context) error {
	details, err := h.users.Details(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, details)
}

// Update applies a profile change.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateUserRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [patch]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.Update(c.Request().Context(), ports.UpdateUserInput{
		ID:       req.ID,
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete removes a user and everything referencing them.
//
// @Summary      Delete a user and their related records
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      deleteUserRequest  true  "User id"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  errorResponse
// @Router       /users [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	var req deleteUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.users.Delete(c.Request().Context(), req.ID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user and related data deleted"})
}
