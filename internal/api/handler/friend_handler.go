package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wavepoint/social-system/internal/api/metrics"
	"github.com/wavepoint/social-system/internal/core/ports"
)

// FriendHandler exposes the friendship state machine.
type FriendHandler struct {
	friendships ports.FriendshipService
}

func NewFriendHandler(friendships ports.FriendshipService) *FriendHandler {
	return &FriendHandler{friendships: friendships}
}

type friendRequestBody struct {
	RequesterID string `json:"requesterId" validate:"required"`
	RecipientID string `json:"recipientId" validate:"required"`
}

// Send creates a pending friend request.
//
// @Summary      Send a friend request
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      friendRequestBody  true  "Requester and recipient ids"
// @Success      201   {object}  domain.Friendship
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /friends [post]
func (h *FriendHandler) Send(c echo.Context) error {
	var req friendRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	edge, err := h.friendships.SendRequest(c.Request().Context(), req.RequesterID, req.RecipientID)
	if err != nil {
		metrics.FriendRequestsTotal.WithLabelValues("conflict").Inc()
		return err
	}

	metrics.FriendRequestsTotal.WithLabelValues("sent").Inc()
	return c.JSON(http.StatusCreated, edge)
}

// Accept transitions a pending request to accepted. Only the exact
// (requester, recipient) pair recorded at creation matches.
//
// @Summary      Accept a friend request
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      friendRequestBody  true  "Requester and recipient ids"
// @Success      200   {object}  domain.Friendship
// @Failure      404   {object}  errorResponse
// @Router       /friends [patch]
func (h *FriendHandler) Accept(c echo.Context) error {
	var req friendRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	edge, err := h.friendships.AcceptRequest(c.Request().Context(), req.RequesterID, req.RecipientID)
	if err != nil {
		return err
	}

	metrics.FriendRequestsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(http.StatusOK, edge)
}

// Reject transitions a pending request to rejected, by the same exact-pair
// rule as Accept.
//
// @Summary      Reject a friend request
// @Tags         friends
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      friendRequestBody  true  "Requester and recipient ids"
// @Success      200   {object}  domain.Friendship
// @Failure      404   {object}  errorResponse
// @Router       /friends/reject [patch]
func (h *FriendHandler) Reject(c echo.Context) error {
	var req friendRequestBody
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	edge, err := h.friendships.RejectRequest(c.Request().Context(), req.RequesterID, req.RecipientID)
	if err != nil {
		return err
	}

	metrics.FriendRequestsTotal.WithLabelValues("rejected").Inc()
	return c.JSON(http.StatusOK, edge)
}

// Requests lists pending requests where the path user is the recipient.
//
// @Summary      List incoming friend requests
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "Recipient user id"
// @Success      200     {array}   ports.FriendRequestView
// @Router       /friends/requests/{userId} [get]
func (h *FriendHandler) Requests(c echo.Context) error {
	views, err := h.friendships.PendingFor(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Candidates lists users the path user could send a request to.
//
// @Summary      List friend-suggestion candidates
// @Tags         friends
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {array}   domain.PublicProfile
// @Router       /friends/notfriends/{userId} [get]
func (h *FriendHandler) Candidates(c echo.Context) error {
	profiles, err := h.friendships.Candidates(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profiles)
}
