package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wavepoint/social-system/internal/api/metrics"
	"github.com/wavepoint/social-system/internal/core/domain"
	"github.com/wavepoint/social-system/internal/core/ports"
)

// MessageHandler exposes direct messaging behind the friendship gate.
type MessageHandler struct {
	messages ports.MessageService
}

func NewMessageHandler(messages ports.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

type sendMessageRequest struct {
	SenderID   string `json:"senderId"   validate:"required"`
	ReceiverID string `json:"receiverId" validate:"required"`
	Content    string `json:"content"    validate:"required"`
}

// Send persists a message when an accepted friendship connects the pair.
//
// @Summary      Send a direct message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message"
// @Success      201   {object}  domain.Message
// @Failure      403   {object}  errorResponse
// @Router       /messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	msg, err := h.messages.Send(c.Request().Context(), req.SenderID, req.ReceiverID, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrNotFriends) {
			metrics.MessagesBlockedTotal.Inc()
		}
		return err
	}

	metrics.MessagesSentTotal.Inc()
	return c.JSON(http.StatusCreated, msg)
}

// List returns the conversation between two users, oldest first.
//
// @Summary      List a conversation
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        userId    query     string  true  "One side of the conversation"
// @Param        friendId  query     string  true  "The other side"
// @Success      200       {array}   domain.Message
// @Router       /messages [get]
func (h *MessageHandler) List(c echo.Context) error {
	userID := c.QueryParam("userId")
	friendID := c.QueryParam("friendId")

	msgs, err := h.messages.Conversation(c.Request().Context(), userID, friendID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msgs)
}
