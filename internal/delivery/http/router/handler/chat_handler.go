package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"planner/internal/delivery/http/response"
	"planner/internal/domain/entity"
	"planner/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// defaultHistoryLimit caps how many messages a history request returns when
// the client does not ask for a specific window.
const defaultHistoryLimit = 50

type chatMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type chatMessageResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type chatExchangeResponse struct {
	Message chatMessageResponse `json:"message"`
	Reply   chatMessageResponse `json:"reply"`
}

func newChatMessageResponse(m *entity.ChatMessage) chatMessageResponse {
	return chatMessageResponse{
		ID:        m.ID,
		Role:      string(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

// ChatHandler holds dependencies for the planning-assistant handlers.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{uc: uc, logger: logger}
}

// Send stores the message and returns the full exchange.
func (h *ChatHandler) Send(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req chatMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat message input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.uc.Send(c.Request().Context(), userID, &usecase.SendMessageInput{Content: req.Content})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, chatExchangeResponse{
		Message: newChatMessageResponse(out.Message),
		Reply:   newChatMessageResponse(out.Reply),
	}, "Message sent")
}

// History lists recent messages, newest last. ?limit= overrides the default.
func (h *ChatHandler) History(c echo.Context) error {
	userID, err := requireIdentity(c)
	if err != nil {
		return err
	}

	limit := defaultHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "limit must be a non-negative integer")
		}
		limit = parsed
	}

	messages, err := h.uc.History(c.Request().Context(), userID, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]chatMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, newChatMessageResponse(m))
	}

	return response.Success(c, http.StatusOK, out, "")
}
