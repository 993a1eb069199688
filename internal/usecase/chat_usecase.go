package usecase

import (
	"context"

	"planner/internal/domain/entity"
)

// SendMessageInput defines the data required to post a chat message.
type SendMessageInput struct {
	Content string
}

// SendMessageOutput returns the stored user message and the assistant's reply.
type SendMessageOutput struct {
	Message *entity.ChatMessage
	Reply   *entity.ChatMessage
}

// ChatUsecase defines the planning-assistant conversation operations.
type ChatUsecase interface {
	Send(ctx context.Context, userID string, input *SendMessageInput) (*SendMessageOutput, error)
	History(ctx context.Context, userID string, limit int) ([]*entity.ChatMessage, error)
}
