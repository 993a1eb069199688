package repository

import (
	"context"

	"planner/internal/domain/entity"
)

// ChatRepository defines persistence operations for the planning conversation.
type ChatRepository interface {
	// Append stores a new message at the end of the user's conversation.
	Append(ctx context.Context, message *entity.ChatMessage) error

	// ListByUser returns the most recent messages in chronological order,
	// capped at limit (0 means no cap).
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.ChatMessage, error)
}
