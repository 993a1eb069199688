package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"planner/internal/domain/entity"
)

// ChatMessageModel is the stored form of entity.ChatMessage.
type ChatMessageModel struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Role      string             `bson:"role"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (m *ChatMessageModel) ToDomain() *entity.ChatMessage {
	return &entity.ChatMessage{
		ID:        m.ID.Hex(),
		UserID:    m.UserID.Hex(),
		Role:      entity.ChatRole(m.Role),
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func FromChatMessageDomain(message *entity.ChatMessage) *ChatMessageModel {
	return &ChatMessageModel{
		ID:        objectIDOrZero(message.ID),
		UserID:    objectIDOrZero(message.UserID),
		Role:      string(message.Role),
		Content:   message.Content,
		CreatedAt: message.CreatedAt,
	}
}
