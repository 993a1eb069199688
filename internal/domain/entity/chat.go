package entity

import "time"

// ChatRole identifies the author of a chat message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one message in the student's planning conversation.
type ChatMessage struct {
	ID        string
	UserID    string
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}
