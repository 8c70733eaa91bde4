package models

import (
	"time"
)

// Message roles. The upstream "model" role is normalized to
// RoleAssistant before display or persistence.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Conversation is a durable, ordered thread of messages between one
// user and the assistant.
type Conversation struct {
	ID        uint      `gorm:"primaryKey;column:id" json:"id"`
	UserID    *uint     `gorm:"column:user_id;index" json:"user_id,omitempty"`
	Title     string    `gorm:"column:title;size:255" json:"title"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`

	Messages []Message `gorm:"foreignKey:ConversationID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// Message belongs to exactly one conversation and is immutable after
// creation. The assistant row is written once, after the full streamed
// reply has been assembled.
type Message struct {
	ID             uint      `gorm:"primaryKey;column:id" json:"id"`
	ConversationID uint      `gorm:"column:conversation_id;not null;index" json:"conversation_id"`
	Role           string    `gorm:"column:role;size:20;not null" json:"role"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;index" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
