package chat

import (
	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Message is one persisted chatbot conversation turn.
// UserID is nullable: anonymous visitors can use the chatbot too.
type Message struct {
	shared.BaseAggregateRoot
	UserID   *uuid.UUID `gorm:"type:uuid;index"`
	Question string     `gorm:"type:text;not null"`
	Answer   string     `gorm:"type:text;not null"`
	Intent   string     `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Message) TableName() string {
	return "chat_messages"
}

// NewMessage creates a conversation turn record
func NewMessage(userID *uuid.UUID, question, answer, intent string) (*Message, error) {
	if question == "" {
		return nil, shared.NewDomainError("INVALID_QUESTION", "Question cannot be empty")
	}

	return &Message{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		Question:          question,
		Answer:            answer,
		Intent:            intent,
	}, nil
}
