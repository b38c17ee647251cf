package chat

import (
	"context"

	"github.com/google/uuid"
)

// MessageRepository defines the interface for chat history persistence
type MessageRepository interface {
	// Save appends a conversation turn
	Save(ctx context.Context, message *Message) error

	// FindByUser returns a user's conversation turns, most recent first,
	// capped at limit entries
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Message, error)
}
