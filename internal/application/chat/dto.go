package chat

import (
	"time"

	"github.com/electrostore/backend/internal/domain/chat"
	"github.com/google/uuid"
)

// AskRequest represents a chatbot question
type AskRequest struct {
	Question string `json:"question" binding:"required,min=1,max=2000"`
}

// AskResponse carries the chatbot's reply
type AskResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Intent   string `json:"intent"`
}

// MessageResponse is one past conversation turn
type MessageResponse struct {
	ID        uuid.UUID `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Intent    string    `json:"intent"`
	CreatedAt time.Time `json:"created_at"`
}

// ToMessageResponses converts domain Messages to MessageResponses
func ToMessageResponses(messages []chat.Message) []MessageResponse {
	responses := make([]MessageResponse, len(messages))
	for i, m := range messages {
		responses[i] = MessageResponse{
			ID:        m.ID,
			Question:  m.Question,
			Answer:    m.Answer,
			Intent:    m.Intent,
			CreatedAt: m.CreatedAt,
		}
	}
	return responses
}
