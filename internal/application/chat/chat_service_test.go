package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/electrostore/backend/internal/domain/chat"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockMessageRepository is a mock implementation of chat.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Save(ctx context.Context, message *chat.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]chat.Message, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]chat.Message), args.Error(1)
}

var _ chat.MessageRepository = (*MockMessageRepository)(nil)

// MockLLM is a mock implementation of LLM
type MockLLM struct {
	mock.Mock
}

func (m *MockLLM) Answer(ctx context.Context, question string) (string, error) {
	args := m.Called(ctx, question)
	return args.String(0), args.Error(1)
}

var _ LLM = (*MockLLM)(nil)

func TestChatService_Ask_RuleIntents(t *testing.T) {
	tests := []struct {
		name       string
		question   string
		wantIntent string
	}{
		{"greeting", "Hello there", "greeting"},
		{"phones", "What smartphones do you sell?", "phones"},
		{"laptops", "I need a new laptop for work", "laptops"},
		{"compare", "Can I compare two products?", "compare"},
		{"pricing", "How much does it cost?", "pricing"},
		{"shipping", "When will my delivery arrive?", "shipping"},
		{"thanks", "Thanks a lot!", "thanks"},
		{"fallback", "What is the meaning of life?", "general"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messageRepo := new(MockMessageRepository)
			service := NewChatService(messageRepo, nil, zap.NewNop())

			result, err := service.Ask(context.Background(), nil, AskRequest{Question: tt.question})

			require.NoError(t, err)
			assert.Equal(t, tt.wantIntent, result.Intent)
			assert.NotEmpty(t, result.Answer)
		})
	}
}

func TestChatService_Ask_LLMFirst(t *testing.T) {
	t.Run("sends every question to the LLM when configured", func(t *testing.T) {
		messageRepo := new(MockMessageRepository)
		llm := new(MockLLM)
		service := NewChatService(messageRepo, llm, zap.NewNop())

		// "hello there" would match the greeting rule; the model still
		// gets the question and its answer wins.
		llm.On("Answer", mock.Anything, "hello there").
			Return("Hi! Welcome to the store, what are you shopping for?", nil)

		result, err := service.Ask(context.Background(), nil, AskRequest{Question: "hello there"})

		require.NoError(t, err)
		assert.Equal(t, "llm", result.Intent)
		assert.Equal(t, "Hi! Welcome to the store, what are you shopping for?", result.Answer)
		llm.AssertCalled(t, "Answer", mock.Anything, "hello there")
	})

	t.Run("falls back to the matching rule when the LLM fails", func(t *testing.T) {
		messageRepo := new(MockMessageRepository)
		llm := new(MockLLM)
		service := NewChatService(messageRepo, llm, zap.NewNop())

		llm.On("Answer", mock.Anything, mock.Anything).Return("", errors.New("timeout"))

		result, err := service.Ask(context.Background(), nil, AskRequest{
			Question: "When will my delivery arrive?",
		})

		require.NoError(t, err)
		assert.Equal(t, "shipping", result.Intent)
		assert.NotEmpty(t, result.Answer)
	})

	t.Run("falls back to the canned answer when the LLM fails and no rule matches", func(t *testing.T) {
		messageRepo := new(MockMessageRepository)
		llm := new(MockLLM)
		service := NewChatService(messageRepo, llm, zap.NewNop())

		llm.On("Answer", mock.Anything, mock.Anything).Return("", errors.New("timeout"))

		result, err := service.Ask(context.Background(), nil, AskRequest{
			Question: "Something the rules do not cover",
		})

		require.NoError(t, err)
		assert.Equal(t, fallbackIntent, result.Intent)
		assert.Equal(t, fallbackAnswer, result.Answer)
	})
}

func TestChatService_Ask_RecordsAuthenticatedTurns(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	service := NewChatService(messageRepo, nil, zap.NewNop())

	userID := uuid.New()
	messageRepo.On("Save", mock.Anything, mock.MatchedBy(func(m *chat.Message) bool {
		return m.UserID != nil && *m.UserID == userID && m.Intent == "greeting"
	})).Return(nil)

	_, err := service.Ask(context.Background(), &userID, AskRequest{Question: "hello"})

	require.NoError(t, err)
	messageRepo.AssertExpectations(t)
}

func TestChatService_Ask_PersistenceFailureIsSwallowed(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	service := NewChatService(messageRepo, nil, zap.NewNop())

	userID := uuid.New()
	messageRepo.On("Save", mock.Anything, mock.Anything).Return(errors.New("db down"))

	result, err := service.Ask(context.Background(), &userID, AskRequest{Question: "hello"})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Answer)
}

func TestChatService_GetHistory(t *testing.T) {
	messageRepo := new(MockMessageRepository)
	service := NewChatService(messageRepo, nil, zap.NewNop())

	userID := uuid.New()
	message, err := chat.NewMessage(&userID, "hello", "Hi!", "greeting")
	require.NoError(t, err)

	messageRepo.On("FindByUser", mock.Anything, userID, DefaultHistoryLimit).
		Return([]chat.Message{*message}, nil)

	history, err := service.GetHistory(context.Background(), userID)

	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "hello", history[0].Question)
}
