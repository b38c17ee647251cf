package chat

import (
	"context"
	"strings"

	"github.com/electrostore/backend/internal/domain/chat"
	"github.com/electrostore/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultHistoryLimit caps how many past turns a history lookup returns
const DefaultHistoryLimit = 50

// intentRule maps question keywords to a canned storefront answer
type intentRule struct {
	intent   string
	keywords []string
	answer   string
}

// rules are checked in order; the first keyword hit wins
var rules = []intentRule{
	{
		intent:   "greeting",
		keywords: []string{"hello", "hi ", "hey"},
		answer:   "Hello! I can help you find phones, laptops and accessories, compare products, or answer questions about shipping and payment.",
	},
	{
		intent:   "phones",
		keywords: []string{"phone", "smartphone", "mobile"},
		answer:   "You can browse our phone selection under the Phones category. Use the compare feature to line up two models side by side.",
	},
	{
		intent:   "laptops",
		keywords: []string{"laptop", "notebook", "macbook"},
		answer:   "Our laptop range covers everything from ultrabooks to gaming machines. Filter by brand or price in the Laptops category.",
	},
	{
		intent:   "compare",
		keywords: []string{"compare", "comparison", "difference between"},
		answer:   "Open any two products and hit Compare to see their specifications side by side with the better value highlighted per attribute.",
	},
	{
		intent:   "pricing",
		keywords: []string{"price", "cost", "how much", "discount"},
		answer:   "Prices are shown on each product page. Use the price filter on category pages to stay within your budget.",
	},
	{
		intent:   "shipping",
		keywords: []string{"shipping", "delivery", "ship"},
		answer:   "Standard delivery takes 2-5 business days. Shipping is free for orders over $50. You can also pay cash on delivery.",
	},
	{
		intent:   "thanks",
		keywords: []string{"thank", "thanks"},
		answer:   "You're welcome! Let me know if there's anything else I can help with.",
	},
}

const (
	fallbackIntent = "general"
	fallbackAnswer = "I'm not sure about that one. Try asking about our products, comparisons, prices or shipping, or browse the catalog directly."
)

// ChatService answers storefront questions through the configured LLM,
// falling back to static keyword rules when no model is available
type ChatService struct {
	messageRepo  chat.MessageRepository
	llm          LLM
	historyLimit int
	logger       *zap.Logger
}

// NewChatService creates a new chatbot service.
// llm may be nil; answers then come from the rule table alone.
func NewChatService(messageRepo chat.MessageRepository, llm LLM, logger *zap.Logger) *ChatService {
	return &ChatService{
		messageRepo:  messageRepo,
		llm:          llm,
		historyLimit: DefaultHistoryLimit,
		logger:       logger,
	}
}

// Ask answers a question and records the turn for authenticated callers.
// Persistence is best-effort and never fails the reply.
func (s *ChatService) Ask(ctx context.Context, userID *uuid.UUID, req AskRequest) (*AskResponse, error) {
	intent, answer := s.answer(ctx, req.Question)

	if userID != nil {
		s.recordTurn(ctx, userID, req.Question, answer, intent)
	}

	return &AskResponse{
		Question: req.Question,
		Answer:   answer,
		Intent:   intent,
	}, nil
}

// GetHistory returns the caller's past turns, most recent first
func (s *ChatService) GetHistory(ctx context.Context, userID uuid.UUID) ([]MessageResponse, error) {
	messages, err := s.messageRepo.FindByUser(ctx, userID, s.historyLimit)
	if err != nil {
		s.logger.Error("Failed to load chat history",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load chat history")
	}
	return ToMessageResponses(messages), nil
}

// answer prefers the configured LLM; the rule table serves when no model
// is configured or the model call fails.
func (s *ChatService) answer(ctx context.Context, question string) (string, string) {
	if s.llm != nil {
		answer, err := s.llm.Answer(ctx, question)
		if err == nil {
			return "llm", answer
		}
		s.logger.Warn("LLM answer failed, falling back to rules", zap.Error(err))
	}

	normalized := strings.ToLower(question)
	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(normalized, keyword) {
				return rule.intent, rule.answer
			}
		}
	}

	return fallbackIntent, fallbackAnswer
}

func (s *ChatService) recordTurn(ctx context.Context, userID *uuid.UUID, question, answer, intent string) {
	message, err := chat.NewMessage(userID, question, answer, intent)
	if err != nil {
		s.logger.Warn("Failed to build chat message", zap.Error(err))
		return
	}

	if err := s.messageRepo.Save(ctx, message); err != nil {
		s.logger.Warn("Failed to persist chat message", zap.Error(err))
	}
}
