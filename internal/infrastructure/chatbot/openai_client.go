package chatbot

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"

	chatapp "github.com/electrostore/backend/internal/application/chat"
	"github.com/electrostore/backend/internal/infrastructure/config"
)

// defaultTimeout bounds a single completion request
const defaultTimeout = 20 * time.Second

// systemPrompt keeps the assistant on storefront topics
const systemPrompt = `You are a shopping assistant for an electronics store selling phones, laptops and accessories.
Answer briefly and stay on topic. If a question is unrelated to the store or its products, politely steer the
customer back to shopping, product comparisons, pricing or shipping.`

// OpenAIClient answers chatbot questions via an OpenAI chat model
type OpenAIClient struct {
	model   llms.Model
	timeout time.Duration
	logger  *zap.Logger
}

// NewOpenAIClient creates a new OpenAI-backed chatbot client
func NewOpenAIClient(cfg config.OpenAIConfig, logger *zap.Logger) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}

	opts := []openai.Option{openai.WithToken(cfg.APIKey)}
	if cfg.Model != "" {
		opts = append(opts, openai.WithModel(cfg.Model))
	}

	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create model: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &OpenAIClient{
		model:   model,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Answer generates a reply to a customer question
func (c *OpenAIClient) Answer(ctx context.Context, question string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, question),
	}

	response, err := c.model.GenerateContent(ctx, messages)
	if err != nil {
		c.logger.Warn("OpenAI completion failed", zap.Error(err))
		return "", fmt.Errorf("openai: completion failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("openai: completion returned no choices")
	}

	return response.Choices[0].Content, nil
}

var _ chatapp.LLM = (*OpenAIClient)(nil)
