package chat

import "context"

// LLM abstracts the language model used for questions the static rules
// cannot answer
type LLM interface {
	// Answer generates a reply to a free-form customer question
	Answer(ctx context.Context, question string) (string, error)
}
