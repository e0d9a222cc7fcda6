package llm

import (
	"context"
	"errors"
)

// Completer abstracts generative-text providers. Implementations send one
// prompt and return the raw text of the model's reply.
type Completer interface {
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	_ = ctx
	_ = prompt
	_ = maxTokens
	return "", ErrNotConfigured
}
