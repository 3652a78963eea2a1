// Package interfaces defines the service contracts shared across the
// application.
package interfaces

import (
	"context"
)

// Message represents a single message in a conversation with an LLM.
type Message struct {
	// Role is "system", "user" or "assistant"
	Role string `json:"role"`
	// Content is the message text
	Content string `json:"content"`
}

// LLMService provides chat completions from a cloud AI provider.
type LLMService interface {
	// Chat generates a completion for the conversation history,
	// given in chronological order.
	Chat(ctx context.Context, messages []Message) (string, error)

	// HealthCheck verifies the service is operational.
	HealthCheck(ctx context.Context) error

	// Close releases resources held by the service.
	Close() error
}
