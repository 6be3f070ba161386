package llm

import (
	"context"
)

// LLMProvider defines the interface for text-generation providers
type LLMProvider interface {
	// GenerateReply produces one reply for the given prompt under the
	// given system instruction
	GenerateReply(ctx context.Context, prompt, systemPrompt string) (string, error)

	// IsHealthy checks if the LLM provider is healthy and available
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the LLM provider
	GetProviderName() string
}
