// Package llm provides interfaces for language model providers.
package llm

import (
	"context"

	"google.golang.org/genai"
)

// Provider is an interface for LLM providers
type Provider interface {
	// Generate sends a single-turn prompt and returns the raw model response
	Generate(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error)

	// IsConfigured returns true if the provider is properly configured
	IsConfigured() bool
}
