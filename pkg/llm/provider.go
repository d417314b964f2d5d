package llm

import (
	"context"
	"fmt"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// CompletionRequest carries everything a provider needs for one exchange.
type CompletionRequest struct {
	SystemPrompt string
	History      []Message
	UserMessage  string
}

// Completion is the result of one successful provider exchange.
type Completion struct {
	Content    string
	Model      string
	TokensUsed int
	LatencyMs  int64
}

// ProviderError wraps any upstream failure (network, non-2xx, timeout) so the
// orchestrator can match on it instead of inspecting raw errors.
type ProviderError struct {
	Provider string
	Cause    error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("completion provider %s failed: %v", e.Provider, e.Cause)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// CompletionProvider defines the contract for any LLM backend.
// Implementations make exactly one attempt per call; there is no automatic
// retry (the orchestrator substitutes a static fallback on failure instead).
type CompletionProvider interface {
	Complete(ctx context.Context, req CompletionRequest, options ...Option) (*Completion, error)
}
