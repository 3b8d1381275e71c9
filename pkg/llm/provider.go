package llm

import (
	"context"
	"time"
)

// Supported provider names for LLM_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
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

// Apply folds opts over the given defaults.
func Apply(defaults Options, opts ...Option) *Options {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	return &o
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Generate sends a single prompt to the model (convenience method)
	Generate(ctx context.Context, prompt string, options ...Option) (string, error)
}

// GenerateFunc adapts a plain function to LLMProvider. Chat sends only the
// last message's content.
type GenerateFunc func(ctx context.Context, prompt string) (string, error)

func (f GenerateFunc) Generate(ctx context.Context, prompt string, _ ...Option) (string, error) {
	return f(ctx, prompt)
}

func (f GenerateFunc) Chat(ctx context.Context, history []Message, _ ...Option) (string, error) {
	if len(history) == 0 {
		return f(ctx, "")
	}
	return f(ctx, history[len(history)-1].Content)
}

// WithTimeout bounds every call on p by d. A non-positive d returns p unchanged.
func WithTimeout(p LLMProvider, d time.Duration) LLMProvider {
	if d <= 0 {
		return p
	}
	return &timeoutProvider{next: p, timeout: d}
}

type timeoutProvider struct {
	next    LLMProvider
	timeout time.Duration
}

func (t *timeoutProvider) Chat(ctx context.Context, history []Message, options ...Option) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Chat(ctx, history, options...)
}

func (t *timeoutProvider) Generate(ctx context.Context, prompt string, options ...Option) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Generate(ctx, prompt, options...)
}
