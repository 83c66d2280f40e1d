package blogai

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Supported providers
const (
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

// Default generation values
const (
	DefaultAnthropicModel = "claude-sonnet-4-20250514"
	DefaultGeminiModel    = "gemini-2.5-flash"
	DefaultMaxTokens      = 2048
	DefaultTimeout        = 60 * time.Second
)

// GenerateRequest holds the parameters for a single generation call
type GenerateRequest struct {
	System    string
	Prompt    string
	MaxTokens int
}

// Generator produces text for a prompt using a generative-language API
type Generator interface {
	Generate(ctx context.Context, request GenerateRequest) (string, error)
	Name() string
}

// GeneratorFunc adapts a plain function into a Generator
type GeneratorFunc func(ctx context.Context, request GenerateRequest) (string, error)

// Generate calls the wrapped function
func (fn GeneratorFunc) Generate(ctx context.Context, request GenerateRequest) (string, error) {
	return fn(ctx, request)
}

// Name identifies function-backed generators
func (fn GeneratorFunc) Name() string {
	return "func"
}

// Settings selects and configures a provider
type Settings struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	MaxTokens  int
	Model      string
	Provider   string
	Timeout    time.Duration
}

func (settings Settings) maxTokens() int {
	if settings.MaxTokens > 0 {
		return settings.MaxTokens
	}

	return DefaultMaxTokens
}

func (settings Settings) timeout() time.Duration {
	if settings.Timeout > 0 {
		return settings.Timeout
	}

	return DefaultTimeout
}

// NewGenerator creates the generator for the configured provider
func NewGenerator(ctx context.Context, settings Settings) (Generator, error) {
	switch settings.Provider {
	case "", ProviderAnthropic:
		return NewAnthropicGenerator(settings)
	case ProviderGemini:
		return NewGeminiGenerator(ctx, settings)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, settings.Provider)
	}
}
