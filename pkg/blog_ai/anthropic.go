package blogai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicGenerator handles text generation using Anthropic's Claude
type AnthropicGenerator struct {
	anthropic *anthropic.Client
	maxTokens int
	model     anthropic.Model
	timeout   time.Duration
}

// NewAnthropicGenerator creates a new Claude-backed generator
func NewAnthropicGenerator(settings Settings) (*AnthropicGenerator, error) {
	if settings.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	options := []option.RequestOption{
		option.WithAPIKey(settings.APIKey),
		option.WithMaxRetries(0),
	}

	if settings.BaseURL != "" {
		options = append(options, option.WithBaseURL(settings.BaseURL))
	}

	if settings.HTTPClient != nil {
		options = append(options, option.WithHTTPClient(settings.HTTPClient))
	}

	model := settings.Model
	if model == "" {
		model = DefaultAnthropicModel
	}

	client := anthropic.NewClient(options...)

	return &AnthropicGenerator{
		anthropic: &client,
		maxTokens: settings.maxTokens(),
		model:     anthropic.Model(model),
		timeout:   settings.timeout(),
	}, nil
}

// Name identifies the provider
func (generator *AnthropicGenerator) Name() string {
	return ProviderAnthropic
}

// Generate sends the prompt and returns the text of the reply
func (generator *AnthropicGenerator) Generate(
	ctx context.Context,
	request GenerateRequest,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generator.timeout)
	defer cancel()

	maxTokens := generator.maxTokens
	if request.MaxTokens > 0 {
		maxTokens = request.MaxTokens
	}

	message, err := generator.anthropic.Messages.New(
		ctx,
		createMessageParams(generator.model, request.System, request.Prompt, maxTokens),
	)

	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}

	var text strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	if strings.TrimSpace(text.String()) == "" {
		return "", ErrEmptyResponse
	}

	return text.String(), nil
}

func createMessageParams(
	model anthropic.Model,
	system string,
	prompt string,
	maxTokens int,
) anthropic.MessageNewParams {
	params := anthropic.MessageNewParams{
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Model: model,
	}

	if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	return params
}
