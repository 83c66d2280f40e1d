package blogai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"
)

// GeminiGenerator handles text generation using Google's Gemini models
type GeminiGenerator struct {
	client    *genai.Client
	maxTokens int
	model     string
	timeout   time.Duration
}

// NewGeminiGenerator creates a new Gemini-backed generator
func NewGeminiGenerator(ctx context.Context, settings Settings) (*GeminiGenerator, error) {
	if settings.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      settings.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  settings.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: settings.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	model := settings.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	return &GeminiGenerator{
		client:    client,
		maxTokens: settings.maxTokens(),
		model:     model,
		timeout:   settings.timeout(),
	}, nil
}

// Name identifies the provider
func (generator *GeminiGenerator) Name() string {
	return ProviderGemini
}

// Generate sends the prompt and returns the text of the reply
func (generator *GeminiGenerator) Generate(
	ctx context.Context,
	request GenerateRequest,
) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generator.timeout)
	defer cancel()

	maxTokens := generator.maxTokens
	if request.MaxTokens > 0 {
		maxTokens = request.MaxTokens
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}

	if request.System != "" {
		config.SystemInstruction = genai.NewContentFromText(request.System, genai.RoleUser)
	}

	response, err := generator.client.Models.GenerateContent(
		ctx,
		generator.model,
		genai.Text(request.Prompt),
		config,
	)

	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	text := response.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}

	return text, nil
}
