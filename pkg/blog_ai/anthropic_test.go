package blogai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anthropicReply(texts ...string) map[string]any {
	content := make([]map[string]any, 0, len(texts))
	for _, text := range texts {
		content = append(content, map[string]any{"type": "text", "text": text})
	}

	return map[string]any{
		"id":            "msg_test",
		"type":          "message",
		"role":          "assistant",
		"model":         DefaultAnthropicModel,
		"content":       content,
		"stop_reason":   "end_turn",
		"stop_sequence": nil,
		"usage":         map[string]any{"input_tokens": 10, "output_tokens": 5},
	}
}

func newTestAnthropic(t *testing.T, handler http.HandlerFunc) *AnthropicGenerator {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	generator, err := NewAnthropicGenerator(Settings{
		APIKey:  "test-key",
		BaseURL: srv.URL,
	})
	require.NoError(t, err)

	return generator
}

func TestAnthropicGenerator_Generate_Success(t *testing.T) {
	generator := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, DefaultAnthropicModel, body["model"])
		assert.Equal(t, float64(256), body["max_tokens"])
		assert.NotEmpty(t, body["system"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicReply("Hello ", "there"))
	})

	text, err := generator.Generate(context.Background(), GenerateRequest{
		MaxTokens: 256,
		Prompt:    "Say hello",
		System:    "Be brief",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hello there", text)
	assert.Equal(t, ProviderAnthropic, generator.Name())
}

func TestAnthropicGenerator_Generate_EmptyContent(t *testing.T) {
	generator := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicReply())
	})

	_, err := generator.Generate(context.Background(), GenerateRequest{Prompt: "anything"})
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestAnthropicGenerator_Generate_ServerError(t *testing.T) {
	calls := 0
	generator := newTestAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
	})

	_, err := generator.Generate(context.Background(), GenerateRequest{Prompt: "anything"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic API error")
	assert.Equal(t, 1, calls, "requests must not be retried")
}

func TestNewGenerator_MissingKey(t *testing.T) {
	_, err := NewGenerator(context.Background(), Settings{Provider: ProviderAnthropic})
	assert.ErrorIs(t, err, ErrMissingAPIKey)

	_, err = NewGenerator(context.Background(), Settings{Provider: ProviderGemini})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewGenerator_UnknownProvider(t *testing.T) {
	_, err := NewGenerator(context.Background(), Settings{Provider: "openai", APIKey: "x"})
	assert.ErrorIs(t, err, ErrUnknownProvider)
}
