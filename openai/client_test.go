package openai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/models"
)

func TestChatAgainstAzureEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), "path: %s", r.URL.Path)
		assert.Equal(t, "2024-02-01", r.URL.Query().Get("api-version"))
		assert.Equal(t, "test-key", r.Header.Get("Api-Key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "A refined prompt."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 21, "completion_tokens": 9, "total_tokens": 30}
		}`))
	}))
	defer srv.Close()

	client := NewAzureOpenAIClient(config.AzureOpenAIConfig{
		Endpoint:   srv.URL,
		ApiVersion: "2024-02-01",
	}, "test-key")

	result, err := client.Chat(context.Background(), "gpt-4o", []models.ChatMessage{
		{Role: "system", Content: "refine prompts"},
		{Role: "user", Content: "make it better"},
	})

	require.NoError(t, err)
	assert.Equal(t, "A refined prompt.", result.Content)
	require.NotNil(t, result.InputTokens)
	assert.Equal(t, 21, *result.InputTokens)
	require.NotNil(t, result.OutputTokens)
	assert.Equal(t, 9, *result.OutputTokens)
}

func TestChatEmptyChoicesIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client := NewAzureOpenAIClient(config.AzureOpenAIConfig{Endpoint: srv.URL}, "test-key")
	_, err := client.Chat(context.Background(), "gpt-4o", []models.ChatMessage{{Role: "user", Content: "x"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
