package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/models"
	"github.com/promptforge/promptforge/ollama"
)

func TestListModels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var tagCalls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tagCalls.Add(1)
		w.Write([]byte(`{"models":[{"name":"llama3:latest"}]}`))
	}))
	defer srv.Close()

	cfg := &config.Config{
		Provider:    "ollama",
		Models:      []string{"llama3", "mistral"},
		AzureOpenAI: config.AzureOpenAIConfig{Models: []string{"gpt-4o"}},
	}
	handler := NewModelsHandler(cfg, ollama.NewOllamaClient(srv.URL))

	router := gin.New()
	router.GET("/api/models", handler.ListModels)

	var resp struct {
		Provider  string                  `json:"provider"`
		Providers []models.ProviderModels `json:"providers"`
	}

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	}

	assert.Equal(t, "ollama", resp.Provider)
	require.Len(t, resp.Providers, 2)
	assert.Equal(t, "ollama", resp.Providers[0].Provider)
	assert.Equal(t, []string{"llama3", "mistral"}, resp.Providers[0].Models)
	assert.True(t, resp.Providers[0].Available)
	assert.Equal(t, "azure_openai", resp.Providers[1].Provider)

	// Availability comes from the cache after the first lookup.
	assert.Equal(t, int64(1), tagCalls.Load())
}
