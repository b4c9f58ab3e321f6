package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/models"
	"github.com/promptforge/promptforge/ollama"
)

const installedModelsCacheKey = "ollama_installed_models"

type ModelsHandler struct {
	config       *config.Config
	ollamaClient *ollama.OllamaClient
	cache        *cache.Cache
}

func NewModelsHandler(cfg *config.Config, ollamaClient *ollama.OllamaClient) *ModelsHandler {
	return &ModelsHandler{
		config:       cfg,
		ollamaClient: ollamaClient,
		cache:        cache.New(60*time.Second, 5*time.Minute),
	}
}

// ListModels handles GET /api/models. The selector on the page is
// populated exclusively from this response.
func (h *ModelsHandler) ListModels(c *gin.Context) {
	providers := []models.ProviderModels{
		{
			Provider:  "ollama",
			Models:    h.config.Models,
			Available: h.ollamaAvailable(),
		},
	}

	for _, name := range []string{"azure_openai", "gemini", "claude"} {
		configured := h.config.ModelsFor(name)
		if len(configured) == 0 {
			continue
		}
		providers = append(providers, models.ProviderModels{
			Provider:  name,
			Models:    configured,
			Available: true,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"provider":  h.config.Provider,
		"providers": providers,
	})
}

// ollamaAvailable checks the local instance via /api/tags, cached so the
// page can poll without hammering Ollama.
func (h *ModelsHandler) ollamaAvailable() bool {
	if available, found := h.cache.Get(installedModelsCacheKey); found {
		return available.(bool)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := h.ollamaClient.ListModels(ctx)
	available := err == nil
	h.cache.Set(installedModelsCacheKey, available, cache.DefaultExpiration)
	return available
}
