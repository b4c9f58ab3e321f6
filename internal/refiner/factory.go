package refiner

import (
	"os"

	"github.com/promptforge/promptforge/claude"
	"github.com/promptforge/promptforge/gemini"
	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/ollama"
	"github.com/promptforge/promptforge/openai"
)

// BuildProviders constructs one client per configured backend. Ollama is
// always present; the hosted providers are only registered when their
// API key is in the environment, mirroring what the page can offer.
func BuildProviders(cfg *config.Config) map[string]Provider {
	providers := map[string]Provider{
		"ollama": ollama.NewOllamaClient(cfg.Ollama.BaseUrl),
	}

	if key := os.Getenv("AZURE_OPENAI_API_KEY"); key != "" && cfg.AzureOpenAI.Endpoint != "" {
		providers["azure_openai"] = openai.NewAzureOpenAIClient(cfg.AzureOpenAI, key)
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		providers["gemini"] = gemini.NewGeminiClient(key)
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		providers["claude"] = claude.NewClaudeClient(key)
	}

	return providers
}
