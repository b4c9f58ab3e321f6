package main

import (
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/internal/handlers"
	"github.com/promptforge/promptforge/internal/middleware"
	"github.com/promptforge/promptforge/internal/refiner"
	"github.com/promptforge/promptforge/llmlog"
	"github.com/promptforge/promptforge/localratelimiter"
	"github.com/promptforge/promptforge/ollama"
	"github.com/promptforge/promptforge/web"
)

func main() {
	configName := os.Getenv("APP_CONFIG")
	if configName == "" {
		configName = "config"
	}

	// Initialize configuration. Missing or malformed config is fatal.
	config, err := config.LoadConfig(configName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// LLM call logger
	llmLogger, err := llmlog.NewLogger(config.Logging.File)
	if err != nil {
		log.Fatalf("Failed to open LLM call log: %v", err)
	}
	defer llmLogger.Close()

	// Provider clients
	providers := refiner.BuildProviders(config)
	ollamaClient := ollama.NewOllamaClient(config.Ollama.BaseUrl)

	// Refinement core
	promptRefiner := refiner.NewRefiner(providers, config, llmLogger)

	// Rate Limiter
	rateLimiter := localratelimiter.NewRateLimiter(config.RateLimit.Rps, config.RateLimit.Burst)

	// Initialize Router
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.RequestId())
	router.Use(rateLimiter.RateLimiterMiddleware())

	// Metrics handler
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Handler
	healthHandler := handlers.NewHealthHandler(ollamaClient)
	router.GET("/api/health", healthHandler.IsHealthy)

	// Models Handler
	modelsHandler := handlers.NewModelsHandler(config, ollamaClient)
	router.GET("/api/models", modelsHandler.ListModels)

	// Refine Handler
	refineHandler := handlers.NewRefineHandler(promptRefiner, config)
	router.POST("/api/refine", refineHandler.RefinePrompt)
	router.POST("/api/evaluate", refineHandler.EvaluatePrompt)

	// Embedded page
	staticFiles, err := fs.Sub(web.Static, "static")
	if err != nil {
		log.Fatalf("Failed to load embedded page: %v", err)
	}
	router.GET("/", func(c *gin.Context) {
		// Serving the directory root avoids the index.html redirect in
		// http.FileServer.
		c.FileFromFS("/", http.FS(staticFiles))
	})

	router.Run(fmt.Sprintf(":%d", config.Server.Port))
}
