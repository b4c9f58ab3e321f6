package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptforge/promptforge/ollama"
)

type HealthHandler struct {
	ollamaClient *ollama.OllamaClient
}

func NewHealthHandler(ollamaClient *ollama.OllamaClient) *HealthHandler {
	return &HealthHandler{ollamaClient: ollamaClient}
}

func (h *HealthHandler) IsHealthy(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"ollama": h.ollamaClient.Available(),
	})
}
