package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/internal/middleware"
	"github.com/promptforge/promptforge/internal/refiner"
	"github.com/promptforge/promptforge/internal/utils"
	"github.com/promptforge/promptforge/models"
	stringutils "github.com/promptforge/promptforge/utils"
)

type RefineHandler struct {
	refiner *refiner.Refiner
	config  *config.Config
}

func NewRefineHandler(r *refiner.Refiner, cfg *config.Config) *RefineHandler {
	return &RefineHandler{
		refiner: r,
		config:  cfg,
	}
}

// RefinePrompt handles POST /api/refine.
func (h *RefineHandler) RefinePrompt(c *gin.Context) {
	var request models.RefinePromptRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ProcessBadRequest(c, "invalid JSON body")
		return
	}

	provider := request.Provider
	if provider == "" {
		provider = h.config.Provider
	}

	// The page only offers configured models, but the API is reachable
	// directly, so membership is checked again here.
	if len(h.config.ModelsFor(provider)) == 0 {
		utils.ProcessBadRequest(c, "unknown provider: "+provider)
		return
	}
	if !h.config.HasModel(provider, request.Model) {
		utils.ProcessBadRequest(c, "unknown model: "+request.Model)
		return
	}

	requestId := middleware.RequestIdFrom(c)
	outcome := h.refiner.Refine(c.Request.Context(), provider, request.Model, request.Prompt, requestId)

	if outcome.Kind == refiner.OutcomeError {
		c.JSON(http.StatusBadGateway, gin.H{"error": outcome.Text})
		return
	}

	c.JSON(http.StatusOK, models.RefinePromptResponse{
		RefinedPrompt: outcome.Text,
		Provider:      provider,
		Model:         request.Model,
		LatencyMs:     outcome.Latency.Milliseconds(),
		RequestId:     requestId,
	})
}

// EvaluatePrompt handles POST /api/evaluate, scoring a user prompt with
// the configured judge prompts.
func (h *RefineHandler) EvaluatePrompt(c *gin.Context) {
	var request models.EvaluatePromptRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ProcessBadRequest(c, "invalid JSON body")
		return
	}

	provider := request.Provider
	if provider == "" {
		provider = h.config.Provider
	}

	if len(h.config.ModelsFor(provider)) == 0 {
		utils.ProcessBadRequest(c, "unknown provider: "+provider)
		return
	}
	if !h.config.HasModel(provider, request.Model) {
		utils.ProcessBadRequest(c, "unknown model: "+request.Model)
		return
	}

	requestId := middleware.RequestIdFrom(c)
	outcome := h.refiner.Evaluate(c.Request.Context(), provider, request.Model, request.Prompt, requestId)

	if outcome.Kind == refiner.OutcomeError {
		c.JSON(http.StatusBadGateway, gin.H{"error": outcome.Text})
		return
	}

	c.JSON(http.StatusOK, models.EvaluatePromptResponse{
		Evaluation: stringutils.CleanJSONResponse(outcome.Text),
		Provider:   provider,
		Model:      request.Model,
		LatencyMs:  outcome.Latency.Milliseconds(),
	})
}
