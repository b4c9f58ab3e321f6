// Package refiner implements the prompt refinement cycle: one chat call
// per user action, timed, logged, and folded into a user-visible string.
package refiner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/internal/metrics"
	"github.com/promptforge/promptforge/llmlog"
	"github.com/promptforge/promptforge/models"
)

// Provider is a chat-completion backend.
type Provider interface {
	Name() string
	Chat(ctx context.Context, model string, messages []models.ChatMessage) (*models.ChatResult, error)
}

// FallbackMessage is returned for empty prompts without any call or log.
const FallbackMessage = "Please enter a prompt to get a refined version."

const errorFormat = "An error occurred while communicating with %s: %v"

type OutcomeKind string

const (
	OutcomeEmpty   OutcomeKind = "empty"
	OutcomeSuccess OutcomeKind = "success"
	OutcomeError   OutcomeKind = "error"
)

// Outcome is the result of one refine or evaluate invocation. Text is
// always user-visible: the refined content, the fallback message, or a
// formatted error description.
type Outcome struct {
	Text    string
	Kind    OutcomeKind
	Latency time.Duration
}

type Refiner struct {
	providers    map[string]Provider
	systemPrompt config.SystemPromptConfig
	evaluation   config.EvaluationConfig
	logger       *llmlog.Logger
}

func NewRefiner(providers map[string]Provider, cfg *config.Config, logger *llmlog.Logger) *Refiner {
	return &Refiner{
		providers:    providers,
		systemPrompt: cfg.SystemPrompt,
		evaluation:   cfg.Evaluation,
		logger:       logger,
	}
}

// Refine sends the initial prompt to the selected backend together with
// the configured system prompt and returns the refined text. Empty and
// whitespace-only prompts short-circuit to the fallback message with no
// network call and no log record.
func (r *Refiner) Refine(ctx context.Context, providerName, model, initialPrompt, requestId string) Outcome {
	if strings.TrimSpace(initialPrompt) == "" {
		return Outcome{Text: FallbackMessage, Kind: OutcomeEmpty}
	}

	messages := []models.ChatMessage{
		{Role: models.RoleSystem, Content: r.systemPrompt.Content},
		{Role: models.RoleUser, Content: initialPrompt},
	}

	metrics.PromptChars.Observe(float64(len(initialPrompt)))

	return r.call(ctx, providerName, model, initialPrompt, requestId, r.systemPrompt.Id, r.systemPrompt.Version, messages)
}

// Evaluate runs the configured LLM-as-a-judge prompts against a user
// prompt. Same cycle as Refine, different prompt roles and identifiers.
func (r *Refiner) Evaluate(ctx context.Context, providerName, model, userPrompt, requestId string) Outcome {
	if strings.TrimSpace(userPrompt) == "" {
		return Outcome{Text: FallbackMessage, Kind: OutcomeEmpty}
	}

	messages := make([]models.ChatMessage, 0, 3)
	if r.evaluation.System != "" {
		messages = append(messages, models.ChatMessage{Role: models.RoleSystem, Content: r.evaluation.System})
	}
	if r.evaluation.Assistant != "" {
		messages = append(messages, models.ChatMessage{Role: models.RoleAssistant, Content: r.evaluation.Assistant})
	}
	messages = append(messages, models.ChatMessage{Role: models.RoleUser, Content: "User prompt:\n" + userPrompt})

	return r.call(ctx, providerName, model, userPrompt, requestId, r.evaluation.Id, r.evaluation.Version, messages)
}

// call performs the single timed request and emits exactly one log
// record. All failure classes collapse into one user-visible shape.
func (r *Refiner) call(ctx context.Context, providerName, model, inputText, requestId, promptId, promptVersion string, messages []models.ChatMessage) Outcome {
	displayName := providerName
	provider, ok := r.providers[providerName]
	if ok {
		displayName = provider.Name()
	}

	start := time.Now()

	var result *models.ChatResult
	var err error
	if ok {
		result, err = provider.Chat(ctx, model, messages)
	} else {
		err = fmt.Errorf("unknown provider %q", providerName)
	}

	latency := time.Since(start)
	record := llmlog.Record{
		RequestId:     requestId,
		PromptId:      promptId,
		PromptVersion: promptVersion,
		Provider:      providerName,
		ModelUsed:     model,
		Latency:       latency.Seconds(),
	}

	if err != nil {
		record.ErrorMessage = err.Error()
		r.logger.Failure(record)
		metrics.RefineRequestsTotal.WithLabelValues(providerName, model, string(OutcomeError)).Inc()
		return Outcome{
			Text:    fmt.Sprintf(errorFormat, displayName, err),
			Kind:    OutcomeError,
			Latency: latency,
		}
	}

	record.InputTokens = result.InputTokens
	record.OutputTokens = result.OutputTokens
	record.InputText = inputText
	record.OutputText = result.Content
	r.logger.Success(record)
	metrics.RefineRequestsTotal.WithLabelValues(providerName, model, string(OutcomeSuccess)).Inc()
	metrics.RefineDuration.WithLabelValues(providerName, model).Observe(latency.Seconds())

	return Outcome{
		Text:    result.Content,
		Kind:    OutcomeSuccess,
		Latency: latency,
	}
}
