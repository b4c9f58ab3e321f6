package openai

import (
	"context"
	"fmt"

	openaigo "github.com/sashabaranov/go-openai"

	"github.com/promptforge/promptforge/internal/config"
	"github.com/promptforge/promptforge/models"
)

// AzureOpenAIClient wraps the go-openai client configured for an Azure
// OpenAI deployment.
type AzureOpenAIClient struct {
	client *openaigo.Client
}

func NewAzureOpenAIClient(cfg config.AzureOpenAIConfig, apiKey string) *AzureOpenAIClient {
	clientConfig := openaigo.DefaultAzureConfig(apiKey, cfg.Endpoint)
	if cfg.ApiVersion != "" {
		clientConfig.APIVersion = cfg.ApiVersion
	}
	return &AzureOpenAIClient{
		client: openaigo.NewClientWithConfig(clientConfig),
	}
}

func (c *AzureOpenAIClient) Name() string {
	return "Azure OpenAI"
}

func (c *AzureOpenAIClient) Chat(ctx context.Context, model string, messages []models.ChatMessage) (*models.ChatResult, error) {
	request := openaigo.ChatCompletionRequest{
		Model:    model,
		Messages: toOpenAIMessages(messages),
	}

	resp, err := c.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("azure openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("azure openai: response has no choices")
	}

	inputTokens := resp.Usage.PromptTokens
	outputTokens := resp.Usage.CompletionTokens

	return &models.ChatResult{
		Content:      resp.Choices[0].Message.Content,
		InputTokens:  &inputTokens,
		OutputTokens: &outputTokens,
	}, nil
}

func toOpenAIMessages(messages []models.ChatMessage) []openaigo.ChatCompletionMessage {
	converted := make([]openaigo.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		converted = append(converted, openaigo.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return converted
}
