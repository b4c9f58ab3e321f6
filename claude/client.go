package claude

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"

	"github.com/promptforge/promptforge/models"
)

const defaultMaxTokens = 2048

// ClaudeClient calls the Anthropic Messages API.
type ClaudeClient struct {
	client *anthropic.Client
}

func NewClaudeClient(apiKey string) *ClaudeClient {
	return &ClaudeClient{client: anthropic.NewClient(apiKey)}
}

func (c *ClaudeClient) Name() string {
	return "Claude"
}

func (c *ClaudeClient) Chat(ctx context.Context, model string, messages []models.ChatMessage) (*models.ChatResult, error) {
	request := anthropic.MessagesRequest{
		Model:     anthropic.Model(model),
		MaxTokens: defaultMaxTokens,
	}

	// Claude supports the system role only as an independent parameter.
	for _, message := range messages {
		switch message.Role {
		case models.RoleSystem:
			request.System = message.Content
		case models.RoleAssistant:
			request.Messages = append(request.Messages, anthropic.NewAssistantTextMessage(message.Content))
		default:
			request.Messages = append(request.Messages, anthropic.NewUserTextMessage(message.Content))
		}
	}

	resp, err := c.client.CreateMessages(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("claude: create messages: %w", err)
	}

	content := resp.GetFirstContentText()
	if content == "" {
		return nil, fmt.Errorf("claude: response has no text content")
	}

	inputTokens := resp.Usage.InputTokens
	outputTokens := resp.Usage.OutputTokens

	return &models.ChatResult{
		Content:      content,
		InputTokens:  &inputTokens,
		OutputTokens: &outputTokens,
	}, nil
}
