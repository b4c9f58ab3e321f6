package gemini

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/promptforge/promptforge/models"
)

// GeminiClient calls the Gemini API through the official genai SDK.
type GeminiClient struct {
	apiKey string
}

func NewGeminiClient(apiKey string) *GeminiClient {
	return &GeminiClient{apiKey: apiKey}
}

func (c *GeminiClient) Name() string {
	return "Gemini"
}

func (c *GeminiClient) Chat(ctx context.Context, model string, messages []models.ChatMessage) (*models.ChatResult, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	defer client.Close()

	genModel := client.GenerativeModel(model)

	// Gemini takes the system-role message as a separate instruction,
	// not as part of the conversation.
	parts := make([]genai.Part, 0, len(messages))
	for _, message := range messages {
		if message.Role == models.RoleSystem {
			genModel.SystemInstruction = &genai.Content{
				Parts: []genai.Part{genai.Text(message.Content)},
			}
			continue
		}
		parts = append(parts, genai.Text(message.Content))
	}

	resp, err := genModel.GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("gemini: response has no candidates")
	}

	var content string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			content += string(text)
		}
	}
	if content == "" {
		return nil, fmt.Errorf("gemini: response has no text content")
	}

	result := &models.ChatResult{Content: content}
	if resp.UsageMetadata != nil {
		inputTokens := int(resp.UsageMetadata.PromptTokenCount)
		outputTokens := int(resp.UsageMetadata.CandidatesTokenCount)
		result.InputTokens = &inputTokens
		result.OutputTokens = &outputTokens
	}
	return result, nil
}
