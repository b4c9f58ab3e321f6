package mockllm

import (
	"context"
	"errors"

	"github.com/promptforge/promptforge/models"
)

// MockLLMClient is a canned provider used in tests and as a keyless
// demo backend. Responses and failures are fully controlled by the
// caller, unlike a real backend.
type MockLLMClient struct {
	// Response is returned verbatim on success.
	Response string
	// Err, when set, makes every call fail.
	Err error
	// Tokens, when non-nil, is reported as the output token count.
	Tokens *int

	// LastModel and LastMessages record the most recent call.
	LastModel    string
	LastMessages []models.ChatMessage
}

func NewMockLLMClient(response string) *MockLLMClient {
	return &MockLLMClient{Response: response}
}

func (c *MockLLMClient) Name() string {
	return "Mock"
}

func (c *MockLLMClient) Chat(_ context.Context, model string, messages []models.ChatMessage) (*models.ChatResult, error) {
	c.LastModel = model
	c.LastMessages = messages

	if c.Err != nil {
		return nil, c.Err
	}
	if c.Response == "" {
		return nil, errors.New("mock: response has no message content")
	}
	return &models.ChatResult{
		Content:      c.Response,
		OutputTokens: c.Tokens,
	}, nil
}
