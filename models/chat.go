package models

// ChatMessage is one role-tagged message in a chat request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatResult is what a provider returns for a single chat call.
// Token counts are nil when the backend does not report them.
type ChatResult struct {
	Content      string
	InputTokens  *int
	OutputTokens *int
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
