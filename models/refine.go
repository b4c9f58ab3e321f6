package models

type RefinePromptRequest struct {
	Prompt   string `json:"prompt"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

type RefinePromptResponse struct {
	RefinedPrompt string `json:"refinedPrompt"`
	Provider      string `json:"provider"`
	Model         string `json:"model"`
	LatencyMs     int64  `json:"latencyMs"`
	RequestId     string `json:"requestId,omitempty"`
}

type EvaluatePromptRequest struct {
	Prompt   string `json:"prompt"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

type EvaluatePromptResponse struct {
	Evaluation string `json:"evaluation"`
	Provider   string `json:"provider"`
	Model      string `json:"model"`
	LatencyMs  int64  `json:"latencyMs"`
}

// ProviderModels describes one selectable provider on /api/models.
type ProviderModels struct {
	Provider  string   `json:"provider"`
	Models    []string `json:"models"`
	Available bool     `json:"available"`
}
