package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig
	Provider     string
	Models       []string
	SystemPrompt SystemPromptConfig `mapstructure:"system_prompt"`
	Evaluation   EvaluationConfig
	Ollama       OllamaConfig
	AzureOpenAI  AzureOpenAIConfig `mapstructure:"azure_openai"`
	Gemini       GeminiConfig
	Claude       ClaudeConfig
	Logging      LoggingConfig
	RateLimit    RateLimitConfig `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Port int
}

// SystemPromptConfig is the fixed instruction injected as the system-role
// message of every refine call. Id and Version are only used for logging.
type SystemPromptConfig struct {
	Id      string
	Version string
	Content string
}

// EvaluationConfig holds the LLM-as-a-judge prompts.
type EvaluationConfig struct {
	Id        string
	Version   string
	System    string
	Assistant string
}

type OllamaConfig struct {
	BaseUrl string `mapstructure:"base_url"`
}

type AzureOpenAIConfig struct {
	Endpoint   string
	ApiVersion string `mapstructure:"api_version"`
	Models     []string
}

type GeminiConfig struct {
	Models []string
}

type ClaudeConfig struct {
	Models []string
}

type LoggingConfig struct {
	File string
}

type RateLimitConfig struct {
	Rps   float64
	Burst int
}

const defaultOllamaBaseUrl = "http://localhost:11434"

func LoadConfig(configName string) (*Config, error) {
	var config Config

	viper.SetConfigName(configName)
	viper.SetConfigType("json")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("provider", "ollama")
	viper.SetDefault("ollama.base_url", defaultOllamaBaseUrl)
	viper.SetDefault("logging.file", "llm_calls.log")
	viper.SetDefault("ratelimit.rps", 5)
	viper.SetDefault("ratelimit.burst", 10)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate fails fast on the fields every refine call depends on.
func (c *Config) Validate() error {
	if len(c.Models) == 0 {
		return fmt.Errorf("config: models list is empty")
	}
	if c.SystemPrompt.Id == "" {
		return fmt.Errorf("config: system_prompt.id is required")
	}
	if c.SystemPrompt.Version == "" {
		return fmt.Errorf("config: system_prompt.version is required")
	}
	if c.SystemPrompt.Content == "" {
		return fmt.Errorf("config: system_prompt.content is required")
	}
	return nil
}

// ModelsFor returns the selectable model names for a provider. The page
// only ever offers these, so anything else on the API is rejected.
func (c *Config) ModelsFor(provider string) []string {
	switch provider {
	case "ollama":
		return c.Models
	case "azure_openai":
		return c.AzureOpenAI.Models
	case "gemini":
		return c.Gemini.Models
	case "claude":
		return c.Claude.Models
	case "mock":
		return []string{"mock-model"}
	}
	return nil
}

func (c *Config) HasModel(provider, model string) bool {
	for _, m := range c.ModelsFor(provider) {
		if m == model {
			return true
		}
	}
	return false
}
