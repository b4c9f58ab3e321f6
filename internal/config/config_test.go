package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Models: []string{"llama3"},
		SystemPrompt: SystemPromptConfig{
			Id:      "system_prompt_generator",
			Version: "1.0.0",
			Content: "refine prompts",
		},
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateEmptyModelsList(t *testing.T) {
	cfg := validConfig()
	cfg.Models = nil
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "models")
}

func TestValidateMissingSystemPromptFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"id", func(c *Config) { c.SystemPrompt.Id = "" }, "system_prompt.id"},
		{"version", func(c *Config) { c.SystemPrompt.Version = "" }, "system_prompt.version"},
		{"content", func(c *Config) { c.SystemPrompt.Content = "" }, "system_prompt.content"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestModelsFor(t *testing.T) {
	cfg := validConfig()
	cfg.AzureOpenAI.Models = []string{"gpt-4o"}

	assert.Equal(t, []string{"llama3"}, cfg.ModelsFor("ollama"))
	assert.Equal(t, []string{"gpt-4o"}, cfg.ModelsFor("azure_openai"))
	assert.Nil(t, cfg.ModelsFor("unknown"))

	assert.True(t, cfg.HasModel("ollama", "llama3"))
	assert.False(t, cfg.HasModel("ollama", "gpt-4o"))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	body := `{
		"models": ["llama3"],
		"system_prompt": {"id": "p1", "version": "v1", "content": "refine"}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "testconfig.json"), []byte(body), 0o644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := LoadConfig("testconfig")
	require.NoError(t, err)

	assert.Equal(t, []string{"llama3"}, cfg.Models)
	assert.Equal(t, "p1", cfg.SystemPrompt.Id)
	assert.Equal(t, "v1", cfg.SystemPrompt.Version)
	assert.Equal(t, "refine", cfg.SystemPrompt.Content)

	// Defaults fill the rest.
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.Ollama.BaseUrl)
	assert.Equal(t, "llm_calls.log", cfg.Logging.File)
}

func TestLoadConfigMissingFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	_, err = LoadConfig("doesnotexist")
	require.Error(t, err)
}
