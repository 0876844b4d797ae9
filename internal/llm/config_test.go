package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.False(t, cfg.Enabled())
	assert.Equal(t, "claude-haiku", cfg.Anthropic.Model)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "gemini-flash", cfg.Gemini.Model)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Retry.InitialWait)
	assert.Equal(t, 10*time.Second, cfg.Retry.MaxWait)
	assert.Equal(t, 2.0, cfg.Retry.Multiplier)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	cfg, err := LoadConfig(map[string]string{
		"BOKIBATTLE_LLM_PROVIDER":           "openrouter",
		"BOKIBATTLE_OPENROUTER_API_KEY":     "or-key",
		"BOKIBATTLE_OPENROUTER_MODEL":       "meta/llama",
		"BOKIBATTLE_LLM_RETRY_MAX_ATTEMPTS": "5",
		"BOKIBATTLE_LLM_TIMEOUT":            "45s",
	})
	require.NoError(t, err)

	assert.Equal(t, "openrouter", cfg.Provider)
	assert.Equal(t, "or-key", cfg.OpenRouter.APIKey)
	assert.Equal(t, "meta/llama", cfg.OpenRouter.Model)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigRejectsBadDuration(t *testing.T) {
	_, err := LoadConfig(map[string]string{"BOKIBATTLE_LLM_TIMEOUT": "soon"})
	assert.Error(t, err)
}

func TestDiscover(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		provider string
		found    bool
	}{
		{"none", map[string]string{}, "", false},
		{"anthropic", map[string]string{"ANTHROPIC_API_KEY": "a"}, "anthropic", true},
		{"gemini wins", map[string]string{"ANTHROPIC_API_KEY": "a", "GEMINI_API_KEY": "g"}, "gemini", true},
		{"openrouter", map[string]string{"OPENROUTER_API_KEY": "o"}, "openrouter", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			found := discover(&cfg, func(k string) string { return tt.env[k] })
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.provider, cfg.Provider)
			if found {
				assert.NoError(t, cfg.Validate())
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk-test"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"openrouter without key", Config{Provider: "openrouter"}, true},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "unknown"}, true},
		{"disabled", Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
