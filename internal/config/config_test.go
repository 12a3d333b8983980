package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "LOG_LEVEL", "GOOGLE_API_KEY", "LLM_API_KEY", "LLM_PROVIDER", "LLM_MODEL",
		"LLM_SERVER", "LLM_TIMEOUT", "SERVER_PORT", "REDIS_ADDRESS", "REDIS_PASSWORD",
		"SESSION_CORRECT_COIN", "GENERATION_STRICT_TOPIC_COUNT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "googleai", cfg.LLM.Provider)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.Model)
	assert.Equal(t, "google-key", cfg.LLM.APIKey)
	assert.Equal(t, 20*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, int64(10), cfg.Session.CorrectCoin)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 0, cfg.Generation.StrictTopicCount)
	assert.False(t, cfg.UseRedis())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "ollama")
	t.Setenv("LLM_MODEL", "qwen3:0.6b")
	t.Setenv("LLM_SERVER", "http://ollama:11434")
	t.Setenv("LLM_TIMEOUT", "5")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("GENERATION_STRICT_TOPIC_COUNT", "5")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "qwen3:0.6b", cfg.LLM.Model)
	assert.Equal(t, "http://ollama:11434", cfg.LLM.ServerURL)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Generation.StrictTopicCount)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.True(t, cfg.UseRedis())
}

func TestLoadConfig_APIKeyPrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("LLM_API_KEY", "explicit-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "explicit-key", cfg.LLM.APIKey)
}

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8090},
			LLM:    LLMConfig{Provider: "openai", Model: "gpt-4o-mini", APIKey: "k", Timeout: time.Second},
		}
	}

	assert.NoError(t, valid().Validate())

	c := valid()
	c.LLM.Provider = "anthropic"
	assert.ErrorContains(t, c.Validate(), "unsupported LLM provider")

	c = valid()
	c.LLM.Model = ""
	assert.ErrorContains(t, c.Validate(), "model name cannot be empty")

	c = valid()
	c.LLM.Timeout = 0
	assert.ErrorContains(t, c.Validate(), "timeout must be positive")

	c = valid()
	c.LLM.Provider = "ollama"
	c.LLM.APIKey = ""
	c.LLM.ServerURL = ""
	assert.ErrorContains(t, c.Validate(), "server URL is required")
}
