package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "Remote", cfg.Chat.BaseLocation)
	assert.Equal(t, 3, cfg.Chat.MaxResults)
	assert.True(t, cfg.Chat.ApplyFilters)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.OllamaURL)
	assert.Equal(t, "jsearch.p.rapidapi.com", cfg.Providers.JSearch.APIHost)
	assert.Equal(t, "software-dev", cfg.Providers.Remotive.Category)
	assert.Equal(t, 500, cfg.Resume.PreviewLength)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
server:
  port: 9999
chat:
  base_location: "Berlin"
  max_results: 5
llm:
  provider: "claude"
  timeout: 90s
providers:
  jsearch:
    api_key: "${TEST_JSEARCH_KEY}"
logging:
  level: "debug"
  adapters:
    - name: "stdout"
      type: "stdout"
      enabled: true
      options:
        format: "text"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Setenv("TEST_JSEARCH_KEY", "secret-from-env")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "Berlin", cfg.Chat.BaseLocation)
	assert.Equal(t, 5, cfg.Chat.MaxResults)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, 90*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "secret-from-env", cfg.Providers.JSearch.APIKey)
	assert.Equal(t, "debug", cfg.Logging.Level)

	require.Len(t, cfg.Logging.Adapters, 1)
	assert.Equal(t, "stdout", cfg.Logging.Adapters[0].Type)
	assert.Equal(t, "text", cfg.Logging.Adapters[0].Options["format"])
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7777")
	t.Setenv("LLM_PROVIDER", "claude")
	t.Setenv("JSEARCH_API_KEY", "env-key")
	t.Setenv("CHAT_BASE_LOCATION", "Lagos")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, "env-key", cfg.Providers.JSearch.APIKey)
	assert.Equal(t, "Lagos", cfg.Chat.BaseLocation)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("EXPAND_ME", "value")

	assert.Equal(t, "key: value", expandEnvVars("key: ${EXPAND_ME}"))
	assert.Equal(t, "key: value", expandEnvVars("key: $EXPAND_ME"))
	// Unset variables are left as-is
	assert.Equal(t, "key: ${NOT_SET_ANYWHERE}", expandEnvVars("key: ${NOT_SET_ANYWHERE}"))
}
