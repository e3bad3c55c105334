package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		configPath := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s

feed:
  timeout: 3s
  user_agent: test-agent

translate:
  provider: openai
  api_key: secret
  base_url: https://generativelanguage.googleapis.com/v1beta/openai
  model: gemini-2.0-flash
  language: 日本語
  temperature: 0.2
  top: 10
  batch_size: 2
  batch_delay: 500ms
  cache_size: 50
  rate_limit: 1.5

cache:
  ttl: 30m
  mock_ttl: 10s
`)
		cfg, err := Load(configPath)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 3*time.Second, cfg.Feed.Timeout)
		assert.Equal(t, "test-agent", cfg.Feed.UserAgent)

		assert.Equal(t, "openai", cfg.Translate.Provider)
		assert.Equal(t, "secret", cfg.Translate.APIKey)
		assert.Equal(t, "https://generativelanguage.googleapis.com/v1beta/openai", cfg.Translate.BaseURL)
		assert.Equal(t, "gemini-2.0-flash", cfg.Translate.Model)
		assert.Equal(t, "日本語", cfg.Translate.Language)
		assert.InEpsilon(t, 0.2, cfg.Translate.Temperature, 0.001)
		assert.Equal(t, 10, cfg.Translate.Top)
		assert.Equal(t, 2, cfg.Translate.BatchSize)
		assert.Equal(t, 500*time.Millisecond, cfg.Translate.BatchDelay)
		assert.Equal(t, 50, cfg.Translate.CacheSize)
		assert.InEpsilon(t, 1.5, cfg.Translate.RateLimit, 0.001)

		live, mock := cfg.CacheTTLs()
		assert.Equal(t, 30*time.Minute, live)
		assert.Equal(t, 10*time.Second, mock)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "server:\n  listen: \":8081\"\n"))
		require.NoError(t, err)

		assert.Equal(t, ":8081", cfg.Server.Listen)
		assert.Equal(t, 60*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 5*time.Second, cfg.Feed.Timeout)
		assert.Empty(t, cfg.Feed.UserAgent)
		assert.Equal(t, "gemini", cfg.Translate.Provider)
		assert.Equal(t, "简体中文", cfg.Translate.Language)
		assert.Equal(t, "v1beta", cfg.Translate.APIVersion)
		assert.Equal(t, 20, cfg.Translate.Top)
		assert.Equal(t, 3, cfg.Translate.BatchSize)
		assert.Equal(t, time.Second, cfg.Translate.BatchDelay)
		assert.Equal(t, 1000, cfg.Translate.CacheSize)
		assert.Equal(t, time.Hour, cfg.Cache.TTL)
		assert.Equal(t, time.Minute, cfg.Cache.MockTTL)
	})

	t.Run("explicit zeros kept", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, `
translate:
  top: 0
  batch_delay: 0s
  temperature: 0
cache:
  ttl: 0s
  mock_ttl: 0s
`))
		require.NoError(t, err)

		assert.Equal(t, 0, cfg.Translate.Top)
		assert.Equal(t, time.Duration(0), cfg.Translate.BatchDelay)
		assert.Equal(t, time.Duration(0), cfg.Cache.TTL)
		assert.Equal(t, time.Duration(0), cfg.Cache.MockTTL)
		live, mock := cfg.CacheTTLs()
		assert.Zero(t, live)
		assert.Zero(t, mock)

		// fields not in the file keep defaults
		assert.Equal(t, 3, cfg.Translate.BatchSize)
		assert.Equal(t, 30*time.Second, cfg.Translate.Timeout)
		assert.Equal(t, ":8080", cfg.Server.Listen)
	})

	t.Run("explicit zero timeout rejected", func(t *testing.T) {
		_, err := Load(writeConfig(t, "feed:\n  timeout: 0s\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Feed.Timeout")
	})

	t.Run("env expansion", func(t *testing.T) {
		t.Setenv("TEST_AINEWS_KEY", "from-env")
		cfg, err := Load(writeConfig(t, "translate:\n  api_key: ${TEST_AINEWS_KEY}\n"))
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Translate.APIKey)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := Load(writeConfig(t, "translate:\n  provider: bard\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Translate.Provider")
		assert.Contains(t, err.Error(), "oneof")
	})

	t.Run("temperature out of range", func(t *testing.T) {
		_, err := Load(writeConfig(t, "translate:\n  temperature: 3\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Translate.Temperature")
	})

	t.Run("invalid base url", func(t *testing.T) {
		_, err := Load(writeConfig(t, "translate:\n  base_url: not a url\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Translate.BaseURL")
	})

	t.Run("server timeout too short", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server:\n  timeout: 10ms\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Server.Timeout")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server:\n  listen: [\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":8080", listen)
	assert.Equal(t, 60*time.Second, timeout)

	live, mock := cfg.CacheTTLs()
	assert.Equal(t, time.Hour, live)
	assert.Equal(t, time.Minute, mock)

	cfg.Cache.Disabled = true
	live, mock = cfg.CacheTTLs()
	assert.Zero(t, live)
	assert.Zero(t, mock)
}
