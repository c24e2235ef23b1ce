package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "gemini", cfg.Provider)
		assert.Empty(t, cfg.Addr)
	})

	t.Run("reads yaml fields", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
addr: ":8080"
provider: openai
model: test-model
openaiApiKey: file-key
rateLimit: 2.5
`), 0o600))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Addr)
		assert.Equal(t, "openai", cfg.Provider)
		assert.Equal(t, "test-model", cfg.Model)
		assert.Equal(t, "file-key", cfg.OpenAIAPIKey)
		assert.InDelta(t, 2.5, cfg.RateLimit, 0.001)
	})

	t.Run("environment overrides credentials", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("geminiApiKey: file-key\n"), 0o600))

		t.Setenv("GEMINI_API_KEY", "env-key")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.GeminiAPIKey)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o600))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})
}

func TestDefaultConfigPath(t *testing.T) {
	t.Run("honors BRANDSIGHT_CONFIG", func(t *testing.T) {
		t.Setenv("BRANDSIGHT_CONFIG", "/tmp/custom.yaml")
		assert.Equal(t, "/tmp/custom.yaml", DefaultConfigPath())
	})
}
