package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8420", cfg.Server.Addr)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.True(t, cfg.Pipeline.VarietyRetry)
	assert.Equal(t, 60*time.Second, cfg.StageTimeout())
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dashgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9000"
llm:
  provider: openai
  model: gpt-4o
pipeline:
  stage_timeout: 15s
  emit_buffer: 4
logging:
  level: debug
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, 15*time.Second, cfg.StageTimeout())
	assert.Equal(t, 4, cfg.Pipeline.EmitBuffer)
	// Untouched sections keep their defaults.
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DASHGEN_ADDR", ":7777")
	t.Setenv("DASHGEN_LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":7777", cfg.Server.Addr)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
}

func TestAPIKeyFromFileWins(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-key")

	path := filepath.Join(t.TempDir(), "dashgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("llm:\n  api_key: file-key\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file-key", cfg.LLM.APIKey)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.LLM.Provider = "mystery"
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.Server.Addr = ""
	assert.Error(t, cfg.Validate())
}

func TestDurationFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pipeline.StageTimeout = "not-a-duration"
	assert.Equal(t, 60*time.Second, cfg.StageTimeout())

	cfg.Server.ShutdownTimeout = "-5s"
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout())
}
