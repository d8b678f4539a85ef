package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup location at an empty temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Empty(t, cfg.DBPath)
	assert.Empty(t, cfg.BankPath)
	assert.Equal(t, filepath.Join(dir, "netprep", "netprep.log"), cfg.LogFile)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`env: production
db_path: /tmp/np.db
llm:
  provider: openai
  timeout: 5s
  openai:
    api_key: sk-file
    model: gpt-4o
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/tmp/np.db", cfg.DBPath)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "sk-file", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.Model)
}

func TestLoad_XDGFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "netprep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "netprep", "config.yaml"), []byte("bank_path: extra.yaml\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "extra.yaml", cfg.BankPath)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("NETPREP_ENV", "production")
	t.Setenv("NETPREP_DB", "/data/netprep.db")
	t.Setenv("NETPREP_LLM_PROVIDER", "anthropic")
	t.Setenv("NETPREP_ANTHROPIC_API_KEY", "sk-ant")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/data/netprep.db", cfg.DBPath)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "sk-ant", cfg.LLM.Anthropic.APIKey)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("NETPREP_BANK=from-dotenv.yaml\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("NETPREP_BANK") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.yaml", cfg.BankPath)
}

func TestLLMConfig_Explicit(t *testing.T) {
	cfg := &Config{LLM: LLM{
		Provider: "gemini",
		Timeout:  12 * time.Second,
		Gemini:   Provider{APIKey: "g-key"},
	}}

	out, ok := cfg.LLMConfig()
	require.True(t, ok)
	assert.Equal(t, "gemini", out.Provider)
	assert.Equal(t, "g-key", out.APIKey)
	assert.Equal(t, "gemini-flash", out.Model, "default model kept")
	assert.Equal(t, 12*time.Second, out.Timeout)
	assert.NoError(t, out.Validate())
}

func TestLLMConfig_Discover(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-discovered")

	out, ok := (&Config{}).LLMConfig()
	require.True(t, ok)
	assert.Equal(t, "openai", out.Provider)
	assert.Equal(t, "sk-discovered", out.APIKey)
}

func TestLLMConfig_NothingConfigured(t *testing.T) {
	isolate(t)
	_, ok := (&Config{}).LLMConfig()
	assert.False(t, ok)
}

func TestLLMConfig_FileOverridesDiscovered(t *testing.T) {
	isolate(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-env")

	cfg := &Config{LLM: LLM{
		Anthropic: Provider{Model: "claude-sonnet"},
		OpenAI:    Provider{APIKey: "ignored"},
	}}
	out, ok := cfg.LLMConfig()
	require.True(t, ok)
	assert.Equal(t, "anthropic", out.Provider)
	assert.Equal(t, "sk-env", out.APIKey)
	assert.Equal(t, "claude-sonnet", out.Model)
}
