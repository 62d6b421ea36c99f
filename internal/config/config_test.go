package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/wordguess/internal/llm"
)

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "Lexicon.txt", cfg.Words)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.False(t, cfg.Classic)
	assert.Equal(t, 1, cfg.Hints)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.LLM.Provider)
	assert.Equal(t, 15*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := Parse(map[string]string{
		"WORDGUESS_WORDS":              "builtin",
		"WORDGUESS_SEED":               "42",
		"WORDGUESS_CLASSIC":            "true",
		"WORDGUESS_HINTS":              "3",
		"WORDGUESS_DB":                 "/tmp/w.db",
		"WORDGUESS_LOG_LEVEL":          "debug",
		"WORDGUESS_LLM_PROVIDER":       "anthropic",
		"WORDGUESS_ANTHROPIC_API_KEY":  "sk-test",
		"WORDGUESS_ANTHROPIC_MODEL":    "claude-sonnet",
		"WORDGUESS_LLM_RETRY_MAX_WAIT": "1s",
	})
	require.NoError(t, err)

	assert.Equal(t, "builtin", cfg.Words)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Classic)
	assert.Equal(t, 3, cfg.Hints)
	assert.Equal(t, "/tmp/w.db", cfg.DB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, llm.ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.Anthropic.APIKey)
	assert.Equal(t, "claude-sonnet", cfg.LLM.Anthropic.Model)
	assert.Equal(t, time.Second, cfg.LLM.Retry.MaxWait)
}

func TestParse_DiscoversVendorKey(t *testing.T) {
	cfg, err := Parse(map[string]string{"OPENAI_API_KEY": "sk-open"})
	require.NoError(t, err)
	assert.Equal(t, llm.ProviderOpenAI, cfg.LLM.Provider)
	assert.Equal(t, "sk-open", cfg.LLM.OpenAI.APIKey)
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"bad seed":      {"WORDGUESS_SEED": "-1"},
		"bad bool":      {"WORDGUESS_CLASSIC": "maybe"},
		"negative hint": {"WORDGUESS_HINTS": "-2"},
		"bad level":     {"WORDGUESS_LOG_LEVEL": "loud"},
	}
	for name, environ := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(environ)
			require.Error(t, err)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("WORDGUESS_HINTS=4\n"), 0o644))

	// godotenv never overrides variables that are already set.
	t.Setenv("WORDGUESS_WORDS", "builtin")
	t.Setenv("WORDGUESS_HINTS", "")
	require.NoError(t, os.Unsetenv("WORDGUESS_HINTS"))
	t.Cleanup(func() { os.Unsetenv("WORDGUESS_HINTS") })

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Hints)
	assert.Equal(t, "builtin", cfg.Words)
}
