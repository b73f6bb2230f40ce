// cliparse/cliparse_test.go
package cliparse

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "DATABASE_URL", "DATABASE_TYPE", "LOG_LEVEL", "CONFIG_FILE",
	"BASIC_AUTH_USER", "BASIC_AUTH_PASSWORD",
	"LLM_PROVIDER", "LLM_MODEL", "LLM_BASE_URL", "LLM_TIMEOUT", "LLM_API_KEY",
	"OPENAI_API_KEY", "ANTHROPIC_API_KEY",
}

// clearEnv blanks every variable ParseFlags reads; empty counts as unset
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "data.db", cfg.DatabaseURL)
	assert.Equal(t, "sqlite", cfg.DatabaseType)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Empty(t, cfg.LLM.Model, "model is left to the provider's default")
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
	assert.False(t, cfg.BasicAuthEnabled())
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_TIMEOUT", "5s")

	cfg, err := ParseFlags([]string{})
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "postgres://test", cfg.DatabaseURL)
	assert.Equal(t, "postgres", cfg.DatabaseType)
	assert.Equal(t, "sk-test", cfg.LLM.APIKey)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("LLM_MODEL", "gpt-4o")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-llm-model", "gpt-4o-mini"})
	require.NoError(t, err)

	// CLI should override env
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "file:test.db", cfg.DatabaseURL)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
}

func TestParseFlags_ProviderSpecificKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")

	cfg, err := ParseFlags([]string{"-llm-provider", "claude"})
	require.NoError(t, err)
	assert.Equal(t, "sk-ant", cfg.LLM.APIKey)

	cfg, err = ParseFlags([]string{})
	require.NoError(t, err)
	assert.Equal(t, "sk-openai", cfg.LLM.APIKey)

	cfg, err = ParseFlags([]string{"-llm-provider", "ollama"})
	require.NoError(t, err)
	assert.Empty(t, cfg.LLM.APIKey)

	t.Setenv("LLM_API_KEY", "sk-generic")
	cfg, err = ParseFlags([]string{})
	require.NoError(t, err)
	assert.Equal(t, "sk-generic", cfg.LLM.APIKey)
}

func TestParseFlags_ConfigFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
port: 7000
database_url: /var/lib/quickly-plan/data.db
log_level: debug
llm:
  provider: ollama
  model: llama3
  timeout: 2m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("PORT", "7100")

	cfg, err := ParseFlags([]string{"-c", path})
	require.NoError(t, err)

	assert.Equal(t, 7100, cfg.Port, "env overrides file")
	assert.Equal(t, "/var/lib/quickly-plan/data.db", cfg.DatabaseURL)
	assert.Equal(t, "sqlite", cfg.DatabaseType, "default kept when file omits key")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "ollama", cfg.LLM.Provider)
	assert.Equal(t, "llama3", cfg.LLM.Model)
	assert.Equal(t, 2*time.Minute, cfg.LLM.Timeout)
}

func TestParseFlags_ProviderWithoutModel(t *testing.T) {
	for _, provider := range []string{"claude", "ollama", "groq"} {
		t.Run(provider, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("LLM_PROVIDER", provider)

			cfg, err := ParseFlags(nil)
			require.NoError(t, err)
			assert.Equal(t, provider, cfg.LLM.Provider)
			assert.Empty(t, cfg.LLM.Model)
		})
	}

	clearEnv(t)
	cfg, err := ParseFlags([]string{"-llm-provider", "claude"})
	require.NoError(t, err)
	assert.Empty(t, cfg.LLM.Model)
}

func TestSlogLevel(t *testing.T) {
	cfg := Defaults()
	cfg.LogLevel = "debug"

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	cfg.LogLevel = "WARN"
	level, err = cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"invalid port env", map[string]string{"PORT": "abc"}, nil},
		{"invalid timeout env", map[string]string{"LLM_TIMEOUT": "soon"}, nil},
		{"unknown database type", nil, []string{"-t", "mysql"}},
		{"unknown provider", nil, []string{"-llm-provider", "skynet"}},
		{"port out of range", nil, []string{"-p", "70000"}},
		{"half basic auth", map[string]string{"BASIC_AUTH_USER": "me"}, nil},
		{"missing config file", nil, []string{"-c", "/does/not/exist.yaml"}},
		{"unknown flag", nil, []string{"-nope"}},
		{"bad log level", nil, []string{"-log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := ParseFlags(tt.args)
			assert.Error(t, err)
		})
	}
}
