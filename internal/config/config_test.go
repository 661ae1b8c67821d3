package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/classboard/internal/models"
)

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CLASSBOARD_ADDR", "CLASSBOARD_STATIC_DIR", "CLASSBOARD_PROJECT_DIR",
		"CLASSBOARD_STORAGE_DRIVER", "CLASSBOARD_SQLITE_PATH", "CLASSBOARD_REDIS_ADDR",
		"CLASSBOARD_REDIS_PASSWORD", "CLASSBOARD_REDIS_DB", "CLASSBOARD_HISTORY_LIMIT",
		"CLASSBOARD_LOCALE", "CLASSBOARD_ANALYSIS_PROVIDER", "CLASSBOARD_ANALYSIS_MODEL",
		"CLASSBOARD_ANALYSIS_BASE_URL", "CLASSBOARD_ANALYSIS_TIMEOUT", "LOG_LEVEL",
		"OPENAI_API_KEY", "GEMINI_API_KEY",
	} {
		if v, ok := os.LookupEnv(k); ok {
			os.Unsetenv(k)
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "none", cfg.Analysis.Provider)
	limits := cfg.Limits()
	assert.Equal(t, 1, limits.MinGroups)
	assert.Equal(t, 10, limits.MaxGroups)
	assert.Equal(t, 3, limits.DefaultGroups)
	assert.Equal(t, models.CapacityElementaryMiddle, limits.DefaultCapacityClass)
	assert.Equal(t, models.DefaultCapacities(), limits.Capacities)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "classboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
log_level: debug
board:
  max_groups: 12
  default_groups: 4
  history_limit: 20
analysis:
  provider: openai
  timeout: 15s
`), 0o644))

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("OPENAI_API_KEY=sk-from-dotenv\nCLASSBOARD_HISTORY_LIMIT=7\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("OPENAI_API_KEY")
		os.Unsetenv("CLASSBOARD_HISTORY_LIMIT")
	})
	t.Setenv("CLASSBOARD_ADDR", ":7070")

	cfg, err := Load(path, envFile, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr, "environment beats YAML")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 12, cfg.Board.MaxGroups)
	assert.Equal(t, 4, cfg.Board.DefaultGroups)
	assert.Equal(t, 7, cfg.Board.HistoryLimit)
	assert.Equal(t, 15*time.Second, cfg.Analysis.Timeout)
	assert.Equal(t, "sk-from-dotenv", cfg.Analysis.APIKey)
}

func TestProviderFromKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Analysis.Provider)
	assert.Equal(t, "g-key", cfg.Analysis.APIKey)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad driver", map[string]string{"CLASSBOARD_STORAGE_DRIVER": "mongo"}},
		{"redis without addr", map[string]string{"CLASSBOARD_STORAGE_DRIVER": "redis"}},
		{"bad log level", map[string]string{"LOG_LEVEL": "verbose"}},
		{"negative history", map[string]string{"CLASSBOARD_HISTORY_LIMIT": "-1"}},
		{"unparseable number", map[string]string{"CLASSBOARD_REDIS_DB": "zero"}},
		{"bad timeout", map[string]string{"CLASSBOARD_ANALYSIS_TIMEOUT": "soon"}},
		{"bad provider", map[string]string{"CLASSBOARD_ANALYSIS_PROVIDER": "llama"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestValidateCrossField(t *testing.T) {
	cfg := Default()
	cfg.Analysis.Provider = "none"
	require.NoError(t, cfg.Validate())

	cfg.Board.DefaultGroups = 11
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Analysis.Provider = "none"
	cfg.Board.DefaultCapacityClass = "COLLEGE"
	assert.Error(t, cfg.Validate())
}
