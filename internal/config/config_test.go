package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "WORDLE_SOURCE_URL", "WORDLE_FETCH_TIMEOUT", "LOG_LEVEL", "LOG_FILE")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "https://www.nytimes.com/svc/wordle/v2", cfg.SourceURL)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WORDLE_SOURCE_URL", "http://localhost:9999/words")
	t.Setenv("WORDLE_FETCH_TIMEOUT", "250ms")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FILE", "-")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/words", cfg.SourceURL)
	assert.Equal(t, 250*time.Millisecond, cfg.FetchTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "-", cfg.LogFile)
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("WORDLE_FETCH_TIMEOUT", "soon")

	_, err := Load()

	assert.Error(t, err)
}

// unsetEnv clears keys for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
