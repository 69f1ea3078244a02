package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "RESUME_DATABASE_URL", "RESUME_DATA_DIR", "SAVE_DEBOUNCE", "SAVE_NOTICE_TTL", "SAVE_TIMEOUT", "EXPORT_TIMEOUT", "AUTH_USER_HEADER", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, "X-User-ID", cfg.HTTP.UserHeader)
	assert.Equal(t, "resume-data", cfg.Storage.DataDir)
	assert.Empty(t, cfg.Storage.DatabaseURL)
	assert.Equal(t, 2*time.Second, cfg.Sync.Debounce)
	assert.Equal(t, 3*time.Second, cfg.Sync.NoticeTTL)
	assert.Equal(t, 10*time.Second, cfg.Sync.Timeout)
	assert.Equal(t, 60*time.Second, cfg.Export.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("SAVE_DEBOUNCE", "500ms")
	t.Setenv("AUTH_USER_HEADER", "X-Forwarded-User")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, 500*time.Millisecond, cfg.Sync.Debounce)
	assert.Equal(t, "X-Forwarded-User", cfg.HTTP.UserHeader)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadInvalid(t *testing.T) {
	t.Run("Duration", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("SAVE_TIMEOUT", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "SAVE_TIMEOUT")
	})

	t.Run("NonPositiveDuration", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("SAVE_DEBOUNCE", "0s")
		_, err := Load()
		assert.ErrorContains(t, err, "SAVE_DEBOUNCE")
	})

	t.Run("Port", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := Load()
		assert.ErrorContains(t, err, "out of range")
	})
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("RESUME_DATA_DIR=/tmp/from-dotenv\n"), 0o644))
	t.Setenv("RESUME_DATA_DIR", "")
	os.Unsetenv("RESUME_DATA_DIR")

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), path))
	assert.Equal(t, "/tmp/from-dotenv", os.Getenv("RESUME_DATA_DIR"))

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
