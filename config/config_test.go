package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.RateLimit.WindowSize)
	assert.Equal(t, 10, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 5*time.Second, cfg.RateLimit.HostInterval)
	assert.Equal(t, 5*time.Second, cfg.Metadata.FetchTimeout)
	assert.Equal(t, int64(2097152), cfg.Metadata.MaxContentSize)
	assert.Equal(t, 240, cfg.QR.ImageSize)
	assert.Equal(t, 20, cfg.Pagination.ItemsPerPage)
	assert.Equal(t, "safeqr_session", cfg.Auth.SessionCookieName)
	assert.Equal(t, 168*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.RateLimit.DOSProtection.Enabled)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "5")
	t.Setenv("RATE_LIMIT_WINDOW_SIZE", "30s")
	t.Setenv("METADATA_FETCH_TIMEOUT", "2s")
	t.Setenv("METADATA_USER_AGENT", "custom-agent/2.0")
	t.Setenv("PAGINATION_ITEMS_PER_PAGE", "50")
	t.Setenv("DOS_PROTECTION_ENABLED", "false")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.WindowSize)
	assert.Equal(t, 2*time.Second, cfg.Metadata.FetchTimeout)
	assert.Equal(t, "custom-agent/2.0", cfg.Metadata.UserAgent)
	assert.Equal(t, 50, cfg.Pagination.ItemsPerPage)
	assert.False(t, cfg.RateLimit.DOSProtection.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
}

func TestNewConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "SERVER_PORT", value: "70000"},
		{name: "port not a number", key: "SERVER_PORT", value: "abc"},
		{name: "zero max requests", key: "RATE_LIMIT_MAX_REQUESTS", value: "0"},
		{name: "sub-second window", key: "RATE_LIMIT_WINDOW_SIZE", value: "500ms"},
		{name: "bad duration", key: "METADATA_FETCH_TIMEOUT", value: "fast"},
		{name: "bad log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "bad bool", key: "DOS_PROTECTION_ENABLED", value: "maybe"},
		{name: "qr image too small", key: "QR_IMAGE_SIZE", value: "10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}

func TestNewConfig_SessionSecretFromFile(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "session_secret")
	require.NoError(t, os.WriteFile(secretFile, []byte("  file-secret\n"), 0o600))

	t.Setenv("AUTH_SESSION_SECRET", "env-secret")
	t.Setenv("AUTH_SESSION_SECRET_FILE", secretFile)

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "file-secret", cfg.Auth.SessionSecret, "file content should override env var and be trimmed")
}

func TestNewConfig_SessionSecretFileMissing(t *testing.T) {
	t.Setenv("AUTH_SESSION_SECRET", "env-secret")
	t.Setenv("AUTH_SESSION_SECRET_FILE", "/nonexistent/secret")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.SessionSecret, "missing file should fall back to env var")
}
