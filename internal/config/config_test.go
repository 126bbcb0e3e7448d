package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "")
	t.Setenv("EXPIRY_TICK_SECONDS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := FromEnv()
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, time.Minute, cfg.ExpiryTick)
	assert.Empty(t, cfg.CORSOrigins)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("EXPIRY_TICK_SECONDS", "15")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := FromEnv()
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 15*time.Second, cfg.ExpiryTick)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestFromEnv_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("EXPIRY_TICK_SECONDS", "soon")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "-1")

	cfg := FromEnv()
	assert.Equal(t, time.Minute, cfg.ExpiryTick)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.local")
	require.NoError(t, os.WriteFile(path, []byte("EXPIRY_TICK_SECONDS=7\n"), 0o600))
	t.Setenv("EXPIRY_TICK_SECONDS", "")
	os.Unsetenv("EXPIRY_TICK_SECONDS")

	LoadDotEnv(nil, path)
	assert.Equal(t, 7*time.Second, FromEnv().ExpiryTick)
}
