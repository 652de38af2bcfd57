package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/raasdandiya/checkout/internal/platform/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := config.FromEnv()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "gmail.com", cfg.ApprovedEmailDomain)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Empty(t, cfg.RedisAddr)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("APPROVED_EMAIL_DOMAIN", "example.org")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6380")

	cfg := config.FromEnv()

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "example.org", cfg.ApprovedEmailDomain)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "redis:6380", cfg.RedisAddr)
}

func TestFromEnv_BadDurationFallsBack(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "soon")

	cfg := config.FromEnv()

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
