package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "DB_DRIVER", "DB_PATH", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD",
		"DB_NAME", "DB_SSLMODE", "DB_CONNECT_TIMEOUT", "REQUEST_TIMEOUT",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "CACHE_TTL", "CORS_ENABLED",
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, "budget_manager.db", cfg.DB.Path)
	assert.Equal(t, 30*time.Second, cfg.DB.ConnectTimeout)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.CORSEnabled)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("DB_USER", "budget")
	t.Setenv("DB_NAME", "budget")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("REDIS_HOST", "cache.local")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("CORS_ENABLED", "true")

	cfg := FromEnv()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "db.local", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "cache.local:6379", cfg.Redis.Addr())
	assert.Equal(t, time.Minute, cfg.Redis.TTL)
	assert.True(t, cfg.CORSEnabled)
}

func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("CACHE_TTL", "-5s")
	t.Setenv("CORS_ENABLED", "maybe")

	cfg := FromEnv()

	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Redis.TTL)
	assert.False(t, cfg.CORSEnabled)
}
