package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "production") // skip .env lookup
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("SESSION_TTL", "")

	cfg := New()

	assert.Equal(t, "production", cfg.App.ENV)
	assert.Equal(t, "", cfg.DB.DSN)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, "50051", cfg.GRPC.Port)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "app_session_id", cfg.Auth.CookieName)
	assert.Equal(t, 30*24*time.Hour, cfg.Auth.SessionTTL)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("OWNER_OPEN_ID", "owner-123")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("LOG_SOURCE", "yes")

	cfg := New()

	assert.Equal(t, "owner-123", cfg.App.OwnerOpenID)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL)
	assert.True(t, cfg.Log.Source)
}

func TestNew_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("SESSION_TTL", "soon")

	cfg := New()

	assert.Equal(t, 30*24*time.Hour, cfg.Auth.SessionTTL)
}

func TestNew_SeedingIsOptIn(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("SEED_ON_BOOT", "")

	cfg := New()

	assert.Equal(t, "production", cfg.App.ENV)
	assert.False(t, cfg.App.SeedOnBoot)

	t.Setenv("APP_ENV", "development")
	cfg = New()
	assert.False(t, cfg.App.SeedOnBoot, "development alone must not seed")

	t.Setenv("SEED_ON_BOOT", "true")
	cfg = New()
	assert.True(t, cfg.App.SeedOnBoot)
}
