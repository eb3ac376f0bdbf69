package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App struct {
		ENV         string
		OwnerOpenID string
		// SeedOnBoot wipes and reseeds the demo dataset at startup.
		SeedOnBoot bool
	}

	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	// DB.DSN is optional. Empty means the service runs without persistence.
	DB struct {
		DSN string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	GRPC struct {
		Host string
		Port string
	}

	HTTP struct {
		Host           string
		Port           string
		AllowedOrigins string
	}

	Auth struct {
		JWTSecret    string
		Issuer       string
		SessionTTL   time.Duration
		CookieName   string
		ServiceToken string
	}
}

func New() *Config {
	if !strings.EqualFold(os.Getenv("APP_ENV"), "production") {
		_ = godotenv.Load() // optional .env for local runs
	}

	cfg := &Config{}

	// App
	cfg.App.ENV = getEnvDefault("APP_ENV", "production")
	cfg.App.OwnerOpenID = getEnvDefault("OWNER_OPEN_ID", "")
	cfg.App.SeedOnBoot = isTruthy(os.Getenv("SEED_ON_BOOT"))

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "dating")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.DSN = getEnvDefault("DATABASE_URL", "")

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	if dbInt, err := strconv.Atoi(getEnvDefault("REDIS_DB", "0")); err == nil {
		cfg.Redis.DB = dbInt
	}

	// gRPC
	cfg.GRPC.Host = getEnvDefault("GRPC_HOST", "127.0.0.1")
	cfg.GRPC.Port = getEnvDefault("GRPC_PORT", "50051")

	// HTTP gateway
	cfg.HTTP.Host = getEnvDefault("HTTP_HOST", "127.0.0.1")
	cfg.HTTP.Port = getEnvDefault("HTTP_PORT", "8080")
	cfg.HTTP.AllowedOrigins = getEnvDefault("ALLOWED_ORIGINS", "http://localhost:3000")

	// Sessions
	cfg.Auth.JWTSecret = getEnvDefault("JWT_SECRET", "dev-insecure-secret")
	cfg.Auth.Issuer = getEnvDefault("JWT_ISSUER", "muzz-dating")
	cfg.Auth.SessionTTL = getDurationDefault("SESSION_TTL", 30*24*time.Hour)
	cfg.Auth.CookieName = getEnvDefault("SESSION_COOKIE", "app_session_id")
	cfg.Auth.ServiceToken = getEnvDefault("SERVICE_TOKEN", "")

	return cfg
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func getDurationDefault(k string, def time.Duration) time.Duration {
	if d, err := time.ParseDuration(getEnvDefault(k, "")); err == nil && d > 0 {
		return d
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
