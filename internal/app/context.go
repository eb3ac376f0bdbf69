package app

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/cache"
	"github.com/oggyb/muzz-dating/internal/config"
)

// AppContext holds shared dependencies (Config, DB, Redis, Auth, Logger).
// DB and RedisCache may be nil when the backing store is not configured.
type AppContext struct {
	Config     *config.Config
	DB         *gorm.DB
	RedisCache *cache.RedisCache
	Auth       *auth.Authenticator
	Logger     *slog.Logger
}

// New creates a new AppContext
func New(cfg *config.Config, db *gorm.DB, rdb *cache.RedisCache, authn *auth.Authenticator, logger *slog.Logger) *AppContext {
	return &AppContext{
		Config:     cfg,
		DB:         db,
		RedisCache: rdb,
		Auth:       authn,
		Logger:     logger,
	}
}
