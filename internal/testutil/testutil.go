// Package testutil wires in-memory SQLite and miniredis fixtures for tests.
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oggyb/muzz-dating/internal/app"
	"github.com/oggyb/muzz-dating/internal/auth"
	"github.com/oggyb/muzz-dating/internal/cache"
	"github.com/oggyb/muzz-dating/internal/config"
	"github.com/oggyb/muzz-dating/internal/db"
	"github.com/oggyb/muzz-dating/internal/repository"
)

// Clock is a manually advanced time source used as gorm's NowFunc.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// OpenDB spins up an isolated shared-cache in-memory SQLite database with the
// full schema migrated.
func OpenDB(t *testing.T) (*gorm.DB, *Clock) {
	t.Helper()

	clock := NewClock()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc:                clock.Now,
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(database))
	return database, clock
}

// Config returns a config suitable for tests.
func Config() *config.Config {
	cfg := &config.Config{}
	cfg.App.ENV = "test"
	cfg.App.OwnerOpenID = "owner-open-id"
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.Issuer = "muzz-dating-test"
	cfg.Auth.SessionTTL = time.Hour
	cfg.Auth.CookieName = "app_session_id"
	cfg.Auth.ServiceToken = "service-token"
	cfg.HTTP.AllowedOrigins = "http://localhost:3000"
	return cfg
}

// Redis starts a miniredis and returns a cache bound to it.
func Redis(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	cfg := Config()
	cfg.Redis.Addr = mr.Addr()
	return cache.NewRedisCache(cfg), mr
}

// NewAppContext wires database (may be nil), a miniredis cache, a discarding
// logger and an authenticator into an AppContext.
func NewAppContext(t *testing.T, database *gorm.DB) *app.AppContext {
	t.Helper()

	cfg := Config()
	redisCache, _ := Redis(t)
	sessions := auth.NewSessionManager([]byte(cfg.Auth.JWTSecret), cfg.Auth.Issuer, cfg.Auth.SessionTTL)
	users := repository.NewUserRepository(database, cfg.App.OwnerOpenID)
	authn := auth.NewAuthenticator(sessions, users, redisCache)
	log := slog.New(slog.NewTextHandler(io.Discard, nil)) // discard logs in tests

	return app.New(cfg, database, redisCache, authn, log)
}

// CreateUser inserts a user with a profile of the given gender (empty skips the profile).
func CreateUser(t *testing.T, database *gorm.DB, openID, gender string) db.User {
	t.Helper()

	user := db.User{OpenID: openID, Role: db.RoleUser, LastSignedIn: database.NowFunc()}
	require.NoError(t, database.Create(&user).Error)

	if gender != "" {
		g := gender
		require.NoError(t, database.Create(&db.Profile{UserID: user.ID, Gender: &g}).Error)
	}
	return user
}

// AsUser returns a context carrying an authenticated session for u.
func AsUser(u db.User) context.Context {
	return auth.WithSession(context.Background(), &auth.Session{User: &u})
}
