package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/muzz-dating/internal/config"
)

// UnreadCountTTL bounds how long a cached unread counter lives.
const UnreadCountTTL = time.Hour

// RedisCache wraps the Redis client. A nil *RedisCache is a valid disabled
// cache: reads miss and writes are dropped.
type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Returns nil (cache disabled) when no address is configured.
func NewRedisCache(cfg *config.Config) *RedisCache {
	if cfg.Redis.Addr == "" {
		return nil
	}
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

// Enabled reports whether a Redis client is attached.
func (c *RedisCache) Enabled() bool {
	return c != nil && c.Client != nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return errors.New("redis cache disabled")
	}
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	if !c.Enabled() {
		return nil
	}
	return c.Client.Close()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	return c.Client.Set(ctx, key, value, ttl).Err()
}

// Get returns redis.Nil on a miss, including when the cache is disabled.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	if !c.Enabled() {
		return "", redis.Nil
	}
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, key string) error {
	if !c.Enabled() {
		return nil
	}
	return c.Client.Del(ctx, key).Err()
}

func (c *RedisCache) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	return c.Client.Expire(ctx, key, ttl).Err()
}

// KeyForUnreadCount generates Redis key for a user's unread message count
func (c *RedisCache) KeyForUnreadCount(userID uint64) string {
	return fmt.Sprintf("unread:count:%d", userID)
}

// KeyForRevokedSession generates Redis key marking a session id as logged out
func (c *RedisCache) KeyForRevokedSession(sessionID string) string {
	return "session:revoked:" + sessionID
}

// GetUnreadCount returns the cached count; ok=false on a miss.
func (c *RedisCache) GetUnreadCount(ctx context.Context, userID uint64) (int64, bool, error) {
	key := c.KeyForUnreadCount(userID)
	val, err := c.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return 0, false, nil // cache miss
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, nil // treat garbage as a miss
	}
	// refresh TTL on access
	_ = c.Expire(ctx, key, UnreadCountTTL)
	return n, true, nil
}

func (c *RedisCache) SetUnreadCount(ctx context.Context, userID uint64, count int64) error {
	return c.Set(ctx, c.KeyForUnreadCount(userID), count, UnreadCountTTL)
}

// InvalidateUnreadCount drops the cached counter so the next read hits the DB.
func (c *RedisCache) InvalidateUnreadCount(ctx context.Context, userID uint64) error {
	return c.Del(ctx, c.KeyForUnreadCount(userID))
}

// RevokeSession marks a session id as logged out until ttl elapses.
func (c *RedisCache) RevokeSession(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired
	}
	return c.Set(ctx, c.KeyForRevokedSession(sessionID), 1, ttl)
}

// IsSessionRevoked reports whether a session id was logged out.
func (c *RedisCache) IsSessionRevoked(ctx context.Context, sessionID string) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}
	n, err := c.Client.Exists(ctx, c.KeyForRevokedSession(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
