package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/valoreapp/valore-backend/internal/config"
)

// RedisCache wraps the redis client used for analytics event counters.
// It is optional: the whole process runs without it when REDIS_ADDR is
// unset, and counter writes are best-effort.
type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes the redis client from config. Only Addr is
// mandatory.
func NewRedisCache(cfg *config.Config) *RedisCache {
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

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

// KeyForEventCount is the counter key for one analytics event name.
func (c *RedisCache) KeyForEventCount(eventName string) string {
	return fmt.Sprintf("events:count:%s", eventName)
}

// IncrEventCount bumps the rolling counter for an event name. The key
// keeps a 24h TTL refreshed on every write.
func (c *RedisCache) IncrEventCount(ctx context.Context, eventName string) (int64, error) {
	key := c.KeyForEventCount(eventName)
	n, err := c.Client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	_ = c.Client.Expire(ctx, key, 24*time.Hour).Err()
	return n, nil
}

// GetEventCount reads the rolling counter; a missing key is 0.
func (c *RedisCache) GetEventCount(ctx context.Context, eventName string) (int64, error) {
	val, err := c.Client.Get(ctx, c.KeyForEventCount(eventName)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	} else if err != nil {
		return 0, err
	}
	return strconv.ParseInt(val, 10, 64)
}
