package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nubetechmdq-wq/crmcasino/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a thin JSON cache over Redis. A nil *Cache is valid and behaves
// as a permanent miss, so callers never have to check whether Redis is
// configured.
type Cache struct {
	rdb *redis.Client
}

// New connects to Redis, or returns nil when no address is configured.
func New(ctx context.Context, cfg *config.RedisConfig, logger *zap.Logger) (*Cache, error) {
	if cfg.Addr == "" {
		logger.Info("Redis not configured, caching disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Redis connection established", zap.String("addr", cfg.Addr))
	return &Cache{rdb: rdb}, nil
}

// Get retrieves a value and unmarshals it into dest. Returns false on a miss.
func (c *Cache) Get(ctx context.Context, key string, dest any) (bool, error) {
	if c == nil {
		return false, nil
	}
	val, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(val), dest)
}

// Set stores a value as JSON with the given TTL.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, b, ttl).Err()
}

// Delete removes a key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if c == nil {
		return nil
	}
	return c.rdb.Del(ctx, key).Err()
}

// Close releases the underlying connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}
