package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/slimatic/zakapp-sub007/internal/domain/zakat"
	"github.com/slimatic/zakapp-sub007/internal/infrastructure/config"
)

const resultKeyPrefix = "zakat:result:"

// RedisResultCache implements ResultCache using Redis. Suitable for
// distributed deployments where multiple instances share cache state.
type RedisResultCache struct {
	client *redis.Client
}

// NewRedisResultCache creates a new Redis-backed result cache
func NewRedisResultCache(cfg config.RedisConfig) (*RedisResultCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisResultCache{client: client}, nil
}

// NewRedisResultCacheWithClient creates a cache with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisResultCacheWithClient(client *redis.Client) *RedisResultCache {
	return &RedisResultCache{client: client}
}

func redisResultKey(userID, fingerprint string) string {
	return resultKeyPrefix + userID + ":" + fingerprint
}

// Get returns the cached result for a fingerprint, or nil on a miss
func (c *RedisResultCache) Get(ctx context.Context, userID, fingerprint string) (*zakat.CalculationResult, error) {
	data, err := c.client.Get(ctx, redisResultKey(userID, fingerprint)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached result: %w", err)
	}

	var result zakat.CalculationResult
	if err := json.Unmarshal(data, &result); err != nil {
		// A corrupt entry is treated as a miss
		return nil, nil
	}
	return &result, nil
}

// Set stores a result under a fingerprint with a TTL
func (c *RedisResultCache) Set(ctx context.Context, userID, fingerprint string, result *zakat.CalculationResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if err := c.client.Set(ctx, redisResultKey(userID, fingerprint), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache result: %w", err)
	}
	return nil
}

// InvalidateUser removes all cached results for a user
func (c *RedisResultCache) InvalidateUser(ctx context.Context, userID string) error {
	pattern := resultKeyPrefix + userID + ":*"

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached results: %w", err)
	}

	if len(keys) > 0 {
		if err := c.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("failed to invalidate cached results: %w", err)
		}
	}
	return nil
}

// Close closes the Redis client
func (c *RedisResultCache) Close() error {
	return c.client.Close()
}
