package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"route-optimizer-service/internal/platform/obs"
	"route-optimizer-service/internal/ports"
)

// Key prefix carries a version so a change in response shape or engine
// semantics invalidates old entries by construction.
const resultKeyPrefix = "route:v1:"

// RedisResultCache stores serialized optimization responses keyed by a hash
// of the request. The engine is deterministic, so entries never go stale
// within their TTL; the TTL only bounds memory.
type RedisResultCache struct {
	client *redis.Client
}

func NewRedisResultCache(client *redis.Client) (*RedisResultCache, error) {
	if client == nil {
		return nil, errors.New("new redis result cache: client is nil")
	}
	return &RedisResultCache{client: client}, nil
}

// Get returns the cached payload for key, or ports.ErrCacheMiss.
func (c *RedisResultCache) Get(ctx context.Context, key string) (_ []byte, err error) {
	defer obs.Time(ctx, "cache.result.Get")(&err)

	payload, err := c.client.Get(ctx, resultKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("result cache get: %w", err)
	}

	return payload, nil
}

// Set stores payload under key for ttl. A zero ttl stores without expiry.
func (c *RedisResultCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	if key == "" {
		return errors.New("result cache set: key must be non-empty")
	}

	if err := c.client.Set(ctx, resultKeyPrefix+key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("result cache set: %w", err)
	}

	return nil
}
