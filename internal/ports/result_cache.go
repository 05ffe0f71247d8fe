package ports

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by ResultCache.Get when no entry exists for a key.
var ErrCacheMiss = errors.New("result cache: miss")

// Optional cache for serialized optimization responses. The engine is
// deterministic, so a cached response for an identical request is exact.
type ResultCache interface {
	// Get returns the cached payload for key, or ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores payload under key for ttl.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
