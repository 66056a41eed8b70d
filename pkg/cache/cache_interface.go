package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer.
// Allows swapping implementations (Redis, in-memory).
type Cache interface {
	// Get reads a key from cache and unmarshals it into dest.
	// Returns (found, error):
	// - found = true: cache hit, data unmarshaled into dest
	// - found = false: cache miss, dest untouched
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from the cache.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks the connection.
	Ping(ctx context.Context) error

	// Counter methods for failed login tracking
	Increment(ctx context.Context, key string) (int64, error)
	Exists(ctx context.Context, key string) (bool, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
	TTL(ctx context.Context, key string) (time.Duration, error)
}
