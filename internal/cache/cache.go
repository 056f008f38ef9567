package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key is absent or has expired.
var ErrNotFound = errors.New("cache: key not found")

// Cache is a minimal key/value store interface (e.g. Redis).
//
// Implementations must make Incr and Set atomic per key; nothing above
// this layer adds locking of its own.
type Cache interface {
	// Ping checks if the store is reachable.
	Ping(ctx context.Context) error

	// Set stores a value with the given TTL. A TTL <= 0 means no expiry.
	Set(ctx context.Context, key string, value string, ttl time.Duration) error

	// Get retrieves a value by key.
	// Returns ErrNotFound if the key is missing or expired.
	Get(ctx context.Context, key string) (string, error)

	// Incr atomically increments a numeric value and returns the new value.
	// A missing key counts as 0.
	Incr(ctx context.Context, key string) (int64, error)

	// Close releases the underlying connection or background workers.
	Close() error
}
