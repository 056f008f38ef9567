// Package storage opens the backing key/value store selected in config.
package storage

import (
	"context"
	"fmt"

	"github.com/oggyb/pagetracker/internal/cache"
	"github.com/oggyb/pagetracker/internal/cache/memory"
	"github.com/oggyb/pagetracker/internal/cache/redis"
	"github.com/oggyb/pagetracker/internal/config"
)

// OpenCache builds the store for cfg.Cache.Driver and pings it. The caller
// owns the returned store and must Close it.
func OpenCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	var store cache.Cache

	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		store = redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	case config.CacheDriverMemory:
		store = memory.New()
	default:
		return nil, fmt.Errorf("storage: unknown cache driver %q", cfg.Cache.Driver)
	}

	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("storage: %s unreachable: %w", cfg.Cache.Driver, err)
	}

	return store, nil
}
