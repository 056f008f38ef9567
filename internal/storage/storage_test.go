package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/oggyb/pagetracker/internal/cache/memory"
	"github.com/oggyb/pagetracker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCache_Memory(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Driver = config.CacheDriverMemory

	store, err := OpenCache(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*memory.Store)
	assert.True(t, ok)
}

func TestOpenCache_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := &config.Config{}
	cfg.Cache.Driver = config.CacheDriverRedis
	cfg.Redis.Addr = mr.Addr()

	store, err := OpenCache(context.Background(), cfg)
	require.NoError(t, err)
	defer store.Close()

	n, err := store.Incr(context.Background(), "count:x")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestOpenCache_Errors(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Driver = "bogus"

	_, err := OpenCache(context.Background(), cfg)
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg.Cache.Driver = config.CacheDriverRedis
	cfg.Redis.Addr = addr
	_, err = OpenCache(context.Background(), cfg)
	assert.Error(t, err)
}
