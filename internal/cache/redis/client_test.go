package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/oggyb/pagetracker/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

func TestClient_GetMissingReturnsErrNotFound(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.Get(context.Background(), "cache:nope")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestClient_SetWithTTLExpires(t *testing.T) {
	c, mr := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "cache:u", "body", 10*time.Second))
	assert.Equal(t, 10*time.Second, mr.TTL("cache:u"))

	v, err := c.Get(ctx, "cache:u")
	require.NoError(t, err)
	assert.Equal(t, "body", v)

	mr.FastForward(11 * time.Second)

	_, err = c.Get(ctx, "cache:u")
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestClient_Incr(t *testing.T) {
	c, _ := newTestClient(t)
	ctx := context.Background()

	n, err := c.Incr(ctx, "count:u")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = c.Incr(ctx, "count:u")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	v, err := c.Get(ctx, "count:u")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

func TestClient_PingFailsWhenServerDown(t *testing.T) {
	c, mr := newTestClient(t)

	require.NoError(t, c.Ping(context.Background()))

	mr.Close()
	assert.Error(t, c.Ping(context.Background()))
}
