// Package tracker wraps a Fetcher with a per-identifier access counter
// and a short-lived cache, both kept in a cache.Cache store.
//
// For an identifier u, every call increments "count:u" before anything
// else happens, including calls that end in an error. The body is kept
// under "cache:u" for the configured TTL.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/oggyb/pagetracker/internal/cache"
)

// DefaultTTL is how long a fetched body stays cached.
const DefaultTTL = 10 * time.Second

// Result describes the outcome of a single Lookup.
type Result struct {
	Content string
	// Hit is true when Content came from the cache.
	Hit     bool
	// Count is the access counter after this call's increment.
	Count   int64
}

// CachedFetcher counts and caches calls to an inner Fetcher.
// It is safe for concurrent use when the store is; concurrent misses on
// the same identifier may each call the inner Fetcher.
type CachedFetcher struct {
	store cache.Cache
	inner Fetcher
	ttl   time.Duration
}

type Option func(*CachedFetcher)

// WithTTL overrides DefaultTTL. Values <= 0 are ignored.
func WithTTL(ttl time.Duration) Option {
	return func(c *CachedFetcher) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// New returns a CachedFetcher backed by store. inner is used by Fetch and
// may be nil if callers only use FetchCached/Lookup with their own Fetcher.
func New(store cache.Cache, inner Fetcher, opts ...Option) *CachedFetcher {
	c := &CachedFetcher{
		store: store,
		inner: inner,
		ttl:   DefaultTTL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// TTL returns the cache expiry in use.
func (c *CachedFetcher) TTL() time.Duration {
	return c.ttl
}

// Fetch implements Fetcher by decorating the inner Fetcher.
func (c *CachedFetcher) Fetch(ctx context.Context, id string) (string, error) {
	if c.inner == nil {
		return "", errors.New("tracker: no inner fetcher configured")
	}
	return c.FetchCached(ctx, id, c.inner)
}

// FetchCached returns the cached body for id, or calls fetch and caches
// its result.
func (c *CachedFetcher) FetchCached(ctx context.Context, id string, fetch Fetcher) (string, error) {
	res, err := c.Lookup(ctx, id, fetch)
	if err != nil {
		return "", err
	}
	return res.Content, nil
}

// Lookup is FetchCached with the hit/miss outcome and the new counter value.
//
// The counter is incremented first and is not rolled back if anything
// after it fails. A failed fetch leaves the cache untouched.
func (c *CachedFetcher) Lookup(ctx context.Context, id string, fetch Fetcher) (Result, error) {
	if id == "" {
		return Result{}, ErrEmptyIdentifier
	}

	count, err := c.store.Incr(ctx, cache.AccessCount.Key(id))
	if err != nil {
		return Result{}, fmt.Errorf("%w: incr: %w", ErrStoreUnavailable, err)
	}

	cacheKey := cache.CachedPage.Key(id)

	cached, err := c.store.Get(ctx, cacheKey)
	switch {
	case err == nil:
		if usable(cached) {
			return Result{Content: cached, Hit: true, Count: count}, nil
		}
		log.Printf("[Tracker] Discarding malformed cache value for %q, refetching", id)
	case !errors.Is(err, cache.ErrNotFound):
		return Result{Count: count}, fmt.Errorf("%w: get: %w", ErrStoreUnavailable, err)
	}

	body, err := fetch.Fetch(ctx, id)
	if err != nil {
		return Result{Count: count}, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	if err := c.store.Set(ctx, cacheKey, body, c.ttl); err != nil {
		return Result{Count: count}, fmt.Errorf("%w: set: %w", ErrStoreUnavailable, err)
	}

	return Result{Content: body, Hit: false, Count: count}, nil
}

// AccessCount returns how many times id has been requested. It never
// modifies the counter; a missing counter reads as 0.
func (c *CachedFetcher) AccessCount(ctx context.Context, id string) (int64, error) {
	if id == "" {
		return 0, ErrEmptyIdentifier
	}

	raw, err := c.store.Get(ctx, cache.AccessCount.Key(id))
	if errors.Is(err, cache.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: get: %w", ErrStoreUnavailable, err)
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("tracker: counter for %q is not an integer: %w", id, err)
	}
	return n, nil
}

// usable reports whether a stored value can be served as text.
// Empty values are treated as a miss.
func usable(v string) bool {
	return v != "" && utf8.ValidString(v)
}

var _ Fetcher = (*CachedFetcher)(nil)
