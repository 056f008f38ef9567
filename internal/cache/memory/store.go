// Package memory provides an in-process implementation of cache.Cache
// on top of go-mcache. It is meant for local runs and tests where a
// Redis server is not available.
package memory

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/dmytro-vovk/go-mcache"
	"github.com/oggyb/pagetracker/internal/cache"
)

// noExpiry stands in for "keep forever" since every mcache entry has a TTL.
const noExpiry = 100 * 365 * 24 * time.Hour

// ErrNotInteger mirrors Redis' "value is not an integer" reply for INCR.
var ErrNotInteger = errors.New("memory: value is not an integer")

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("memory: store closed")

type entry struct {
	val       string
	expiresAt time.Time // zero means no expiry
}

// Store keeps values in an mcache.Cache. The mutex makes Incr's
// read-then-write atomic and guards the closed flag.
type Store struct {
	c      *mcache.Cache[string, entry]
	m      sync.Mutex
	closed bool
}

// New creates an empty store.
func New() *Store {
	return &Store{
		c: mcache.New[string, entry](),
	}
}

// Ping reports ErrClosed once the store has been closed.
func (s *Store) Ping(ctx context.Context) error {
	s.m.Lock()
	defer s.m.Unlock()

	if s.closed {
		return ErrClosed
	}
	return ctx.Err()
}

func (s *Store) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	s.m.Lock()
	defer s.m.Unlock()

	if s.closed {
		return ErrClosed
	}

	e := entry{val: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	s.put(key, e)
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.m.Lock()
	defer s.m.Unlock()

	if s.closed {
		return "", ErrClosed
	}

	e, ok := s.lookup(key)
	if !ok {
		return "", cache.ErrNotFound
	}
	return e.val, nil
}

// Incr keeps the key's remaining TTL, like INCR does in Redis.
func (s *Store) Incr(ctx context.Context, key string) (int64, error) {
	s.m.Lock()
	defer s.m.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	e, ok := s.lookup(key)

	var n int64
	if ok {
		cur, err := strconv.ParseInt(e.val, 10, 64)
		if err != nil {
			return 0, ErrNotInteger
		}
		n = cur
	}

	n++
	e.val = strconv.FormatInt(n, 10)
	s.put(key, e)

	return n, nil
}

// Close rejects further calls. Safe to call twice.
func (s *Store) Close() error {
	s.m.Lock()
	defer s.m.Unlock()

	s.closed = true
	return nil
}

// put must be called with m held.
func (s *Store) put(key string, e entry) {
	ttl := noExpiry
	if !e.expiresAt.IsZero() {
		ttl = time.Until(e.expiresAt)
	}
	s.c.Set(key, e, ttl)
}

// lookup must be called with m held. The entry's own deadline is checked
// too so a read never returns a value past its TTL.
func (s *Store) lookup(key string) (entry, bool) {
	e, ok := s.c.Get(key)
	if !ok {
		return entry{}, false
	}
	if !e.expiresAt.IsZero() && !time.Now().Before(e.expiresAt) {
		return entry{}, false
	}
	return e, true
}

var _ cache.Cache = (*Store)(nil)
