package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/oggyb/pagetracker/internal/cache"
	"github.com/oggyb/pagetracker/internal/cache/memory"
	"github.com/oggyb/pagetracker/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_ReturnsBody(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>hello</html>"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(time.Second, "pagetracker-test")

	body, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "<html>hello</html>", body)
	assert.Equal(t, "pagetracker-test", gotUA)
}

func TestHTTPFetcher_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(time.Second, "")

	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)

	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusNotFound, se.StatusCode)
}

func TestHTTPFetcher_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	f := NewHTTPFetcher(50*time.Millisecond, "")

	start := time.Now()
	_, err := f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestHTTPFetcher_BadURL(t *testing.T) {
	f := NewHTTPFetcher(0, "")
	assert.Equal(t, DefaultTimeout, f.timeout)

	_, err := f.Fetch(context.Background(), "://nope")
	assert.Error(t, err)
}

func TestHTTPFetcher_BodyLimit(t *testing.T) {
	body := strings.Repeat("a", 16)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(time.Second, "")
	assert.Equal(t, int64(maxBodyBytes), f.maxBody)

	f.maxBody = 16
	got, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, body, got)

	f.maxBody = 15
	got, err = f.Fetch(context.Background(), srv.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
	assert.Empty(t, got)
}

func TestHTTPFetcher_OversizedBodyIsNotCached(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("b", 64)))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(time.Second, "")
	f.maxBody = 32

	store := memory.New()
	defer store.Close()
	tr := tracker.New(store, f)

	_, err := tr.Fetch(context.Background(), srv.URL)
	assert.ErrorIs(t, err, tracker.ErrFetchFailed)
	assert.ErrorIs(t, err, ErrBodyTooLarge)

	_, err = store.Get(context.Background(), cache.CachedPage.Key(srv.URL))
	assert.ErrorIs(t, err, cache.ErrNotFound)
}
