// Package fetch retrieves remote pages over HTTP.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/oggyb/pagetracker/internal/tracker"
)

// DefaultTimeout bounds a single GET when the caller's context has no deadline.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response body is accepted.
const maxBodyBytes = 8 << 20

// ErrBodyTooLarge is returned instead of a truncated body.
var ErrBodyTooLarge = errors.New("response body too large")

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: non-2xx status: %d", e.URL, e.StatusCode)
}

// HTTPFetcher fetches page bodies with plain GET requests.
type HTTPFetcher struct {
	userAgent  string
	timeout    time.Duration
	maxBody    int64
	httpClient *http.Client
}

// NewHTTPFetcher creates a fetcher with the given per-request timeout and
// User-Agent. A timeout <= 0 falls back to DefaultTimeout.
func NewHTTPFetcher(timeout time.Duration, userAgent string) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPFetcher{
		userAgent: userAgent,
		timeout:   timeout,
		maxBody:   maxBodyBytes,
		httpClient: &http.Client{
			// Hard upper bound in addition to the per-request context.
			Timeout: 2 * timeout,
		},
	}
}

// withTimeout wraps the context with a timeout if it doesn't already have one.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}

// Fetch implements tracker.Fetcher by GETting url and returning the body as text.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	ctx, cancel := withTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", fmt.Errorf("GET %s timeout or canceled: %w", url, err)
		}
		return "", fmt.Errorf("GET %s failed: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, f.maxBody))
		return "", &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	// One byte past the limit tells a body of exactly maxBody apart from a longer one.
	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody+1))
	if err != nil {
		return "", fmt.Errorf("failed to read response from %s: %w", url, err)
	}
	if int64(len(raw)) > f.maxBody {
		return "", fmt.Errorf("GET %s: %w (limit %d bytes)", url, ErrBodyTooLarge, f.maxBody)
	}

	return string(raw), nil
}

// compile-time check: HTTPFetcher satisfies the tracker.Fetcher interface.
var _ tracker.Fetcher = (*HTTPFetcher)(nil)
