package tracker

import "context"

// Fetcher retrieves the textual content identified by id (usually a URL).
type Fetcher interface {
	Fetch(ctx context.Context, id string) (string, error)
}

// FetcherFunc adapts an ordinary function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, id string) (string, error)

// Fetch calls f(ctx, id).
func (f FetcherFunc) Fetch(ctx context.Context, id string) (string, error) {
	return f(ctx, id)
}
