package tracker

import "errors"

var (
	// ErrEmptyIdentifier is returned when FetchCached is called with "".
	ErrEmptyIdentifier = errors.New("tracker: identifier is required")
	// ErrStoreUnavailable wraps any failure talking to the key/value store.
	ErrStoreUnavailable = errors.New("tracker: store unavailable")
	// ErrFetchFailed wraps a failure returned by the underlying Fetcher.
	ErrFetchFailed = errors.New("tracker: fetch failed")
)
