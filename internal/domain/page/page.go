// Package page holds the domain model for tracked pages.
package page

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxURLLength is the longest URL the ledger will store.
	MaxURLLength = 2048
	// MaxErrorLength truncates stored fetch errors.
	MaxErrorLength = 512
)

type Outcome string

const (
	OutcomeHit    Outcome = "HIT"
	OutcomeMiss   Outcome = "MISS"
	OutcomeFailed Outcome = "FAILED"
)

var (
	// ErrEmptyURL is returned when no URL is provided.
	ErrEmptyURL = errors.New("page url is required")
	// ErrInvalidURL is returned for anything that is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("page url must be an absolute http or https url")
	// ErrURLTooLong is returned when the URL exceeds MaxURLLength.
	ErrURLTooLong = errors.New("page url exceeds maximum length")
	// ErrNotFound is returned by repositories when no page matches.
	ErrNotFound = errors.New("page not found")
)

// Page is a ledger row for one tracked URL.
type Page struct {
	ID            uuid.UUID
	URL           string
	AccessCount   int64
	LastOutcome   Outcome
	LastError     string
	LastFetchedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidateURL trims raw and checks it is an absolute http(s) URL.
func ValidateURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	if raw == "" {
		return "", ErrEmptyURL
	}
	if len(raw) > MaxURLLength {
		return "", ErrURLTooLong
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", ErrInvalidURL
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", ErrInvalidURL
	}

	return raw, nil
}

// NewPage constructs a Page for rawURL and enforces the URL rules.
func NewPage(rawURL string) (*Page, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return nil, err
	}

	return &Page{
		ID:        uuid.New(),
		URL:       u,
		CreatedAt: time.Now(),
	}, nil
}

// RecordHit marks a cache hit with the counter value observed by the call.
func (p *Page) RecordHit(count int64) {
	p.record(OutcomeHit, count, "")
}

// RecordMiss marks a successful fetch.
func (p *Page) RecordMiss(count int64) {
	p.record(OutcomeMiss, count, "")
}

// RecordFailure marks a failed fetch and keeps a truncated error message.
func (p *Page) RecordFailure(count int64, err error) {
	msg := ""
	if err != nil {
		msg = err.Error()
		if len(msg) > MaxErrorLength {
			msg = msg[:MaxErrorLength]
		}
	}
	p.record(OutcomeFailed, count, msg)
}

func (p *Page) record(o Outcome, count int64, errMsg string) {
	now := time.Now()
	p.LastFetchedAt = &now
	p.LastOutcome = o
	p.LastError = errMsg
	if count > p.AccessCount {
		p.AccessCount = count
	}
}
