package response

import (
	"time"

	"github.com/oggyb/pagetracker/internal/domain/page"
)

type WelcomePayload struct {
	Message string `json:"message"`
}

type HealthPayload struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

type WelcomeResponse struct {
	Success   bool           `json:"success"`
	Data      WelcomePayload `json:"data"`
	Timestamp string         `json:"timestamp"`
}

type HealthResponse struct {
	Success   bool          `json:"success"`
	Data      HealthPayload `json:"data"`
	Timestamp string        `json:"timestamp"`
}

type SchedulerControlPayload struct {
	Message string `json:"message"`
}

type SchedulerControlResponse struct {
	Success   bool                    `json:"success"`
	Data      SchedulerControlPayload `json:"data"`
	Timestamp string                  `json:"timestamp"`
}

type PagePayload struct {
	URL         string `json:"url"`
	Content     string `json:"content"`
	Cached      bool   `json:"cached"`
	AccessCount int64  `json:"accessCount"`
}

type PageResponse struct {
	Success   bool        `json:"success"`
	Data      PagePayload `json:"data"`
	Timestamp string      `json:"timestamp"`
}

type AccessCountPayload struct {
	URL         string `json:"url"`
	AccessCount int64  `json:"accessCount"`
}

type AccessCountResponse struct {
	Success   bool               `json:"success"`
	Data      AccessCountPayload `json:"data"`
	Timestamp string             `json:"timestamp"`
}

// PageDTO is the public-facing representation of a ledger row.
type PageDTO struct {
	ID            string     `json:"id"`
	URL           string     `json:"url"`
	AccessCount   int64      `json:"accessCount"`
	LastOutcome   string     `json:"lastOutcome"`
	LastError     string     `json:"lastError,omitempty"`
	LastFetchedAt *time.Time `json:"lastFetchedAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type TrackedPageResponse struct {
	Success   bool    `json:"success"`
	Data      PageDTO `json:"data"`
	Timestamp string  `json:"timestamp"`
}

type TrackedPagesPayload struct {
	Items []PageDTO `json:"items"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}

type TrackedPagesResponse struct {
	Success   bool                `json:"success"`
	Data      TrackedPagesPayload `json:"data"`
	Timestamp string              `json:"timestamp"`
}

// FromDomainPage converts one ledger page into its DTO.
func FromDomainPage(p *page.Page) PageDTO {
	return PageDTO{
		ID:            p.ID.String(),
		URL:           p.URL,
		AccessCount:   p.AccessCount,
		LastOutcome:   string(p.LastOutcome),
		LastError:     p.LastError,
		LastFetchedAt: p.LastFetchedAt,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// FromDomainPages converts ledger pages into DTOs for HTTP responses.
func FromDomainPages(pages []*page.Page) []PageDTO {
	out := make([]PageDTO, len(pages))
	for i, p := range pages {
		out[i] = FromDomainPage(p)
	}
	return out
}
