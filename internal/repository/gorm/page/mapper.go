package pagegorm

import (
	"github.com/oggyb/pagetracker/internal/domain/page"
)

func toDomain(m *PageModel) *page.Page {
	return &page.Page{
		ID:            m.ID,
		URL:           m.URL,
		AccessCount:   m.AccessCount,
		LastOutcome:   page.Outcome(m.LastOutcome),
		LastError:     m.LastError,
		LastFetchedAt: m.LastFetchedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toDomainMany(models []PageModel) []*page.Page {
	out := make([]*page.Page, len(models))
	for i := range models {
		out[i] = toDomain(&models[i])
	}
	return out
}

func fromDomain(d *page.Page) *PageModel {
	return &PageModel{
		ID:            d.ID,
		URL:           d.URL,
		AccessCount:   d.AccessCount,
		LastOutcome:   string(d.LastOutcome),
		LastError:     d.LastError,
		LastFetchedAt: d.LastFetchedAt,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
