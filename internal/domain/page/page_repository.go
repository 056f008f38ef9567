package page

import "context"

// Repository defines the persistence operations for the page ledger.
//
// It is implemented by infrastructure layers (e.g. GORM) while the
// service layer depends only on this interface.
type Repository interface {
	// RecordAccess inserts p or, if its URL already exists, updates the
	// outcome fields and raises the stored access count to p.AccessCount.
	RecordAccess(ctx context.Context, p *Page) error

	// GetByURL returns the page for url or ErrNotFound.
	GetByURL(ctx context.Context, url string) (*Page, error)

	// List returns a paginated list of pages, most recently fetched first,
	// along with the total number of pages.
	List(ctx context.Context, page, limit int) ([]*Page, int64, error)

	// ListURLs returns up to limit tracked URLs starting at offset, in a
	// stable order.
	ListURLs(ctx context.Context, limit, offset int) ([]string, error)

	// UpdateAccessCount overwrites the stored access count for url.
	UpdateAccessCount(ctx context.Context, url string, count int64) error
}
