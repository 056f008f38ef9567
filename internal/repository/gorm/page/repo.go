package pagegorm

import (
	"context"
	"errors"

	"github.com/oggyb/pagetracker/internal/db"
	"github.com/oggyb/pagetracker/internal/domain/page"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is a GORM-backed implementation of the page.Repository interface.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a page repository using the given DB adapter.
func NewRepository(d db.DB) *Repository {
	return &Repository{
		db: d.Conn().(*gorm.DB),
	}
}

// Migrate creates or updates the pages table.
func (r *Repository) Migrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&PageModel{})
}

// RecordAccess upserts on url. The stored count only ever grows, so a
// late write from a slower request cannot lower it.
func (r *Repository) RecordAccess(ctx context.Context, p *page.Page) error {
	model := fromDomain(p)

	updates := append(
		clause.AssignmentColumns([]string{"last_outcome", "last_error", "last_fetched_at", "updated_at"}),
		clause.Assignment{
			Column: clause.Column{Name: "access_count"},
			Value:  gorm.Expr("GREATEST(pages.access_count, EXCLUDED.access_count)"),
		},
	)

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "url"}},
			DoUpdates: updates,
		}).
		Create(model).Error
}

// GetByURL returns the page stored for url.
func (r *Repository) GetByURL(ctx context.Context, url string) (*page.Page, error) {
	var model PageModel

	err := r.db.WithContext(ctx).
		Where("url = ?", url).
		Take(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, page.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return toDomain(&model), nil
}

// List returns a paginated list of pages and the total count.
func (r *Repository) List(ctx context.Context, pageNum, limit int) ([]*page.Page, int64, error) {
	var models []PageModel
	var total int64

	query := r.db.WithContext(ctx).Model(&PageModel{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (pageNum - 1) * limit

	err := query.
		Order("last_fetched_at DESC NULLS LAST").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	return toDomainMany(models), total, nil
}

// ListURLs returns tracked URLs ordered by creation time.
func (r *Repository) ListURLs(ctx context.Context, limit, offset int) ([]string, error) {
	var urls []string

	err := r.db.WithContext(ctx).
		Model(&PageModel{}).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Pluck("url", &urls).Error
	if err != nil {
		return nil, err
	}

	return urls, nil
}

// UpdateAccessCount overwrites the stored counter snapshot for url.
func (r *Repository) UpdateAccessCount(ctx context.Context, url string, count int64) error {
	return r.db.WithContext(ctx).
		Model(&PageModel{}).
		Where("url = ?", url).
		Update("access_count", count).Error
}

// compile-time interface check
var _ page.Repository = (*Repository)(nil)
