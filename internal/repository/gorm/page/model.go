package pagegorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PageModel is the GORM persistence model for tracked pages.
// It maps directly to the "pages" table in Postgres.
type PageModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	URL           string     `gorm:"size:2048;not null;uniqueIndex"`
	AccessCount   int64      `gorm:"not null;default:0"`
	LastOutcome   string     `gorm:"size:10"`
	LastError     string     `gorm:"size:512"`
	LastFetchedAt *time.Time `gorm:"index"`
	CreatedAt     time.Time  `gorm:"not null"`
	UpdatedAt     time.Time
}

// TableName overrides the default table name used by GORM.
func (PageModel) TableName() string {
	return "pages"
}

// BeforeCreate ensures a UUID is set before inserting a new record.
func (m *PageModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
