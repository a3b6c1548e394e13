package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tair/book-inventory/pkg/listing"
)

// Author represents the author entity. Author names are not unique; two
// authors may legitimately share a name.
type Author struct {
	ID        string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string         `json:"name" gorm:"size:128;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName specifies the table name
func (Author) TableName() string {
	return "authors"
}

func (a *Author) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}

// NameSortFields is the sort allowlist shared by the name entities
// (authors, categories, publishers).
var NameSortFields = map[string]string{
	"name":       "name",
	"created_at": "created_at",
}

// NameQuery is the typed list specification for the name entities.
type NameQuery struct {
	Page           listing.Page
	Sort           []listing.Order
	Search         string
	IncludeDeleted bool
}

// AuthorRepository defines the contract for author data access. FindByID
// with includeDeleted reads through the soft-delete scope; SoftDelete and
// Restore report ErrAuthorNotFound when the row is absent or already in the
// addressed state.
type AuthorRepository interface {
	Create(ctx context.Context, author *Author) error
	FindByID(ctx context.Context, id string, includeDeleted bool) (*Author, error)
	FindByIDs(ctx context.Context, ids []string) ([]Author, error)
	Update(ctx context.Context, author *Author) error
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	List(ctx context.Context, query NameQuery) ([]Author, int64, error)
}
