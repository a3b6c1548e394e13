package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents the category entity. Category names are unique,
// case-insensitively, among active rows only: a soft-deleted category does
// not block reuse of its name.
type Category struct {
	ID        string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string         `json:"name" gorm:"size:64;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CategoryRepository defines the contract for category data access.
// ActiveNameExists checks case-insensitive name uniqueness scoped to
// active rows, optionally excluding one id (for updates and restores).
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id string, includeDeleted bool) (*Category, error)
	FindByIDs(ctx context.Context, ids []string) ([]Category, error)
	Update(ctx context.Context, category *Category) error
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	ActiveNameExists(ctx context.Context, name, excludeID string) (bool, error)
	List(ctx context.Context, query NameQuery) ([]Category, int64, error)
}
