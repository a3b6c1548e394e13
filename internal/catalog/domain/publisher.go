package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Publisher represents the publisher entity. Like Category, publisher
// names are unique case-insensitively among active rows.
type Publisher struct {
	ID        string         `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string         `json:"name" gorm:"size:128;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// TableName specifies the table name
func (Publisher) TableName() string {
	return "publishers"
}

func (p *Publisher) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PublisherRepository defines the contract for publisher data access.
type PublisherRepository interface {
	Create(ctx context.Context, publisher *Publisher) error
	FindByID(ctx context.Context, id string, includeDeleted bool) (*Publisher, error)
	Update(ctx context.Context, publisher *Publisher) error
	SoftDelete(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	ActiveNameExists(ctx context.Context, name, excludeID string) (bool, error)
	List(ctx context.Context, query NameQuery) ([]Publisher, int64, error)
}
