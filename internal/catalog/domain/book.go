package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tair/book-inventory/pkg/listing"
)

// Book represents the book entity. Quantity is a denormalized cache of the
// inventory ledger: it always equals the resulting_quantity of the book's
// latest transaction and is only ever written by the ledger append path.
type Book struct {
	ID            string     `json:"id" gorm:"type:uuid;primaryKey"`
	Title         string     `json:"title" gorm:"size:255;not null"`
	ISBN          string     `json:"isbn" gorm:"size:13;uniqueIndex;not null"`
	PublishedDate *time.Time `json:"published_date,omitempty" gorm:"type:date"`
	Pages         *int       `json:"pages,omitempty"`
	Quantity      int        `json:"quantity" gorm:"not null;default:0"`
	PriceCents    *int64     `json:"price_cents,omitempty"`
	Description   string     `json:"description,omitempty"`
	PublisherID   *string    `json:"publisher_id,omitempty" gorm:"type:uuid"`
	Publisher     *Publisher `json:"publisher,omitempty" gorm:"constraint:OnDelete:RESTRICT"`
	Authors       []Author   `json:"authors,omitempty" gorm:"many2many:book_authors"`
	Categories    []Category `json:"categories,omitempty" gorm:"many2many:book_categories"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName specifies the table name
func (Book) TableName() string {
	return "books"
}

// BeforeCreate assigns a UUIDv4 id when none was supplied.
func (b *Book) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// BookSortFields is the sort allowlist for book listings.
var BookSortFields = map[string]string{
	"title":          "title",
	"published_date": "published_date",
	"price":          "price_cents",
	"created_at":     "created_at",
	"updated_at":     "updated_at",
}

// BookQuery is the typed list specification for books. ISBN is expected
// normalized; price bounds are cents.
type BookQuery struct {
	Page          listing.Page
	Sort          []listing.Order
	AuthorID      string
	CategoryID    string
	PublisherID   string
	ISBN          string
	PriceMinCents *int64
	PriceMaxCents *int64
	PublishedFrom *time.Time
	PublishedTo   *time.Time
	Search        string
}

// BookAssociations carries optional wholesale replacements for a book's
// relation sets during update. A nil slice pointer leaves the set untouched.
type BookAssociations struct {
	Authors    *[]Author
	Categories *[]Category
}

// BookRepository defines the contract for book data access. Mutations are
// atomic units: an update with association replacement either applies fully
// or not at all.
type BookRepository interface {
	Create(ctx context.Context, book *Book) error
	FindByID(ctx context.Context, id string) (*Book, error)
	ISBNExists(ctx context.Context, isbn, excludeID string) (bool, error)
	Update(ctx context.Context, book *Book, assoc BookAssociations) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, query BookQuery) ([]Book, int64, error)
}
