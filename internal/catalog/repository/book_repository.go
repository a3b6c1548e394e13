package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/listing"
)

type GormBookRepository struct {
	db *gorm.DB
}

func NewGormBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

func (r *GormBookRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Book{})
}

func (r *GormBookRepository) Create(ctx context.Context, book *domain.Book) error {
	// GORM creates the association rows inside the same transaction.
	err := r.db.WithContext(ctx).Create(book).Error
	if isDuplicateError(err) {
		return domain.ErrISBNDuplicate
	}
	if err != nil {
		return apperrors.Wrap(err, "failed to create book")
	}
	return nil
}

func (r *GormBookRepository) FindByID(ctx context.Context, id string) (*domain.Book, error) {
	var book domain.Book
	err := r.db.WithContext(ctx).
		Preload("Authors").
		Preload("Categories").
		Preload("Publisher").
		First(&book, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrBookNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to find book")
	}
	return &book, nil
}

func (r *GormBookRepository) ISBNExists(ctx context.Context, isbn, excludeID string) (bool, error) {
	var count int64
	db := r.db.WithContext(ctx).Model(&domain.Book{}).Where("isbn = ?", isbn)
	if excludeID != "" {
		db = db.Where("id <> ?", excludeID)
	}
	if err := db.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "failed to check ISBN uniqueness")
	}
	return count > 0, nil
}

func (r *GormBookRepository) Update(ctx context.Context, book *domain.Book, assoc domain.BookAssociations) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(book).Error; err != nil {
			return err
		}
		if assoc.Authors != nil {
			if err := tx.Model(book).Association("Authors").Replace(authorPtrs(*assoc.Authors)...); err != nil {
				return err
			}
		}
		if assoc.Categories != nil {
			if err := tx.Model(book).Association("Categories").Replace(categoryPtrs(*assoc.Categories)...); err != nil {
				return err
			}
		}
		return nil
	})
	if isDuplicateError(err) {
		return domain.ErrISBNDuplicate
	}
	if err != nil {
		return apperrors.Wrap(err, "failed to update book")
	}
	return nil
}

func (r *GormBookRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		book := domain.Book{ID: id}
		if err := tx.Model(&book).Association("Authors").Clear(); err != nil {
			return err
		}
		if err := tx.Model(&book).Association("Categories").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&domain.Book{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrBookNotFound
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return apperrors.Wrap(err, "failed to delete book")
	}
	return nil
}

func (r *GormBookRepository) List(ctx context.Context, query domain.BookQuery) ([]domain.Book, int64, error) {
	db := r.db.WithContext(ctx).Model(&domain.Book{})

	if query.AuthorID != "" {
		db = db.
			Joins("JOIN book_authors fa ON fa.book_id = books.id").
			Joins("JOIN authors fau ON fau.id = fa.author_id AND fau.deleted_at IS NULL").
			Where("fau.id = ?", query.AuthorID)
	}
	if query.CategoryID != "" {
		db = db.
			Joins("JOIN book_categories fc ON fc.book_id = books.id").
			Joins("JOIN categories fca ON fca.id = fc.category_id AND fca.deleted_at IS NULL").
			Where("fca.id = ?", query.CategoryID)
	}
	if query.PublisherID != "" {
		db = db.Where("books.publisher_id = ?", query.PublisherID)
	}
	if query.ISBN != "" {
		db = db.Where("books.isbn = ?", query.ISBN)
	}
	if query.PriceMinCents != nil {
		db = db.Where("books.price_cents >= ?", *query.PriceMinCents)
	}
	if query.PriceMaxCents != nil {
		db = db.Where("books.price_cents <= ?", *query.PriceMaxCents)
	}
	if query.PublishedFrom != nil {
		db = db.Where("books.published_date >= ?", *query.PublishedFrom)
	}
	if query.PublishedTo != nil {
		db = db.Where("books.published_date <= ?", *query.PublishedTo)
	}
	if q := strings.TrimSpace(query.Search); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		db = db.
			Joins("LEFT JOIN book_authors sa ON sa.book_id = books.id").
			Joins("LEFT JOIN authors sau ON sau.id = sa.author_id AND sau.deleted_at IS NULL").
			Where("LOWER(books.title) LIKE ? OR LOWER(sau.name) LIKE ?", like, like)
	}

	// Joins can multiply rows, so both the count and the page are distinct
	// on the book id.
	var total int64
	if err := db.Session(&gorm.Session{}).Distinct("books.id").Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count books")
	}

	var books []domain.Book
	err := db.
		Distinct("books.*").
		Order(orderClause("books", query.Sort)).
		Offset(query.Page.Offset()).
		Limit(query.Page.Limit).
		Preload("Authors").
		Preload("Categories").
		Preload("Publisher").
		Find(&books).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list books")
	}
	return books, total, nil
}

// orderClause renders allowlisted sort keys into an ORDER BY expression.
// Columns come from the entity allowlists, never from caller input.
func orderClause(table string, orders []listing.Order) string {
	if len(orders) == 0 {
		orders = []listing.Order{{Column: "id"}}
	}
	parts := make([]string, 0, len(orders))
	for _, o := range orders {
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		parts = append(parts, fmt.Sprintf("%s.%s %s", table, o.Column, dir))
	}
	return strings.Join(parts, ", ")
}

func authorPtrs(authors []domain.Author) []interface{} {
	out := make([]interface{}, len(authors))
	for i := range authors {
		out[i] = &authors[i]
	}
	return out
}

func categoryPtrs(categories []domain.Category) []interface{} {
	out := make([]interface{}, len(categories))
	for i := range categories {
		out[i] = &categories[i]
	}
	return out
}

// isDuplicateError reports whether err is a unique-constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// lib/pq unique_violation fallback
	return strings.Contains(err.Error(), "duplicate key value")
}
