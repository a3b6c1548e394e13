package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalog "github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/internal/inventory/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/listing"
)

type GormTransactionRepository struct {
	db *gorm.DB
}

func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

func (r *GormTransactionRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Transaction{})
}

// Append records one ledger entry. The book row is locked with SELECT FOR
// UPDATE so concurrent appends for the same book serialize; the entry and
// the book's cached quantity commit together or not at all. The locked
// book's quantity is the authoritative latest resulting_quantity.
func (r *GormTransactionRepository) Append(ctx context.Context, bookID string, delta int, reason domain.Reason, note string) (*domain.Transaction, error) {
	var entry *domain.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var book catalog.Book
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&book, "id = ?", bookID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return catalog.ErrBookNotFound
		}
		if err != nil {
			return apperrors.Wrap(err, "failed to lock book")
		}

		next, err := domain.Apply(book.Quantity, delta)
		if err != nil {
			return err
		}

		entry = &domain.Transaction{
			BookID:            bookID,
			DeltaQuantity:     delta,
			Reason:            reason,
			Note:              note,
			ResultingQuantity: next,
		}
		if err := tx.Create(entry).Error; err != nil {
			return apperrors.Wrap(err, "failed to create transaction")
		}

		err = tx.Model(&catalog.Book{}).
			Where("id = ?", bookID).
			Update("quantity", next).Error
		if err != nil {
			return apperrors.Wrap(err, "failed to update book quantity")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (r *GormTransactionRepository) FindByID(ctx context.Context, id string) (*domain.Transaction, error) {
	var entry domain.Transaction
	err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTransactionNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to find transaction")
	}
	return &entry, nil
}

func (r *GormTransactionRepository) List(ctx context.Context, query domain.TransactionQuery) ([]domain.Transaction, int64, error) {
	db := r.db.WithContext(ctx).Model(&domain.Transaction{})

	if query.BookID != "" {
		db = db.Where("book_id = ?", query.BookID)
	}
	if query.Reason != "" {
		db = db.Where("reason = ?", query.Reason)
	}
	if query.CreatedFrom != nil {
		db = db.Where("created_at::date >= ?", *query.CreatedFrom)
	}
	if query.CreatedTo != nil {
		db = db.Where("created_at::date <= ?", *query.CreatedTo)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count transactions")
	}

	var entries []domain.Transaction
	err := db.
		Order(orderClause(query.Sort)).
		Offset(query.Page.Offset()).
		Limit(query.Page.Limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list transactions")
	}
	return entries, total, nil
}

func (r *GormTransactionRepository) CountByBook(ctx context.Context, bookID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Transaction{}).
		Where("book_id = ?", bookID).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to count transactions")
	}
	return count, nil
}

func (r *GormTransactionRepository) BookExists(ctx context.Context, bookID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&catalog.Book{}).
		Where("id = ?", bookID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check book")
	}
	return count > 0, nil
}

func orderClause(orders []listing.Order) string {
	if len(orders) == 0 {
		orders = []listing.Order{{Column: "id"}}
	}
	out := ""
	for i, o := range orders {
		if i > 0 {
			out += ", "
		}
		out += o.Column
		if o.Desc {
			out += " DESC"
		}
	}
	return out
}
