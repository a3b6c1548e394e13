package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/listing"
)

// Reason classifies an inventory movement.
type Reason string

const (
	ReasonPurchase   Reason = "PURCHASE"
	ReasonSale       Reason = "SALE"
	ReasonReturn     Reason = "RETURN"
	ReasonAdjustment Reason = "ADJUSTMENT"
)

// Reasons lists every valid reason, in declaration order.
var Reasons = []Reason{ReasonPurchase, ReasonSale, ReasonReturn, ReasonAdjustment}

// ParseReason normalizes and validates a reason string.
func ParseReason(raw string) (Reason, error) {
	r := Reason(strings.ToUpper(strings.TrimSpace(raw)))
	for _, known := range Reasons {
		if r == known {
			return r, nil
		}
	}
	return "", apperrors.Newf(apperrors.KindValidation, "reason must be one of %v", Reasons)
}

// Transaction is one append-only ledger entry. Rows are immutable once
// created: there is no UpdatedAt and no update or delete path. Ordered by
// created_at (ties broken by id) they form the authoritative stock history
// of a book.
type Transaction struct {
	ID                string    `json:"id" gorm:"type:uuid;primaryKey"`
	BookID            string    `json:"book_id" gorm:"type:uuid;not null;index"`
	DeltaQuantity     int       `json:"delta_quantity" gorm:"not null;check:delta_quantity <> 0"`
	Reason            Reason    `json:"reason" gorm:"size:16;not null"`
	Note              string    `json:"note,omitempty" gorm:"size:255"`
	ResultingQuantity int       `json:"resulting_quantity" gorm:"not null;check:resulting_quantity >= 0"`
	CreatedAt         time.Time `json:"created_at"`
}

// TableName specifies the table name
func (Transaction) TableName() string {
	return "inventory_transactions"
}

func (t *Transaction) BeforeCreate(*gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// ErrNegativeStock rejects a ledger append whose resulting quantity would
// drop below zero.
var ErrNegativeStock = apperrors.New(apperrors.KindBadRequest, "resulting quantity would be negative")

// ErrZeroDelta rejects a no-op ledger entry.
var ErrZeroDelta = apperrors.New(apperrors.KindValidation, "delta_quantity cannot be zero")

// ErrTransactionNotFound is returned for an unknown transaction id.
var ErrTransactionNotFound = apperrors.New(apperrors.KindNotFound, "transaction not found")

// Apply computes the stock level after a delta. This is the single place
// the non-negative invariant lives; both the real repository and test
// fakes go through it.
func Apply(current, delta int) (int, error) {
	next := current + delta
	if next < 0 {
		return 0, ErrNegativeStock
	}
	return next, nil
}

// TransactionSortFields is the sort allowlist for ledger listings.
var TransactionSortFields = map[string]string{
	"created_at":     "created_at",
	"delta_quantity": "delta_quantity",
}

// TransactionQuery is the typed list specification for ledger entries.
type TransactionQuery struct {
	Page        listing.Page
	Sort        []listing.Order
	BookID      string
	Reason      Reason
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// TransactionRepository defines the contract for ledger data access.
//
// Append is the only write path. It must, in one atomic unit: lock the
// book row against concurrent appends, compute the resulting quantity via
// Apply, insert the transaction, and update the book's cached quantity.
// On any failure nothing is persisted.
type TransactionRepository interface {
	Append(ctx context.Context, bookID string, delta int, reason Reason, note string) (*Transaction, error)
	FindByID(ctx context.Context, id string) (*Transaction, error)
	List(ctx context.Context, query TransactionQuery) ([]Transaction, int64, error)
	CountByBook(ctx context.Context, bookID string) (int64, error)
	BookExists(ctx context.Context, bookID string) (bool, error)
}
