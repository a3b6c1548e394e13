package query

import (
	"context"
	"time"

	catalog "github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/internal/inventory/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/listing"
)

const dateLayout = "2006-01-02"

// ListTransactionsQuery represents the query to list ledger entries.
// Filter values arrive as raw query-string text; the date bounds are
// inclusive calendar days.
type ListTransactionsQuery struct {
	Page        int
	Limit       int
	Sort        string
	BookID      string
	Reason      string
	CreatedFrom string
	CreatedTo   string
}

// ListTransactionsResult carries one page of ledger entries with
// pagination metadata
type ListTransactionsResult struct {
	Transactions []domain.Transaction
	Meta         listing.Meta
}

// ListTransactionsHandler handles list transactions query
type ListTransactionsHandler struct {
	repo domain.TransactionRepository
}

// NewListTransactionsHandler creates a new list transactions handler
func NewListTransactionsHandler(repo domain.TransactionRepository) *ListTransactionsHandler {
	return &ListTransactionsHandler{repo: repo}
}

// Handle executes the list transactions query. The default order is newest
// first.
func (h *ListTransactionsHandler) Handle(ctx context.Context, q ListTransactionsQuery) (*ListTransactionsResult, error) {
	fields := apperrors.FieldErrors{}

	sort, err := listing.ParseSort(q.Sort, "-created_at", domain.TransactionSortFields)
	if err != nil {
		fields.Merge("sort", err)
	}

	spec := domain.TransactionQuery{
		Page:   listing.NewPage(q.Page, q.Limit),
		Sort:   sort,
		BookID: q.BookID,
	}

	if q.Reason != "" {
		reason, err := domain.ParseReason(q.Reason)
		if err != nil {
			fields.Merge("reason", err)
		} else {
			spec.Reason = reason
		}
	}
	if q.CreatedFrom != "" {
		from, err := time.Parse(dateLayout, q.CreatedFrom)
		if err != nil {
			fields.Add("created_from", "must be a date in YYYY-MM-DD format")
		} else {
			spec.CreatedFrom = &from
		}
	}
	if q.CreatedTo != "" {
		to, err := time.Parse(dateLayout, q.CreatedTo)
		if err != nil {
			fields.Add("created_to", "must be a date in YYYY-MM-DD format")
		} else {
			spec.CreatedTo = &to
		}
	}

	if err := fields.Err(); err != nil {
		return nil, err
	}

	if spec.BookID != "" {
		exists, err := h.repo.BookExists(ctx, spec.BookID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, catalog.ErrBookNotFound
		}
	}

	entries, total, err := h.repo.List(ctx, spec)
	if err != nil {
		return nil, err
	}
	return &ListTransactionsResult{
		Transactions: entries,
		Meta:         listing.NewMeta(spec.Page, total),
	}, nil
}
