package query

import (
	"context"

	"github.com/tair/book-inventory/internal/inventory/domain"
)

// GetTransactionQuery represents the query to fetch a single ledger entry
type GetTransactionQuery struct {
	ID string
}

// GetTransactionHandler handles get transaction query
type GetTransactionHandler struct {
	repo domain.TransactionRepository
}

// NewGetTransactionHandler creates a new get transaction handler
func NewGetTransactionHandler(repo domain.TransactionRepository) *GetTransactionHandler {
	return &GetTransactionHandler{repo: repo}
}

// Handle executes the get transaction query
func (h *GetTransactionHandler) Handle(ctx context.Context, q GetTransactionQuery) (*domain.Transaction, error) {
	return h.repo.FindByID(ctx, q.ID)
}
