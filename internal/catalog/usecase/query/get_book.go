package query

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
)

// GetBookQuery represents the query to fetch a single book
type GetBookQuery struct {
	ID string
}

// GetBookHandler handles get book query
type GetBookHandler struct {
	repo domain.BookRepository
}

// NewGetBookHandler creates a new get book handler
func NewGetBookHandler(repo domain.BookRepository) *GetBookHandler {
	return &GetBookHandler{repo: repo}
}

// Handle executes the get book query
func (h *GetBookHandler) Handle(ctx context.Context, q GetBookQuery) (*domain.Book, error) {
	return h.repo.FindByID(ctx, q.ID)
}
