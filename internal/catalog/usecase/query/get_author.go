package query

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
)

// GetAuthorQuery represents the query to fetch a single author
type GetAuthorQuery struct {
	ID             string
	IncludeDeleted bool
}

// GetAuthorHandler handles get author query
type GetAuthorHandler struct {
	repo domain.AuthorRepository
}

// NewGetAuthorHandler creates a new get author handler
func NewGetAuthorHandler(repo domain.AuthorRepository) *GetAuthorHandler {
	return &GetAuthorHandler{repo: repo}
}

// Handle executes the get author query
func (h *GetAuthorHandler) Handle(ctx context.Context, q GetAuthorQuery) (*domain.Author, error) {
	return h.repo.FindByID(ctx, q.ID, q.IncludeDeleted)
}
