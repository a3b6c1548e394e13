package query

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
)

// GetCategoryQuery represents the query to fetch a single category
type GetCategoryQuery struct {
	ID             string
	IncludeDeleted bool
}

// GetCategoryHandler handles get category query
type GetCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewGetCategoryHandler creates a new get category handler
func NewGetCategoryHandler(repo domain.CategoryRepository) *GetCategoryHandler {
	return &GetCategoryHandler{repo: repo}
}

// Handle executes the get category query
func (h *GetCategoryHandler) Handle(ctx context.Context, q GetCategoryQuery) (*domain.Category, error) {
	return h.repo.FindByID(ctx, q.ID, q.IncludeDeleted)
}
