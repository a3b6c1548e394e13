package query

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/listing"
)

// ListCategoriesQuery represents the query to list categories
type ListCategoriesQuery struct {
	Page           int
	Limit          int
	Sort           string
	Search         string
	IncludeDeleted bool
}

// ListCategoriesResult carries one page of categories with pagination
// metadata
type ListCategoriesResult struct {
	Categories []domain.Category
	Meta       listing.Meta
}

// ListCategoriesHandler handles list categories query
type ListCategoriesHandler struct {
	repo domain.CategoryRepository
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(repo domain.CategoryRepository) *ListCategoriesHandler {
	return &ListCategoriesHandler{repo: repo}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(ctx context.Context, q ListCategoriesQuery) (*ListCategoriesResult, error) {
	sort, err := listing.ParseSort(q.Sort, "name", domain.NameSortFields)
	if err != nil {
		return nil, err
	}

	spec := domain.NameQuery{
		Page:           listing.NewPage(q.Page, q.Limit),
		Sort:           sort,
		Search:         q.Search,
		IncludeDeleted: q.IncludeDeleted,
	}

	categories, total, err := h.repo.List(ctx, spec)
	if err != nil {
		return nil, err
	}
	return &ListCategoriesResult{
		Categories: categories,
		Meta:       listing.NewMeta(spec.Page, total),
	}, nil
}
