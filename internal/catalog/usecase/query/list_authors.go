package query

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/listing"
)

// ListAuthorsQuery represents the query to list authors
type ListAuthorsQuery struct {
	Page           int
	Limit          int
	Sort           string
	Search         string
	IncludeDeleted bool
}

// ListAuthorsResult carries one page of authors with pagination metadata
type ListAuthorsResult struct {
	Authors []domain.Author
	Meta    listing.Meta
}

// ListAuthorsHandler handles list authors query
type ListAuthorsHandler struct {
	repo domain.AuthorRepository
}

// NewListAuthorsHandler creates a new list authors handler
func NewListAuthorsHandler(repo domain.AuthorRepository) *ListAuthorsHandler {
	return &ListAuthorsHandler{repo: repo}
}

// Handle executes the list authors query
func (h *ListAuthorsHandler) Handle(ctx context.Context, q ListAuthorsQuery) (*ListAuthorsResult, error) {
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

	authors, total, err := h.repo.List(ctx, spec)
	if err != nil {
		return nil, err
	}
	return &ListAuthorsResult{
		Authors: authors,
		Meta:    listing.NewMeta(spec.Page, total),
	}, nil
}
