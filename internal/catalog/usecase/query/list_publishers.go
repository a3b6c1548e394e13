package query

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/listing"
)

// ListPublishersQuery represents the query to list publishers
type ListPublishersQuery struct {
	Page           int
	Limit          int
	Sort           string
	Search         string
	IncludeDeleted bool
}

// ListPublishersResult carries one page of publishers with pagination
// metadata
type ListPublishersResult struct {
	Publishers []domain.Publisher
	Meta       listing.Meta
}

// ListPublishersHandler handles list publishers query
type ListPublishersHandler struct {
	repo domain.PublisherRepository
}

// NewListPublishersHandler creates a new list publishers handler
func NewListPublishersHandler(repo domain.PublisherRepository) *ListPublishersHandler {
	return &ListPublishersHandler{repo: repo}
}

// Handle executes the list publishers query
func (h *ListPublishersHandler) Handle(ctx context.Context, q ListPublishersQuery) (*ListPublishersResult, error) {
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

	publishers, total, err := h.repo.List(ctx, spec)
	if err != nil {
		return nil, err
	}
	return &ListPublishersResult{
		Publishers: publishers,
		Meta:       listing.NewMeta(spec.Page, total),
	}, nil
}
