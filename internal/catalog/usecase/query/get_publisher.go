package query

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
)

// GetPublisherQuery represents the query to fetch a single publisher
type GetPublisherQuery struct {
	ID             string
	IncludeDeleted bool
}

// GetPublisherHandler handles get publisher query
type GetPublisherHandler struct {
	repo domain.PublisherRepository
}

// NewGetPublisherHandler creates a new get publisher handler
func NewGetPublisherHandler(repo domain.PublisherRepository) *GetPublisherHandler {
	return &GetPublisherHandler{repo: repo}
}

// Handle executes the get publisher query
func (h *GetPublisherHandler) Handle(ctx context.Context, q GetPublisherQuery) (*domain.Publisher, error) {
	return h.repo.FindByID(ctx, q.ID, q.IncludeDeleted)
}
