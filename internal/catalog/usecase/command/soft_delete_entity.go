package command

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
)

// EntityType selects which soft-deletable catalog entity a lifecycle
// command addresses.
type EntityType string

const (
	EntityAuthor    EntityType = "author"
	EntityCategory  EntityType = "category"
	EntityPublisher EntityType = "publisher"
)

// SoftDeleteEntityCommand represents the command to soft-delete an author,
// category or publisher
type SoftDeleteEntityCommand struct {
	Entity EntityType
	ID     string
}

// SoftDeleteEntityHandler handles lifecycle soft-delete for the three name
// entities. Books are excluded, they only hard-delete.
type SoftDeleteEntityHandler struct {
	authors    domain.AuthorRepository
	categories domain.CategoryRepository
	publishers domain.PublisherRepository
}

// NewSoftDeleteEntityHandler creates a new soft delete handler
func NewSoftDeleteEntityHandler(
	authors domain.AuthorRepository,
	categories domain.CategoryRepository,
	publishers domain.PublisherRepository,
) *SoftDeleteEntityHandler {
	return &SoftDeleteEntityHandler{
		authors:    authors,
		categories: categories,
		publishers: publishers,
	}
}

// Handle executes the soft delete command. Deleting an already deleted or
// unknown row reports not found; the operation is not idempotent.
func (h *SoftDeleteEntityHandler) Handle(ctx context.Context, cmd SoftDeleteEntityCommand) error {
	switch cmd.Entity {
	case EntityAuthor:
		return h.authors.SoftDelete(ctx, cmd.ID)
	case EntityCategory:
		return h.categories.SoftDelete(ctx, cmd.ID)
	case EntityPublisher:
		return h.publishers.SoftDelete(ctx, cmd.ID)
	default:
		return apperrors.Newf(apperrors.KindBadRequest, "unknown entity type %q", cmd.Entity)
	}
}
