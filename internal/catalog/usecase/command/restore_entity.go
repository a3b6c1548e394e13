package command

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
)

// RestoreEntityCommand represents the command to restore a soft-deleted
// author, category or publisher
type RestoreEntityCommand struct {
	Entity EntityType
	ID     string
}

// RestoreEntityHandler handles lifecycle restore for the three name
// entities
type RestoreEntityHandler struct {
	authors    domain.AuthorRepository
	categories domain.CategoryRepository
	publishers domain.PublisherRepository
}

// NewRestoreEntityHandler creates a new restore handler
func NewRestoreEntityHandler(
	authors domain.AuthorRepository,
	categories domain.CategoryRepository,
	publishers domain.PublisherRepository,
) *RestoreEntityHandler {
	return &RestoreEntityHandler{
		authors:    authors,
		categories: categories,
		publishers: publishers,
	}
}

// Handle executes the restore command. Restoring an active or unknown row
// reports not found. A category or publisher whose name was reclaimed by a
// newer active row while it was deleted cannot come back until renamed, so
// those restores re-check the name and report a conflict.
func (h *RestoreEntityHandler) Handle(ctx context.Context, cmd RestoreEntityCommand) error {
	switch cmd.Entity {
	case EntityAuthor:
		return h.authors.Restore(ctx, cmd.ID)
	case EntityCategory:
		category, err := h.categories.FindByID(ctx, cmd.ID, true)
		if err != nil {
			return err
		}
		taken, err := h.categories.ActiveNameExists(ctx, category.Name, category.ID)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrCategoryNameTaken
		}
		return h.categories.Restore(ctx, cmd.ID)
	case EntityPublisher:
		publisher, err := h.publishers.FindByID(ctx, cmd.ID, true)
		if err != nil {
			return err
		}
		taken, err := h.publishers.ActiveNameExists(ctx, publisher.Name, publisher.ID)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrPublisherNameTaken
		}
		return h.publishers.Restore(ctx, cmd.ID)
	default:
		return apperrors.Newf(apperrors.KindBadRequest, "unknown entity type %q", cmd.Entity)
	}
}
