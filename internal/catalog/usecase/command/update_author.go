package command

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
)

// UpdateAuthorCommand represents the command to rename an author
type UpdateAuthorCommand struct {
	ID   string
	Name string
}

// UpdateAuthorHandler handles author update command
type UpdateAuthorHandler struct {
	repo domain.AuthorRepository
}

// NewUpdateAuthorHandler creates a new update author handler
func NewUpdateAuthorHandler(repo domain.AuthorRepository) *UpdateAuthorHandler {
	return &UpdateAuthorHandler{repo: repo}
}

// Handle executes the update author command. Soft-deleted authors are not
// updatable; restore first.
func (h *UpdateAuthorHandler) Handle(ctx context.Context, cmd UpdateAuthorCommand) (*domain.Author, error) {
	if err := validateName(cmd.Name, 128); err != nil {
		return nil, err
	}

	author, err := h.repo.FindByID(ctx, cmd.ID, false)
	if err != nil {
		return nil, err
	}

	author.Name = cmd.Name
	if err := h.repo.Update(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}
