package command

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
)

// CreateCategoryCommand represents the command to create a new category
type CreateCategoryCommand struct {
	Name string
}

// CreateCategoryHandler handles category creation command
type CreateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CategoryRepository) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo}
}

// Handle executes the create category command. Name uniqueness is
// case-insensitive among active categories; a soft-deleted category does
// not block the name.
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	if err := validateName(cmd.Name, 64); err != nil {
		return nil, err
	}

	taken, err := h.repo.ActiveNameExists(ctx, cmd.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrCategoryNameTaken
	}

	category := &domain.Category{Name: cmd.Name}
	if err := h.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
