package command

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
)

// UpdateCategoryCommand represents the command to rename a category
type UpdateCategoryCommand struct {
	ID   string
	Name string
}

// UpdateCategoryHandler handles category update command
type UpdateCategoryHandler struct {
	repo domain.CategoryRepository
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(repo domain.CategoryRepository) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo}
}

// Handle executes the update category command
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.Category, error) {
	if err := validateName(cmd.Name, 64); err != nil {
		return nil, err
	}

	category, err := h.repo.FindByID(ctx, cmd.ID, false)
	if err != nil {
		return nil, err
	}

	taken, err := h.repo.ActiveNameExists(ctx, cmd.Name, category.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrCategoryNameTaken
	}

	category.Name = cmd.Name
	if err := h.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
