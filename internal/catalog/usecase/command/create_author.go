package command

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
)

// CreateAuthorCommand represents the command to create a new author
type CreateAuthorCommand struct {
	Name string
}

// CreateAuthorHandler handles author creation command
type CreateAuthorHandler struct {
	repo domain.AuthorRepository
}

// NewCreateAuthorHandler creates a new create author handler
func NewCreateAuthorHandler(repo domain.AuthorRepository) *CreateAuthorHandler {
	return &CreateAuthorHandler{repo: repo}
}

// Handle executes the create author command
func (h *CreateAuthorHandler) Handle(ctx context.Context, cmd CreateAuthorCommand) (*domain.Author, error) {
	if err := validateName(cmd.Name, 128); err != nil {
		return nil, err
	}

	author := &domain.Author{Name: cmd.Name}
	if err := h.repo.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// validateName enforces the shared name rules for authors, categories and
// publishers.
func validateName(name string, max int) error {
	fields := apperrors.FieldErrors{}
	if name == "" {
		fields.Add("name", "name is required")
	} else if len(name) > max {
		fields.Add("name", "name is too long")
	}
	return fields.Err()
}
