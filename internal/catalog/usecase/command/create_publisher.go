package command

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
)

// CreatePublisherCommand represents the command to create a new publisher
type CreatePublisherCommand struct {
	Name string
}

// CreatePublisherHandler handles publisher creation command
type CreatePublisherHandler struct {
	repo domain.PublisherRepository
}

// NewCreatePublisherHandler creates a new create publisher handler
func NewCreatePublisherHandler(repo domain.PublisherRepository) *CreatePublisherHandler {
	return &CreatePublisherHandler{repo: repo}
}

// Handle executes the create publisher command
func (h *CreatePublisherHandler) Handle(ctx context.Context, cmd CreatePublisherCommand) (*domain.Publisher, error) {
	if err := validateName(cmd.Name, 128); err != nil {
		return nil, err
	}

	taken, err := h.repo.ActiveNameExists(ctx, cmd.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrPublisherNameTaken
	}

	publisher := &domain.Publisher{Name: cmd.Name}
	if err := h.repo.Create(ctx, publisher); err != nil {
		return nil, err
	}
	return publisher, nil
}
