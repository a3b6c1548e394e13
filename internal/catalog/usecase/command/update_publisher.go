package command

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
)

// UpdatePublisherCommand represents the command to rename a publisher
type UpdatePublisherCommand struct {
	ID   string
	Name string
}

// UpdatePublisherHandler handles publisher update command
type UpdatePublisherHandler struct {
	repo domain.PublisherRepository
}

// NewUpdatePublisherHandler creates a new update publisher handler
func NewUpdatePublisherHandler(repo domain.PublisherRepository) *UpdatePublisherHandler {
	return &UpdatePublisherHandler{repo: repo}
}

// Handle executes the update publisher command
func (h *UpdatePublisherHandler) Handle(ctx context.Context, cmd UpdatePublisherCommand) (*domain.Publisher, error) {
	if err := validateName(cmd.Name, 128); err != nil {
		return nil, err
	}

	publisher, err := h.repo.FindByID(ctx, cmd.ID, false)
	if err != nil {
		return nil, err
	}

	taken, err := h.repo.ActiveNameExists(ctx, cmd.Name, publisher.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrPublisherNameTaken
	}

	publisher.Name = cmd.Name
	if err := h.repo.Update(ctx, publisher); err != nil {
		return nil, err
	}
	return publisher, nil
}
