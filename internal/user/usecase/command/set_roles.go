package command

import (
	"context"

	"github.com/tair/book-inventory/internal/user/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
)

// SetRolesCommand represents the command to replace a user's role set
type SetRolesCommand struct {
	UserID string
	Roles  []string
}

// SetRolesHandler handles role assignment command
type SetRolesHandler struct {
	repo domain.UserRepository
}

// NewSetRolesHandler creates a new set roles handler
func NewSetRolesHandler(repo domain.UserRepository) *SetRolesHandler {
	return &SetRolesHandler{repo: repo}
}

// Handle executes the set roles command
func (h *SetRolesHandler) Handle(ctx context.Context, cmd SetRolesCommand) (*domain.User, error) {
	fields := apperrors.FieldErrors{}
	if len(cmd.Roles) == 0 {
		fields.Add("roles", "at least one role is required")
	}
	for _, role := range cmd.Roles {
		if !validRole(role) {
			fields.Add("roles", "unknown role: "+role)
		}
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	user, err := h.repo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	user.Roles = cmd.Roles
	if err := h.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func validRole(role string) bool {
	for _, known := range domain.KnownRoles {
		if role == known {
			return true
		}
	}
	return false
}
