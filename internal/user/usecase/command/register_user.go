package command

import (
	"context"
	"strings"

	"github.com/tair/book-inventory/internal/user/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/auth"
)

// RegisterUserCommand represents the command to register a new user
type RegisterUserCommand struct {
	Email    string
	Password string
	FullName string
}

// RegisterUserHandler handles user registration command
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command. New accounts start with the
// plain user role.
func (h *RegisterUserHandler) Handle(ctx context.Context, cmd RegisterUserCommand) (*domain.User, error) {
	fields := apperrors.FieldErrors{}

	email := strings.TrimSpace(strings.ToLower(cmd.Email))
	if email == "" || !strings.Contains(email, "@") {
		fields.Add("email", "a valid email is required")
	}
	if len(cmd.Password) < 8 {
		fields.Add("password", "password must be at least 8 characters")
	}
	if cmd.FullName == "" {
		fields.Add("full_name", "full name is required")
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to hash password")
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     cmd.FullName,
		Roles:        []string{domain.RoleUser},
		IsActive:     true,
	}
	if err := h.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
