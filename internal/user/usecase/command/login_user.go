package command

import (
	"context"

	"github.com/tair/book-inventory/internal/user/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/auth"
)

// LoginUserCommand represents the command to login a user
type LoginUserCommand struct {
	Email    string
	Password string
}

// TokenPair carries a fresh access plus refresh token
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse represents the response after successful login
type LoginResponse struct {
	Tokens TokenPair    `json:"tokens"`
	User   *domain.User `json:"user"`
}

// LoginUserHandler handles user login command
type LoginUserHandler struct {
	repo domain.UserRepository
}

// NewLoginUserHandler creates a new login user handler
func NewLoginUserHandler(repo domain.UserRepository) *LoginUserHandler {
	return &LoginUserHandler{repo: repo}
}

// Handle executes the login user command. Unknown email and wrong password
// report the same error so accounts cannot be enumerated.
func (h *LoginUserHandler) Handle(ctx context.Context, cmd LoginUserCommand) (*LoginResponse, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := h.repo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}
	if !auth.CheckPassword(cmd.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	tokens, err := issueTokens(user)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Tokens: *tokens, User: user}, nil
}

func issueTokens(user *domain.User) (*TokenPair, error) {
	access, err := auth.GenerateAccessToken(user.ID, user.Email, user.Roles)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate access token")
	}
	refresh, err := auth.GenerateRefreshToken(user.ID, user.Email, user.Roles)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to generate refresh token")
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
