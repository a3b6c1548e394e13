package command

import (
	"context"

	"github.com/tair/book-inventory/internal/user/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/auth"
)

// RefreshTokenCommand represents the command to exchange a refresh token
// for a new token pair
type RefreshTokenCommand struct {
	RefreshToken string
}

// RefreshTokenHandler handles token refresh command
type RefreshTokenHandler struct {
	repo    domain.UserRepository
	revoker domain.TokenRevoker
}

// NewRefreshTokenHandler creates a new refresh token handler
func NewRefreshTokenHandler(repo domain.UserRepository, revoker domain.TokenRevoker) *RefreshTokenHandler {
	return &RefreshTokenHandler{repo: repo, revoker: revoker}
}

// Handle executes the refresh token command. The used refresh token is
// revoked so each one works exactly once; roles are re-read from the user
// so a role change takes effect at the next refresh.
func (h *RefreshTokenHandler) Handle(ctx context.Context, cmd RefreshTokenCommand) (*TokenPair, error) {
	claims, err := auth.ValidateToken(cmd.RefreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	revoked, err := h.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := h.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		if apperrors.KindOf(err) == apperrors.KindNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrAccountDisabled
	}

	if err := h.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return nil, err
	}

	return issueTokens(user)
}
