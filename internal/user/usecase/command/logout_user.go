package command

import (
	"context"

	"github.com/tair/book-inventory/internal/user/domain"
	"github.com/tair/book-inventory/pkg/auth"
)

// LogoutUserCommand represents the command to revoke the caller's tokens
type LogoutUserCommand struct {
	AccessToken  string
	RefreshToken string
}

// LogoutUserHandler handles user logout command
type LogoutUserHandler struct {
	revoker domain.TokenRevoker
}

// NewLogoutUserHandler creates a new logout user handler
func NewLogoutUserHandler(revoker domain.TokenRevoker) *LogoutUserHandler {
	return &LogoutUserHandler{revoker: revoker}
}

// Handle executes the logout command. Both tokens go on the revocation
// list until their natural expiry; an invalid refresh token is ignored so
// logout never fails for an already expired session.
func (h *LogoutUserHandler) Handle(ctx context.Context, cmd LogoutUserCommand) error {
	claims, err := auth.ValidateToken(cmd.AccessToken, auth.TokenTypeAccess)
	if err != nil {
		return domain.ErrInvalidCredentials
	}
	if err := h.revoker.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return err
	}

	if cmd.RefreshToken != "" {
		if refreshClaims, err := auth.ValidateToken(cmd.RefreshToken, auth.TokenTypeRefresh); err == nil {
			if err := h.revoker.Revoke(ctx, refreshClaims.ID, refreshClaims.ExpiresAt.Time); err != nil {
				return err
			}
		}
	}
	return nil
}
