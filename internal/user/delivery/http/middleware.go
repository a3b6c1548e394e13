package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/tair/book-inventory/internal/user/domain"
	"github.com/tair/book-inventory/pkg/auth"
	"github.com/tair/book-inventory/pkg/logger"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	EmailKey  contextKey = "email"
	RolesKey  contextKey = "roles"
	TokenKey  contextKey = "token"
)

// AuthMiddleware validates bearer tokens and checks the revocation list
type AuthMiddleware struct {
	revoker domain.TokenRevoker
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(revoker domain.TokenRevoker) *AuthMiddleware {
	return &AuthMiddleware{revoker: revoker}
}

// Authenticate validates the access token and puts its claims on the
// request context
func (m *AuthMiddleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondUnauthorized(w, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondUnauthorized(w, "Invalid authorization header format")
			return
		}

		token := parts[1]
		claims, err := auth.ValidateToken(token, auth.TokenTypeAccess)
		if err != nil {
			respondUnauthorized(w, "Invalid token")
			return
		}

		revoked, err := m.revoker.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			logger.Error(r.Context()).Err(err).Msg("Failed to check token revocation")
			respondUnauthorized(w, "Invalid token")
			return
		}
		if revoked {
			respondUnauthorized(w, "Token has been revoked")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, EmailKey, claims.Email)
		ctx = context.WithValue(ctx, RolesKey, claims.Roles)
		ctx = context.WithValue(ctx, TokenKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequireRoles authenticates and then checks that the caller holds at
// least one of the given roles
func (m *AuthMiddleware) RequireRoles(roles ...string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return m.Authenticate(func(w http.ResponseWriter, r *http.Request) {
			callerRoles, ok := r.Context().Value(RolesKey).([]string)
			if !ok || !hasAnyRole(callerRoles, roles) {
				respondForbidden(w, "Insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin authenticates and checks for the admin role
func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireRoles(domain.RoleAdmin)(next)
}

func hasAnyRole(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// UserIDFromContext returns the authenticated caller's id.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusUnauthorized, Response{
		Success: false,
		Error:   "UNAUTHORIZED",
		Message: message,
	})
}

func respondForbidden(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusForbidden, Response{
		Success: false,
		Error:   "FORBIDDEN",
		Message: message,
	})
}
