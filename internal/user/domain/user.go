package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/tair/book-inventory/pkg/apperrors"
)

// Role types
const (
	RoleUser   = "user"
	RoleAuthor = "author"
	RoleAdmin  = "admin"
)

// KnownRoles lists every assignable role.
var KnownRoles = []string{RoleUser, RoleAuthor, RoleAdmin}

// User represents the user entity
type User struct {
	ID           string         `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string         `json:"email" gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	FullName     string         `json:"full_name" gorm:"size:128;not null"`
	Roles        pq.StringArray `json:"roles" gorm:"type:text[];not null"`
	IsActive     bool           `json:"is_active" gorm:"not null;default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// HasRole checks membership in the user's role set.
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User domain errors.
var (
	ErrUserNotFound       = apperrors.New(apperrors.KindNotFound, "user not found")
	ErrEmailTaken         = apperrors.New(apperrors.KindConflict, "email already registered")
	ErrInvalidCredentials = apperrors.New(apperrors.KindBadRequest, "invalid credentials")
	ErrAccountDisabled    = apperrors.New(apperrors.KindBadRequest, "account is deactivated")
)

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// TokenRevoker tracks revoked token ids until their natural expiry. The
// redis-backed store satisfies it.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
