//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/tair/book-inventory/internal/user/delivery/http"
	"github.com/tair/book-inventory/internal/user/domain"
	"github.com/tair/book-inventory/internal/user/repository"
	"github.com/tair/book-inventory/internal/user/usecase/command"
	"github.com/tair/book-inventory/internal/user/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	repository.NewGormUserRepository,
	wire.Bind(new(domain.UserRepository), new(*repository.GormUserRepository)),
	repository.NewRedisTokenStore,
	wire.Bind(new(domain.TokenRevoker), new(*repository.RedisTokenStore)),
)

// InitializeUserHandler initializes the user HTTP handler with all
// dependencies
func InitializeUserHandler(db *gorm.DB, redisClient *redis.Client) (*http.UserHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewRegisterUserHandler,
		command.NewLoginUserHandler,
		command.NewRefreshTokenHandler,
		command.NewLogoutUserHandler,
		command.NewSetRolesHandler,
		query.NewGetUserHandler,
		http.NewAuthMiddleware,
		http.NewUserHandler,
	)
	return nil, nil
}

// InitializeAuthMiddleware initializes the shared auth middleware
func InitializeAuthMiddleware(redisClient *redis.Client) (*http.AuthMiddleware, error) {
	wire.Build(
		repository.NewRedisTokenStore,
		wire.Bind(new(domain.TokenRevoker), new(*repository.RedisTokenStore)),
		http.NewAuthMiddleware,
	)
	return nil, nil
}
