//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/book-inventory/internal/inventory/delivery/http"
	"github.com/tair/book-inventory/internal/inventory/domain"
	"github.com/tair/book-inventory/internal/inventory/repository"
	"github.com/tair/book-inventory/internal/inventory/usecase/command"
	"github.com/tair/book-inventory/internal/inventory/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	repository.NewGormTransactionRepositoryWithTracing,
	wire.Bind(new(domain.TransactionRepository), new(*repository.GormTransactionRepositoryWithTracing)),
)

// InitializeTransactionHandler initializes the ledger HTTP handler with
// all dependencies
func InitializeTransactionHandler(db *gorm.DB, publisher command.EventPublisher) (*http.TransactionHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewRecordTransactionHandler,
		query.NewGetTransactionHandler,
		query.NewListTransactionsHandler,
		http.NewTransactionHandler,
	)
	return nil, nil
}
