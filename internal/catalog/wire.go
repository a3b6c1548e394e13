//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/tair/book-inventory/internal/catalog/delivery/http"
	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/internal/catalog/repository"
	"github.com/tair/book-inventory/internal/catalog/usecase/command"
	"github.com/tair/book-inventory/internal/catalog/usecase/query"
)

// Wire sets
var RepositorySet = wire.NewSet(
	repository.NewGormBookRepository,
	wire.Bind(new(domain.BookRepository), new(*repository.GormBookRepository)),
	repository.NewGormAuthorRepository,
	wire.Bind(new(domain.AuthorRepository), new(*repository.GormAuthorRepository)),
	repository.NewGormCategoryRepository,
	wire.Bind(new(domain.CategoryRepository), new(*repository.GormCategoryRepository)),
	repository.NewGormPublisherRepository,
	wire.Bind(new(domain.PublisherRepository), new(*repository.GormPublisherRepository)),
)

// InitializeBookHandler initializes the book HTTP handler with all
// dependencies
func InitializeBookHandler(db *gorm.DB, transactions command.TransactionCounter) (*http.BookHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewCreateBookHandler,
		command.NewUpdateBookHandler,
		command.NewDeleteBookHandler,
		query.NewGetBookHandler,
		query.NewListBooksHandler,
		http.NewBookHandler,
	)
	return nil, nil
}

// InitializeAuthorHandler initializes the author HTTP handler
func InitializeAuthorHandler(db *gorm.DB) (*http.AuthorHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewCreateAuthorHandler,
		command.NewUpdateAuthorHandler,
		command.NewSoftDeleteEntityHandler,
		command.NewRestoreEntityHandler,
		query.NewGetAuthorHandler,
		query.NewListAuthorsHandler,
		http.NewAuthorHandler,
	)
	return nil, nil
}

// InitializeCategoryHandler initializes the category HTTP handler
func InitializeCategoryHandler(db *gorm.DB) (*http.CategoryHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewCreateCategoryHandler,
		command.NewUpdateCategoryHandler,
		command.NewSoftDeleteEntityHandler,
		command.NewRestoreEntityHandler,
		query.NewGetCategoryHandler,
		query.NewListCategoriesHandler,
		http.NewCategoryHandler,
	)
	return nil, nil
}

// InitializePublisherHandler initializes the publisher HTTP handler
func InitializePublisherHandler(db *gorm.DB) (*http.PublisherHandler, error) {
	wire.Build(
		RepositorySet,
		command.NewCreatePublisherHandler,
		command.NewUpdatePublisherHandler,
		command.NewSoftDeleteEntityHandler,
		command.NewRestoreEntityHandler,
		query.NewGetPublisherHandler,
		query.NewListPublishersHandler,
		http.NewPublisherHandler,
	)
	return nil, nil
}
