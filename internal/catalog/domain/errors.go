package domain

import (
	"github.com/tair/book-inventory/pkg/apperrors"
)

// Catalog domain errors.
var (
	ErrBookNotFound      = apperrors.New(apperrors.KindNotFound, "book not found")
	ErrAuthorNotFound    = apperrors.New(apperrors.KindNotFound, "author not found")
	ErrCategoryNotFound  = apperrors.New(apperrors.KindNotFound, "category not found")
	ErrPublisherNotFound = apperrors.New(apperrors.KindNotFound, "publisher not found")

	// ErrISBNDuplicate fires on any ISBN collision; books are never
	// soft-deleted, so the uniqueness is unconditional.
	ErrISBNDuplicate = apperrors.New(apperrors.KindConflict, "a book with this ISBN already exists")

	ErrCategoryNameTaken  = apperrors.New(apperrors.KindConflict, "category name already exists")
	ErrPublisherNameTaken = apperrors.New(apperrors.KindConflict, "publisher name already exists")

	// ErrBookHasTransactions blocks hard deletion while ledger rows
	// reference the book.
	ErrBookHasTransactions = apperrors.New(apperrors.KindConflict, "cannot delete book with existing inventory transactions")
)
