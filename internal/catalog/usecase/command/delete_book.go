package command

import (
	"context"

	"github.com/tair/book-inventory/internal/catalog/domain"
)

// TransactionCounter reports how many ledger entries reference a book. The
// inventory module's repository satisfies it.
type TransactionCounter interface {
	CountByBook(ctx context.Context, bookID string) (int64, error)
}

// DeleteBookCommand represents the command to hard-delete a book
type DeleteBookCommand struct {
	ID string
}

// DeleteBookHandler handles book deletion command
type DeleteBookHandler struct {
	books        domain.BookRepository
	transactions TransactionCounter
}

// NewDeleteBookHandler creates a new delete book handler
func NewDeleteBookHandler(books domain.BookRepository, transactions TransactionCounter) *DeleteBookHandler {
	return &DeleteBookHandler{books: books, transactions: transactions}
}

// Handle executes the delete book command. Deletion is refused while any
// inventory transaction references the book, the ledger is append-only and
// must not lose its subject.
func (h *DeleteBookHandler) Handle(ctx context.Context, cmd DeleteBookCommand) error {
	if _, err := h.books.FindByID(ctx, cmd.ID); err != nil {
		return err
	}

	count, err := h.transactions.CountByBook(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrBookHasTransactions
	}

	return h.books.Delete(ctx, cmd.ID)
}
