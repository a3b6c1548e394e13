package command

import (
	"context"
	"time"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/isbn"
	"github.com/tair/book-inventory/pkg/money"
)

// UpdateBookCommand represents the command to partially update a book. Nil
// pointers mean "leave unchanged". SetPublisher distinguishes clearing the
// publisher from not touching it; nil relation slices leave the relation
// sets as they are, empty slices clear them. Quantity is intentionally not
// updatable here.
type UpdateBookCommand struct {
	ID            string
	Title         *string
	ISBN          *string
	PublishedDate *time.Time
	ClearDate     bool
	Pages         *int
	ClearPages    bool
	Price         *string
	ClearPrice    bool
	Description   *string
	PublisherID   *string
	SetPublisher  bool
	AuthorIDs     []string
	CategoryIDs   []string
}

// UpdateBookHandler handles book update command
type UpdateBookHandler struct {
	books      domain.BookRepository
	authors    domain.AuthorRepository
	categories domain.CategoryRepository
	publishers domain.PublisherRepository
}

// NewUpdateBookHandler creates a new update book handler
func NewUpdateBookHandler(
	books domain.BookRepository,
	authors domain.AuthorRepository,
	categories domain.CategoryRepository,
	publishers domain.PublisherRepository,
) *UpdateBookHandler {
	return &UpdateBookHandler{
		books:      books,
		authors:    authors,
		categories: categories,
		publishers: publishers,
	}
}

// Handle executes the update book command
func (h *UpdateBookHandler) Handle(ctx context.Context, cmd UpdateBookCommand) (*domain.Book, error) {
	book, err := h.books.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	fields := apperrors.FieldErrors{}

	if cmd.Title != nil {
		if *cmd.Title == "" {
			fields.Add("title", "title is required")
		} else if len(*cmd.Title) > 255 {
			fields.Add("title", "title must be at most 255 characters")
		} else {
			book.Title = *cmd.Title
		}
	}

	if cmd.ISBN != nil {
		normalized, err := isbn.Normalize(*cmd.ISBN)
		if err != nil {
			fields.Merge("isbn", err)
		} else {
			book.ISBN = normalized
		}
	}

	if cmd.ClearDate {
		book.PublishedDate = nil
	} else if cmd.PublishedDate != nil {
		if cmd.PublishedDate.After(time.Now()) {
			fields.Add("published_date", "published date cannot be in the future")
		} else {
			book.PublishedDate = cmd.PublishedDate
		}
	}

	if cmd.ClearPages {
		book.Pages = nil
	} else if cmd.Pages != nil {
		if *cmd.Pages < 1 {
			fields.Add("pages", "pages must be at least 1")
		} else {
			book.Pages = cmd.Pages
		}
	}

	if cmd.ClearPrice {
		book.PriceCents = nil
	} else if cmd.Price != nil {
		cents, err := money.ParseCents(*cmd.Price)
		if err != nil {
			fields.Merge("price", err)
		} else {
			book.PriceCents = &cents
		}
	}

	if cmd.Description != nil {
		book.Description = *cmd.Description
	}

	if err := fields.Err(); err != nil {
		return nil, err
	}

	if cmd.ISBN != nil && book.ISBN != "" {
		exists, err := h.books.ISBNExists(ctx, book.ISBN, book.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrISBNDuplicate
		}
	}

	if cmd.SetPublisher {
		if cmd.PublisherID != nil {
			if _, err := h.publishers.FindByID(ctx, *cmd.PublisherID, false); err != nil {
				if apperrors.KindOf(err) == apperrors.KindNotFound {
					return nil, apperrors.New(apperrors.KindBadRequest, "publisher_id does not reference an active publisher")
				}
				return nil, err
			}
		}
		book.PublisherID = cmd.PublisherID
		book.Publisher = nil
	}

	assoc := domain.BookAssociations{}
	if cmd.AuthorIDs != nil {
		authors, err := resolveAuthors(ctx, h.authors, cmd.AuthorIDs)
		if err != nil {
			return nil, err
		}
		if authors == nil {
			authors = []domain.Author{}
		}
		assoc.Authors = &authors
	}
	if cmd.CategoryIDs != nil {
		categories, err := resolveCategories(ctx, h.categories, cmd.CategoryIDs)
		if err != nil {
			return nil, err
		}
		if categories == nil {
			categories = []domain.Category{}
		}
		assoc.Categories = &categories
	}

	if err := h.books.Update(ctx, book, assoc); err != nil {
		return nil, err
	}
	return h.books.FindByID(ctx, book.ID)
}
