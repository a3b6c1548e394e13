package command

import (
	"context"
	"time"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/isbn"
	"github.com/tair/book-inventory/pkg/money"
)

// CreateBookCommand represents the command to create a new book. Price is
// the decimal string from the request body; Quantity is absent on purpose,
// stock only ever changes through the inventory ledger.
type CreateBookCommand struct {
	Title         string
	ISBN          string
	PublishedDate *time.Time
	Pages         *int
	Price         *string
	Description   string
	PublisherID   *string
	AuthorIDs     []string
	CategoryIDs   []string
}

// CreateBookHandler handles book creation command
type CreateBookHandler struct {
	books      domain.BookRepository
	authors    domain.AuthorRepository
	categories domain.CategoryRepository
	publishers domain.PublisherRepository
}

// NewCreateBookHandler creates a new create book handler
func NewCreateBookHandler(
	books domain.BookRepository,
	authors domain.AuthorRepository,
	categories domain.CategoryRepository,
	publishers domain.PublisherRepository,
) *CreateBookHandler {
	return &CreateBookHandler{
		books:      books,
		authors:    authors,
		categories: categories,
		publishers: publishers,
	}
}

// Handle executes the create book command
func (h *CreateBookHandler) Handle(ctx context.Context, cmd CreateBookCommand) (*domain.Book, error) {
	fields := apperrors.FieldErrors{}

	if cmd.Title == "" {
		fields.Add("title", "title is required")
	} else if len(cmd.Title) > 255 {
		fields.Add("title", "title must be at most 255 characters")
	}

	normalized, err := isbn.Normalize(cmd.ISBN)
	if err != nil {
		fields.Merge("isbn", err)
	}

	if cmd.PublishedDate != nil && cmd.PublishedDate.After(time.Now()) {
		fields.Add("published_date", "published date cannot be in the future")
	}
	if cmd.Pages != nil && *cmd.Pages < 1 {
		fields.Add("pages", "pages must be at least 1")
	}

	var priceCents *int64
	if cmd.Price != nil {
		cents, err := money.ParseCents(*cmd.Price)
		if err != nil {
			fields.Merge("price", err)
		} else {
			priceCents = &cents
		}
	}

	if err := fields.Err(); err != nil {
		return nil, err
	}

	exists, err := h.books.ISBNExists(ctx, normalized, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrISBNDuplicate
	}

	if cmd.PublisherID != nil {
		if _, err := h.publishers.FindByID(ctx, *cmd.PublisherID, false); err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return nil, apperrors.New(apperrors.KindBadRequest, "publisher_id does not reference an active publisher")
			}
			return nil, err
		}
	}

	authors, err := resolveAuthors(ctx, h.authors, cmd.AuthorIDs)
	if err != nil {
		return nil, err
	}
	categories, err := resolveCategories(ctx, h.categories, cmd.CategoryIDs)
	if err != nil {
		return nil, err
	}

	book := &domain.Book{
		Title:         cmd.Title,
		ISBN:          normalized,
		PublishedDate: cmd.PublishedDate,
		Pages:         cmd.Pages,
		PriceCents:    priceCents,
		Description:   cmd.Description,
		PublisherID:   cmd.PublisherID,
		Authors:       authors,
		Categories:    categories,
	}

	if err := h.books.Create(ctx, book); err != nil {
		return nil, err
	}
	return h.books.FindByID(ctx, book.ID)
}

// resolveAuthors loads the referenced authors and rejects the set when any
// id is unknown or soft-deleted. Duplicate ids collapse to one.
func resolveAuthors(ctx context.Context, repo domain.AuthorRepository, ids []string) ([]domain.Author, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	authors, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(authors) != len(ids) {
		return nil, apperrors.New(apperrors.KindBadRequest, "author_ids contains an id that does not reference an active author")
	}
	return authors, nil
}

func resolveCategories(ctx context.Context, repo domain.CategoryRepository, ids []string) ([]domain.Category, error) {
	ids = dedupe(ids)
	if len(ids) == 0 {
		return nil, nil
	}
	categories, err := repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(categories) != len(ids) {
		return nil, apperrors.New(apperrors.KindBadRequest, "category_ids contains an id that does not reference an active category")
	}
	return categories, nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
