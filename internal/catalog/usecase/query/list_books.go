package query

import (
	"context"
	"time"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/isbn"
	"github.com/tair/book-inventory/pkg/listing"
	"github.com/tair/book-inventory/pkg/money"
)

const dateLayout = "2006-01-02"

// ListBooksQuery represents the query to list books. Filter values arrive
// as the raw query-string text; parsing failures aggregate into one
// validation error.
type ListBooksQuery struct {
	Page          int
	Limit         int
	Sort          string
	AuthorID      string
	CategoryID    string
	PublisherID   string
	ISBN          string
	PriceMin      string
	PriceMax      string
	PublishedFrom string
	PublishedTo   string
	Search        string
}

// ListBooksResult carries one page of books with pagination metadata
type ListBooksResult struct {
	Books []domain.Book
	Meta  listing.Meta
}

// ListBooksHandler handles list books query
type ListBooksHandler struct {
	repo domain.BookRepository
}

// NewListBooksHandler creates a new list books handler
func NewListBooksHandler(repo domain.BookRepository) *ListBooksHandler {
	return &ListBooksHandler{repo: repo}
}

// Handle executes the list books query
func (h *ListBooksHandler) Handle(ctx context.Context, q ListBooksQuery) (*ListBooksResult, error) {
	fields := apperrors.FieldErrors{}

	sort, err := listing.ParseSort(q.Sort, "title", domain.BookSortFields)
	if err != nil {
		fields.Merge("sort", err)
	}

	spec := domain.BookQuery{
		Page:        listing.NewPage(q.Page, q.Limit),
		Sort:        sort,
		AuthorID:    q.AuthorID,
		CategoryID:  q.CategoryID,
		PublisherID: q.PublisherID,
		Search:      q.Search,
	}

	if q.ISBN != "" {
		normalized, err := isbn.Normalize(q.ISBN)
		if err != nil {
			fields.Merge("isbn", err)
		} else {
			spec.ISBN = normalized
		}
	}
	if q.PriceMin != "" {
		cents, err := money.ParseCents(q.PriceMin)
		if err != nil {
			fields.Merge("price_min", err)
		} else {
			spec.PriceMinCents = &cents
		}
	}
	if q.PriceMax != "" {
		cents, err := money.ParseCents(q.PriceMax)
		if err != nil {
			fields.Merge("price_max", err)
		} else {
			spec.PriceMaxCents = &cents
		}
	}
	if q.PublishedFrom != "" {
		from, err := time.Parse(dateLayout, q.PublishedFrom)
		if err != nil {
			fields.Add("published_from", "must be a date in YYYY-MM-DD format")
		} else {
			spec.PublishedFrom = &from
		}
	}
	if q.PublishedTo != "" {
		to, err := time.Parse(dateLayout, q.PublishedTo)
		if err != nil {
			fields.Add("published_to", "must be a date in YYYY-MM-DD format")
		} else {
			spec.PublishedTo = &to
		}
	}

	if err := fields.Err(); err != nil {
		return nil, err
	}

	books, total, err := h.repo.List(ctx, spec)
	if err != nil {
		return nil, err
	}
	return &ListBooksResult{
		Books: books,
		Meta:  listing.NewMeta(spec.Page, total),
	}, nil
}
