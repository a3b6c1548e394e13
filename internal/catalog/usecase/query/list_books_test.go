package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/listing"
)

// recordingBookRepo captures the query spec the handler builds so tests
// can assert on the translation rather than on storage behavior.
type recordingBookRepo struct {
	lastQuery domain.BookQuery
	books     []domain.Book
	total     int64
}

func (r *recordingBookRepo) Create(context.Context, *domain.Book) error { return nil }

func (r *recordingBookRepo) FindByID(_ context.Context, id string) (*domain.Book, error) {
	for i := range r.books {
		if r.books[i].ID == id {
			return &r.books[i], nil
		}
	}
	return nil, domain.ErrBookNotFound
}

func (r *recordingBookRepo) ISBNExists(context.Context, string, string) (bool, error) {
	return false, nil
}

func (r *recordingBookRepo) Update(context.Context, *domain.Book, domain.BookAssociations) error {
	return nil
}

func (r *recordingBookRepo) Delete(context.Context, string) error { return nil }

func (r *recordingBookRepo) List(_ context.Context, query domain.BookQuery) ([]domain.Book, int64, error) {
	r.lastQuery = query
	return r.books, r.total, nil
}

func TestListBooksDefaults(t *testing.T) {
	repo := &recordingBookRepo{books: []domain.Book{{ID: "b1", Title: "Clean Code"}}, total: 1}
	handler := NewListBooksHandler(repo)

	result, err := handler.Handle(context.Background(), ListBooksQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.lastQuery.Page.Number)
	assert.Equal(t, 20, repo.lastQuery.Page.Limit)
	// Default sort plus the id tie-break.
	require.Len(t, repo.lastQuery.Sort, 2)
	assert.Equal(t, "title", repo.lastQuery.Sort[0].Column)
	assert.False(t, repo.lastQuery.Sort[0].Desc)
	assert.Equal(t, "id", repo.lastQuery.Sort[1].Column)

	assert.Equal(t, int64(1), result.Meta.Total)
	assert.Equal(t, 1, result.Meta.TotalPages)
}

func TestListBooksTranslatesFilters(t *testing.T) {
	repo := &recordingBookRepo{}
	handler := NewListBooksHandler(repo)

	_, err := handler.Handle(context.Background(), ListBooksQuery{
		Page:          2,
		Limit:         10,
		Sort:          "-price,title",
		ISBN:          "978-0-13-235088-4",
		PriceMin:      "9.99",
		PriceMax:      "49.99",
		PublishedFrom: "2008-01-01",
		PublishedTo:   "2008-12-31",
		AuthorID:      "a1",
	})
	require.NoError(t, err)

	q := repo.lastQuery
	assert.Equal(t, "9780132350884", q.ISBN)
	require.NotNil(t, q.PriceMinCents)
	assert.Equal(t, int64(999), *q.PriceMinCents)
	require.NotNil(t, q.PriceMaxCents)
	assert.Equal(t, int64(4999), *q.PriceMaxCents)
	require.NotNil(t, q.PublishedFrom)
	assert.Equal(t, "2008-01-01", q.PublishedFrom.Format("2006-01-02"))
	assert.Equal(t, "a1", q.AuthorID)

	require.Len(t, q.Sort, 3)
	assert.Equal(t, listing.Order{Column: "price_cents", Desc: true}, q.Sort[0])
	assert.Equal(t, listing.Order{Column: "title", Desc: false}, q.Sort[1])
	assert.Equal(t, listing.Order{Column: "id", Desc: false}, q.Sort[2])
}

func TestListBooksAggregatesParseErrors(t *testing.T) {
	handler := NewListBooksHandler(&recordingBookRepo{})

	_, err := handler.Handle(context.Background(), ListBooksQuery{
		Sort:          "quantity",
		ISBN:          "123",
		PriceMin:      "cheap",
		PublishedFrom: "January 2008",
	})

	require.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	details := apperrors.Get(err).Details
	assert.Contains(t, details, "sort")
	assert.Contains(t, details, "isbn")
	assert.Contains(t, details, "price_min")
	assert.Contains(t, details, "published_from")
}

func TestGetBookNotFound(t *testing.T) {
	handler := NewGetBookHandler(&recordingBookRepo{})

	_, err := handler.Handle(context.Background(), GetBookQuery{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}
