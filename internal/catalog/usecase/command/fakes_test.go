package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tair/book-inventory/internal/catalog/domain"
)

// In-memory repositories for handler tests. They honor the same contracts
// as the GORM implementations: soft-delete visibility, case-insensitive
// active-name uniqueness, and not-found on absent or wrong-state rows.

func deletedAt() gorm.DeletedAt {
	return gorm.DeletedAt{Time: time.Now(), Valid: true}
}

type fakeAuthorRepo struct {
	items map[string]*domain.Author
	seq   int
}

func newFakeAuthorRepo() *fakeAuthorRepo {
	return &fakeAuthorRepo{items: map[string]*domain.Author{}}
}

func (f *fakeAuthorRepo) nextID() string {
	f.seq++
	return fmt.Sprintf("author-%d", f.seq)
}

func (f *fakeAuthorRepo) Create(_ context.Context, author *domain.Author) error {
	if author.ID == "" {
		author.ID = f.nextID()
	}
	copied := *author
	f.items[author.ID] = &copied
	return nil
}

func (f *fakeAuthorRepo) FindByID(_ context.Context, id string, includeDeleted bool) (*domain.Author, error) {
	a, ok := f.items[id]
	if !ok || (a.DeletedAt.Valid && !includeDeleted) {
		return nil, domain.ErrAuthorNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAuthorRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Author, error) {
	var out []domain.Author
	for _, id := range ids {
		if a, ok := f.items[id]; ok && !a.DeletedAt.Valid {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAuthorRepo) Update(_ context.Context, author *domain.Author) error {
	if _, ok := f.items[author.ID]; !ok {
		return domain.ErrAuthorNotFound
	}
	copied := *author
	f.items[author.ID] = &copied
	return nil
}

func (f *fakeAuthorRepo) SoftDelete(_ context.Context, id string) error {
	a, ok := f.items[id]
	if !ok || a.DeletedAt.Valid {
		return domain.ErrAuthorNotFound
	}
	a.DeletedAt = deletedAt()
	return nil
}

func (f *fakeAuthorRepo) Restore(_ context.Context, id string) error {
	a, ok := f.items[id]
	if !ok || !a.DeletedAt.Valid {
		return domain.ErrAuthorNotFound
	}
	a.DeletedAt = gorm.DeletedAt{}
	return nil
}

func (f *fakeAuthorRepo) List(_ context.Context, _ domain.NameQuery) ([]domain.Author, int64, error) {
	var out []domain.Author
	for _, a := range f.items {
		if !a.DeletedAt.Valid {
			out = append(out, *a)
		}
	}
	return out, int64(len(out)), nil
}

var _ domain.AuthorRepository = (*fakeAuthorRepo)(nil)

type fakeCategoryRepo struct {
	items map[string]*domain.Category
	seq   int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{items: map[string]*domain.Category{}}
}

func (f *fakeCategoryRepo) nextID() string {
	f.seq++
	return fmt.Sprintf("category-%d", f.seq)
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *domain.Category) error {
	if category.ID == "" {
		category.ID = f.nextID()
	}
	copied := *category
	f.items[category.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id string, includeDeleted bool) (*domain.Category, error) {
	c, ok := f.items[id]
	if !ok || (c.DeletedAt.Valid && !includeDeleted) {
		return nil, domain.ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCategoryRepo) FindByIDs(_ context.Context, ids []string) ([]domain.Category, error) {
	var out []domain.Category
	for _, id := range ids {
		if c, ok := f.items[id]; ok && !c.DeletedAt.Valid {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	if _, ok := f.items[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	copied := *category
	f.items[category.ID] = &copied
	return nil
}

func (f *fakeCategoryRepo) SoftDelete(_ context.Context, id string) error {
	c, ok := f.items[id]
	if !ok || c.DeletedAt.Valid {
		return domain.ErrCategoryNotFound
	}
	c.DeletedAt = deletedAt()
	return nil
}

func (f *fakeCategoryRepo) Restore(_ context.Context, id string) error {
	c, ok := f.items[id]
	if !ok || !c.DeletedAt.Valid {
		return domain.ErrCategoryNotFound
	}
	c.DeletedAt = gorm.DeletedAt{}
	return nil
}

func (f *fakeCategoryRepo) ActiveNameExists(_ context.Context, name, excludeID string) (bool, error) {
	for _, c := range f.items {
		if c.ID == excludeID || c.DeletedAt.Valid {
			continue
		}
		if strings.EqualFold(c.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCategoryRepo) List(_ context.Context, _ domain.NameQuery) ([]domain.Category, int64, error) {
	var out []domain.Category
	for _, c := range f.items {
		if !c.DeletedAt.Valid {
			out = append(out, *c)
		}
	}
	return out, int64(len(out)), nil
}

var _ domain.CategoryRepository = (*fakeCategoryRepo)(nil)

type fakePublisherRepo struct {
	items map[string]*domain.Publisher
	seq   int
}

func newFakePublisherRepo() *fakePublisherRepo {
	return &fakePublisherRepo{items: map[string]*domain.Publisher{}}
}

func (f *fakePublisherRepo) nextID() string {
	f.seq++
	return fmt.Sprintf("publisher-%d", f.seq)
}

func (f *fakePublisherRepo) Create(_ context.Context, publisher *domain.Publisher) error {
	if publisher.ID == "" {
		publisher.ID = f.nextID()
	}
	copied := *publisher
	f.items[publisher.ID] = &copied
	return nil
}

func (f *fakePublisherRepo) FindByID(_ context.Context, id string, includeDeleted bool) (*domain.Publisher, error) {
	p, ok := f.items[id]
	if !ok || (p.DeletedAt.Valid && !includeDeleted) {
		return nil, domain.ErrPublisherNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakePublisherRepo) Update(_ context.Context, publisher *domain.Publisher) error {
	if _, ok := f.items[publisher.ID]; !ok {
		return domain.ErrPublisherNotFound
	}
	copied := *publisher
	f.items[publisher.ID] = &copied
	return nil
}

func (f *fakePublisherRepo) SoftDelete(_ context.Context, id string) error {
	p, ok := f.items[id]
	if !ok || p.DeletedAt.Valid {
		return domain.ErrPublisherNotFound
	}
	p.DeletedAt = deletedAt()
	return nil
}

func (f *fakePublisherRepo) Restore(_ context.Context, id string) error {
	p, ok := f.items[id]
	if !ok || !p.DeletedAt.Valid {
		return domain.ErrPublisherNotFound
	}
	p.DeletedAt = gorm.DeletedAt{}
	return nil
}

func (f *fakePublisherRepo) ActiveNameExists(_ context.Context, name, excludeID string) (bool, error) {
	for _, p := range f.items {
		if p.ID == excludeID || p.DeletedAt.Valid {
			continue
		}
		if strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePublisherRepo) List(_ context.Context, _ domain.NameQuery) ([]domain.Publisher, int64, error) {
	var out []domain.Publisher
	for _, p := range f.items {
		if !p.DeletedAt.Valid {
			out = append(out, *p)
		}
	}
	return out, int64(len(out)), nil
}

var _ domain.PublisherRepository = (*fakePublisherRepo)(nil)

type fakeBookRepo struct {
	items map[string]*domain.Book
	seq   int
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{items: map[string]*domain.Book{}}
}

func (f *fakeBookRepo) Create(_ context.Context, book *domain.Book) error {
	if book.ID == "" {
		f.seq++
		book.ID = fmt.Sprintf("book-%d", f.seq)
	}
	copied := *book
	f.items[book.ID] = &copied
	return nil
}

func (f *fakeBookRepo) FindByID(_ context.Context, id string) (*domain.Book, error) {
	b, ok := f.items[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookRepo) ISBNExists(_ context.Context, isbn, excludeID string) (bool, error) {
	for _, b := range f.items {
		if b.ID != excludeID && b.ISBN == isbn {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookRepo) Update(_ context.Context, book *domain.Book, assoc domain.BookAssociations) error {
	existing, ok := f.items[book.ID]
	if !ok {
		return domain.ErrBookNotFound
	}
	copied := *book
	copied.Authors = existing.Authors
	copied.Categories = existing.Categories
	if assoc.Authors != nil {
		copied.Authors = *assoc.Authors
	}
	if assoc.Categories != nil {
		copied.Categories = *assoc.Categories
	}
	f.items[book.ID] = &copied
	return nil
}

func (f *fakeBookRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrBookNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeBookRepo) List(_ context.Context, _ domain.BookQuery) ([]domain.Book, int64, error) {
	var out []domain.Book
	for _, b := range f.items {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

var _ domain.BookRepository = (*fakeBookRepo)(nil)

type fakeTxnCounter struct {
	counts map[string]int64
}

func (f *fakeTxnCounter) CountByBook(_ context.Context, bookID string) (int64, error) {
	return f.counts[bookID], nil
}
