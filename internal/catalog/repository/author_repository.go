package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
)

type GormAuthorRepository struct {
	db *gorm.DB
}

func NewGormAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

func (r *GormAuthorRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Author{})
}

func (r *GormAuthorRepository) Create(ctx context.Context, author *domain.Author) error {
	if err := r.db.WithContext(ctx).Create(author).Error; err != nil {
		return apperrors.Wrap(err, "failed to create author")
	}
	return nil
}

func (r *GormAuthorRepository) FindByID(ctx context.Context, id string, includeDeleted bool) (*domain.Author, error) {
	db := r.db.WithContext(ctx)
	if includeDeleted {
		db = db.Unscoped()
	}
	var author domain.Author
	err := db.First(&author, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAuthorNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to find author")
	}
	return &author, nil
}

func (r *GormAuthorRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Author, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var authors []domain.Author
	if err := r.db.WithContext(ctx).Find(&authors, "id IN ?", ids).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to find authors")
	}
	return authors, nil
}

func (r *GormAuthorRepository) Update(ctx context.Context, author *domain.Author) error {
	if err := r.db.WithContext(ctx).Save(author).Error; err != nil {
		return apperrors.Wrap(err, "failed to update author")
	}
	return nil
}

func (r *GormAuthorRepository) SoftDelete(ctx context.Context, id string) error {
	ok, err := softDelete(r.db.WithContext(ctx), &domain.Author{}, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAuthorNotFound
	}
	return nil
}

func (r *GormAuthorRepository) Restore(ctx context.Context, id string) error {
	ok, err := restore(r.db.WithContext(ctx), &domain.Author{}, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAuthorNotFound
	}
	return nil
}

func (r *GormAuthorRepository) List(ctx context.Context, query domain.NameQuery) ([]domain.Author, int64, error) {
	db := r.db.WithContext(ctx).Model(&domain.Author{}).Scopes(nameListScope(query))

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count authors")
	}

	var authors []domain.Author
	err := db.
		Order(orderClause("authors", query.Sort)).
		Offset(query.Page.Offset()).
		Limit(query.Page.Limit).
		Find(&authors).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list authors")
	}
	return authors, total, nil
}
