package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
)

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) AutoMigrate() error {
	if err := r.db.AutoMigrate(&domain.Category{}); err != nil {
		return err
	}
	// Active-name uniqueness lives in a partial index; AutoMigrate cannot
	// express it.
	return r.db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_active_name
		 ON categories (LOWER(name)) WHERE deleted_at IS NULL`,
	).Error
}

func (r *GormCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	err := r.db.WithContext(ctx).Create(category).Error
	if isDuplicateError(err) {
		return domain.ErrCategoryNameTaken
	}
	if err != nil {
		return apperrors.Wrap(err, "failed to create category")
	}
	return nil
}

func (r *GormCategoryRepository) FindByID(ctx context.Context, id string, includeDeleted bool) (*domain.Category, error) {
	db := r.db.WithContext(ctx)
	if includeDeleted {
		db = db.Unscoped()
	}
	var category domain.Category
	err := db.First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to find category")
	}
	return &category, nil
}

func (r *GormCategoryRepository) FindByIDs(ctx context.Context, ids []string) ([]domain.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var categories []domain.Category
	if err := r.db.WithContext(ctx).Find(&categories, "id IN ?", ids).Error; err != nil {
		return nil, apperrors.Wrap(err, "failed to find categories")
	}
	return categories, nil
}

func (r *GormCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	err := r.db.WithContext(ctx).Save(category).Error
	if isDuplicateError(err) {
		return domain.ErrCategoryNameTaken
	}
	if err != nil {
		return apperrors.Wrap(err, "failed to update category")
	}
	return nil
}

func (r *GormCategoryRepository) SoftDelete(ctx context.Context, id string) error {
	ok, err := softDelete(r.db.WithContext(ctx), &domain.Category{}, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *GormCategoryRepository) Restore(ctx context.Context, id string) error {
	ok, err := restore(r.db.WithContext(ctx), &domain.Category{}, id)
	if err != nil {
		if isDuplicateError(errors.Unwrap(err)) {
			return domain.ErrCategoryNameTaken
		}
		return err
	}
	if !ok {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *GormCategoryRepository) ActiveNameExists(ctx context.Context, name, excludeID string) (bool, error) {
	return activeNameExists(r.db.WithContext(ctx), &domain.Category{}, name, excludeID)
}

func (r *GormCategoryRepository) List(ctx context.Context, query domain.NameQuery) ([]domain.Category, int64, error) {
	db := r.db.WithContext(ctx).Model(&domain.Category{}).Scopes(nameListScope(query))

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count categories")
	}

	var categories []domain.Category
	err := db.
		Order(orderClause("categories", query.Sort)).
		Offset(query.Page.Offset()).
		Limit(query.Page.Limit).
		Find(&categories).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list categories")
	}
	return categories, total, nil
}
