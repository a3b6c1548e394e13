package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
)

type GormPublisherRepository struct {
	db *gorm.DB
}

func NewGormPublisherRepository(db *gorm.DB) *GormPublisherRepository {
	return &GormPublisherRepository{db: db}
}

func (r *GormPublisherRepository) AutoMigrate() error {
	if err := r.db.AutoMigrate(&domain.Publisher{}); err != nil {
		return err
	}
	return r.db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_publishers_active_name
		 ON publishers (LOWER(name)) WHERE deleted_at IS NULL`,
	).Error
}

func (r *GormPublisherRepository) Create(ctx context.Context, publisher *domain.Publisher) error {
	err := r.db.WithContext(ctx).Create(publisher).Error
	if isDuplicateError(err) {
		return domain.ErrPublisherNameTaken
	}
	if err != nil {
		return apperrors.Wrap(err, "failed to create publisher")
	}
	return nil
}

func (r *GormPublisherRepository) FindByID(ctx context.Context, id string, includeDeleted bool) (*domain.Publisher, error) {
	db := r.db.WithContext(ctx)
	if includeDeleted {
		db = db.Unscoped()
	}
	var publisher domain.Publisher
	err := db.First(&publisher, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrPublisherNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to find publisher")
	}
	return &publisher, nil
}

func (r *GormPublisherRepository) Update(ctx context.Context, publisher *domain.Publisher) error {
	err := r.db.WithContext(ctx).Save(publisher).Error
	if isDuplicateError(err) {
		return domain.ErrPublisherNameTaken
	}
	if err != nil {
		return apperrors.Wrap(err, "failed to update publisher")
	}
	return nil
}

func (r *GormPublisherRepository) SoftDelete(ctx context.Context, id string) error {
	ok, err := softDelete(r.db.WithContext(ctx), &domain.Publisher{}, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrPublisherNotFound
	}
	return nil
}

func (r *GormPublisherRepository) Restore(ctx context.Context, id string) error {
	ok, err := restore(r.db.WithContext(ctx), &domain.Publisher{}, id)
	if err != nil {
		if isDuplicateError(errors.Unwrap(err)) {
			return domain.ErrPublisherNameTaken
		}
		return err
	}
	if !ok {
		return domain.ErrPublisherNotFound
	}
	return nil
}

func (r *GormPublisherRepository) ActiveNameExists(ctx context.Context, name, excludeID string) (bool, error) {
	return activeNameExists(r.db.WithContext(ctx), &domain.Publisher{}, name, excludeID)
}

func (r *GormPublisherRepository) List(ctx context.Context, query domain.NameQuery) ([]domain.Publisher, int64, error) {
	db := r.db.WithContext(ctx).Model(&domain.Publisher{}).Scopes(nameListScope(query))

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to count publishers")
	}

	var publishers []domain.Publisher
	err := db.
		Order(orderClause("publishers", query.Sort)).
		Offset(query.Page.Offset()).
		Limit(query.Page.Limit).
		Find(&publishers).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "failed to list publishers")
	}
	return publishers, total, nil
}
