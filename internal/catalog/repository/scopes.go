package repository

import (
	"strings"

	"gorm.io/gorm"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
)

// nameListScope applies the shared NameQuery predicates: soft-delete
// visibility and the case-insensitive name search.
func nameListScope(query domain.NameQuery) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if query.IncludeDeleted {
			db = db.Unscoped()
		}
		if q := strings.TrimSpace(query.Search); q != "" {
			db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
		}
		return db
	}
}

// activeNameExists checks case-insensitive name uniqueness among active
// rows of the model's table.
func activeNameExists(db *gorm.DB, model interface{}, name, excludeID string) (bool, error) {
	q := db.Model(model).Where("LOWER(name) = ?", strings.ToLower(strings.TrimSpace(name)))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "failed to check name uniqueness")
	}
	return count > 0, nil
}

// softDelete marks an active row deleted; zero rows affected means the row
// is absent or already deleted.
func softDelete(db *gorm.DB, model interface{}, id string) (bool, error) {
	res := db.Delete(model, "id = ?", id)
	if res.Error != nil {
		return false, apperrors.Wrap(res.Error, "failed to soft-delete")
	}
	return res.RowsAffected > 0, nil
}

// restore clears deleted_at on a soft-deleted row; zero rows affected
// means the row is absent or already active.
func restore(db *gorm.DB, model interface{}, id string) (bool, error) {
	res := db.Unscoped().Model(model).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return false, apperrors.Wrap(res.Error, "failed to restore")
	}
	return res.RowsAffected > 0, nil
}
