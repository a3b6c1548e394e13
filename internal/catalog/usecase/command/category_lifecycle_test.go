package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
)

func TestCreateCategoryRejectsActiveDuplicateName(t *testing.T) {
	repo := newFakeCategoryRepo()
	handler := NewCreateCategoryHandler(repo)

	_, err := handler.Handle(context.Background(), CreateCategoryCommand{Name: "Software Engineering"})
	require.NoError(t, err)

	_, err = handler.Handle(context.Background(), CreateCategoryCommand{Name: "software engineering"})
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestCreateCategoryAfterSoftDeleteReusesName(t *testing.T) {
	repo := newFakeCategoryRepo()
	create := NewCreateCategoryHandler(repo)
	remove := NewSoftDeleteEntityHandler(newFakeAuthorRepo(), repo, newFakePublisherRepo())

	first, err := create.Handle(context.Background(), CreateCategoryCommand{Name: "Software Engineering"})
	require.NoError(t, err)

	require.NoError(t, remove.Handle(context.Background(), SoftDeleteEntityCommand{Entity: EntityCategory, ID: first.ID}))

	second, err := create.Handle(context.Background(), CreateCategoryCommand{Name: "Software Engineering"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRestoreCategoryBlockedWhenNameReclaimed(t *testing.T) {
	repo := newFakeCategoryRepo()
	create := NewCreateCategoryHandler(repo)
	remove := NewSoftDeleteEntityHandler(newFakeAuthorRepo(), repo, newFakePublisherRepo())
	restore := NewRestoreEntityHandler(newFakeAuthorRepo(), repo, newFakePublisherRepo())

	original, err := create.Handle(context.Background(), CreateCategoryCommand{Name: "Databases"})
	require.NoError(t, err)
	require.NoError(t, remove.Handle(context.Background(), SoftDeleteEntityCommand{Entity: EntityCategory, ID: original.ID}))

	// Someone else takes the name while the original sits deleted.
	_, err = create.Handle(context.Background(), CreateCategoryCommand{Name: "databases"})
	require.NoError(t, err)

	err = restore.Handle(context.Background(), RestoreEntityCommand{Entity: EntityCategory, ID: original.ID})
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)

	// The original stays deleted and invisible to active reads.
	_, err = repo.FindByID(context.Background(), original.ID, false)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestRestoreCategorySucceedsWhenNameFree(t *testing.T) {
	repo := newFakeCategoryRepo()
	create := NewCreateCategoryHandler(repo)
	remove := NewSoftDeleteEntityHandler(newFakeAuthorRepo(), repo, newFakePublisherRepo())
	restore := NewRestoreEntityHandler(newFakeAuthorRepo(), repo, newFakePublisherRepo())

	category, err := create.Handle(context.Background(), CreateCategoryCommand{Name: "Compilers"})
	require.NoError(t, err)
	require.NoError(t, remove.Handle(context.Background(), SoftDeleteEntityCommand{Entity: EntityCategory, ID: category.ID}))

	require.NoError(t, restore.Handle(context.Background(), RestoreEntityCommand{Entity: EntityCategory, ID: category.ID}))

	found, err := repo.FindByID(context.Background(), category.ID, false)
	require.NoError(t, err)
	assert.Equal(t, "Compilers", found.Name)
}

func TestSoftDeleteIsNotIdempotent(t *testing.T) {
	repo := newFakeCategoryRepo()
	create := NewCreateCategoryHandler(repo)
	remove := NewSoftDeleteEntityHandler(newFakeAuthorRepo(), repo, newFakePublisherRepo())

	category, err := create.Handle(context.Background(), CreateCategoryCommand{Name: "Networking"})
	require.NoError(t, err)

	require.NoError(t, remove.Handle(context.Background(), SoftDeleteEntityCommand{Entity: EntityCategory, ID: category.ID}))

	err = remove.Handle(context.Background(), SoftDeleteEntityCommand{Entity: EntityCategory, ID: category.ID})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestRestoreActiveCategoryReportsNotFound(t *testing.T) {
	repo := newFakeCategoryRepo()
	create := NewCreateCategoryHandler(repo)
	restore := NewRestoreEntityHandler(newFakeAuthorRepo(), repo, newFakePublisherRepo())

	category, err := create.Handle(context.Background(), CreateCategoryCommand{Name: "Security"})
	require.NoError(t, err)

	err = restore.Handle(context.Background(), RestoreEntityCommand{Entity: EntityCategory, ID: category.ID})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestUpdateCategoryRenameConflict(t *testing.T) {
	repo := newFakeCategoryRepo()
	create := NewCreateCategoryHandler(repo)
	update := NewUpdateCategoryHandler(repo)

	_, err := create.Handle(context.Background(), CreateCategoryCommand{Name: "Fiction"})
	require.NoError(t, err)
	second, err := create.Handle(context.Background(), CreateCategoryCommand{Name: "Non-Fiction"})
	require.NoError(t, err)

	_, err = update.Handle(context.Background(), UpdateCategoryCommand{ID: second.ID, Name: "FICTION"})
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)
}

func TestUpdateCategoryKeepingOwnNameSucceeds(t *testing.T) {
	repo := newFakeCategoryRepo()
	create := NewCreateCategoryHandler(repo)
	update := NewUpdateCategoryHandler(repo)

	category, err := create.Handle(context.Background(), CreateCategoryCommand{Name: "History"})
	require.NoError(t, err)

	updated, err := update.Handle(context.Background(), UpdateCategoryCommand{ID: category.ID, Name: "History"})
	require.NoError(t, err)
	assert.Equal(t, category.ID, updated.ID)
}

func TestCreateCategoryValidatesName(t *testing.T) {
	handler := NewCreateCategoryHandler(newFakeCategoryRepo())

	_, err := handler.Handle(context.Background(), CreateCategoryCommand{Name: ""})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestSoftDeleteUnknownEntityType(t *testing.T) {
	handler := NewSoftDeleteEntityHandler(newFakeAuthorRepo(), newFakeCategoryRepo(), newFakePublisherRepo())

	err := handler.Handle(context.Background(), SoftDeleteEntityCommand{Entity: "book", ID: "x"})
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
}
