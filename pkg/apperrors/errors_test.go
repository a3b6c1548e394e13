package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelComparison(t *testing.T) {
	sentinel := New(KindNotFound, "book not found")
	returned := New(KindNotFound, "book not found")

	assert.True(t, errors.Is(returned, sentinel))
	assert.False(t, errors.Is(New(KindNotFound, "author not found"), sentinel))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(cause, "failed to create book")

	assert.Equal(t, KindInternal, KindOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to create book")
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(fmt.Errorf("plain")))
}

func TestGetWrapsForeignError(t *testing.T) {
	appErr := Get(fmt.Errorf("plain"))
	assert.Equal(t, KindInternal, appErr.Kind)
}

func TestFieldErrorsAggregation(t *testing.T) {
	fields := FieldErrors{}
	fields.Add("title", "title is required")
	fields.Add("isbn", "invalid ISBN-10 or ISBN-13")
	fields.Add("isbn", "another problem")

	err := fields.Err()
	require.Error(t, err)

	appErr := Get(err)
	assert.Equal(t, KindValidation, appErr.Kind)
	assert.Equal(t, []string{"title is required"}, appErr.Details["title"])
	assert.Len(t, appErr.Details["isbn"], 2)
}

func TestFieldErrorsEmptyIsNil(t *testing.T) {
	fields := FieldErrors{}
	assert.NoError(t, fields.Err())
}

func TestFieldErrorsMergeFlattensAppError(t *testing.T) {
	inner := Validation(map[string][]string{"whatever": {"must be a date"}})

	fields := FieldErrors{}
	fields.Merge("published_from", inner)
	fields.Merge("sort", New(KindValidation, "unsupported sort field: rating"))
	fields.Merge("note", nil)

	appErr := Get(fields.Err())
	assert.Equal(t, []string{"must be a date"}, appErr.Details["published_from"])
	assert.Equal(t, []string{"unsupported sort field: rating"}, appErr.Details["sort"])
	assert.NotContains(t, appErr.Details, "note")
}
