package isbn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/book-inventory/pkg/apperrors"
)

func TestNormalizeISBN10(t *testing.T) {
	got, err := Normalize("0-13-235088-2")
	require.NoError(t, err)
	assert.Equal(t, "0132350882", got)

	// Already canonical input stays unchanged.
	again, err := Normalize(got)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestNormalizeISBN10CheckX(t *testing.T) {
	got, err := Normalize("0-439-42089-x")
	require.NoError(t, err)
	assert.Equal(t, "043942089X", got)
}

func TestNormalizeISBN13(t *testing.T) {
	got, err := Normalize("978-0-13-235088-4")
	require.NoError(t, err)
	assert.Equal(t, "9780132350884", got)
}

func TestNormalizeSeparatorsAndSpaces(t *testing.T) {
	got, err := Normalize(" 978 0 13 235088 4 ")
	require.NoError(t, err)
	assert.Equal(t, "9780132350884", got)
}

func TestNormalizeTenAndThirteenStayDistinct(t *testing.T) {
	ten, err := Normalize("0132350882")
	require.NoError(t, err)
	thirteen, err := Normalize("9780132350884")
	require.NoError(t, err)
	assert.NotEqual(t, ten, thirteen)
}

func TestNormalizeRejectsBadChecksum(t *testing.T) {
	for _, raw := range []string{
		"0132350881",     // wrong ISBN-10 check digit
		"9780132350885",  // wrong ISBN-13 check digit
		"978013235088X",  // X not allowed in ISBN-13
	} {
		_, err := Normalize(raw)
		require.Error(t, err, raw)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}
}

func TestNormalizeRejectsBadLength(t *testing.T) {
	for _, raw := range []string{"", "12345", "97801323508844", "abc"} {
		_, err := Normalize(raw)
		require.Error(t, err, raw)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}
}

func TestNormalizeXOnlyValidAsCheckCharacter(t *testing.T) {
	// An X in a non-check position can never satisfy the digit scan.
	_, err := Normalize("X132350882")
	require.Error(t, err)
}

func TestNormalizeRejectsStrayLetters(t *testing.T) {
	// Letters are not separators; padding a valid ISBN with them must
	// fail instead of being cleaned away.
	for _, raw := range []string{"a0132350882z", "01323b50882", "978a0132350884"} {
		_, err := Normalize(raw)
		require.Error(t, err, raw)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}
}
