package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/book-inventory/pkg/apperrors"
)

func TestParseCents(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"19.99", 1999},
		{"0", 0},
		{"0.00", 0},
		{"5", 500},
		{"5.5", 550},
		{".99", 99},
		{"7.", 700},
		{"+12.34", 1234},
		{" 3.10 ", 310},
	}
	for _, c := range cases {
		got, err := ParseCents(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestParseCentsRejects(t *testing.T) {
	for _, in := range []string{"", "-1", "-0.01", "1.999", "abc", "1.2.3", "1,50", "."} {
		_, err := ParseCents(in)
		require.Error(t, err, in)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err), in)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "19.99", FormatCents(1999))
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "12.00", FormatCents(1200))
	assert.Equal(t, "-3.50", FormatCents(-350))
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, in := range []string{"19.99", "0.00", "107.05"} {
		cents, err := ParseCents(in)
		require.NoError(t, err)
		assert.Equal(t, in, FormatCents(cents))
	}
}
