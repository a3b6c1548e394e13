// Package money handles prices as fixed-point cents (int64), following the
// convention of storing scale-2 decimals as integers to avoid float drift.
package money

import (
	"fmt"
	"strings"

	"github.com/tair/book-inventory/pkg/apperrors"
)

// ParseCents parses a decimal string such as "19.99" into cents. At most
// two fraction digits are accepted and the value must be >= 0.
func ParseCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, apperrors.New(apperrors.KindValidation, "invalid decimal")
	}
	if s[0] == '-' {
		return 0, apperrors.New(apperrors.KindValidation, "must be greater than or equal to 0")
	}
	if s[0] == '+' {
		s = s[1:]
	}

	whole := s
	frac := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i+1:]
	}
	if whole == "" && frac == "" {
		return 0, apperrors.New(apperrors.KindValidation, "invalid decimal")
	}
	if len(frac) > 2 {
		return 0, apperrors.New(apperrors.KindValidation, "at most two decimal places allowed")
	}

	var cents int64
	for i := 0; i < len(whole); i++ {
		c := whole[i]
		if c < '0' || c > '9' {
			return 0, apperrors.New(apperrors.KindValidation, "invalid decimal")
		}
		cents = cents*10 + int64(c-'0')
		if cents > (1<<62)/100 {
			return 0, apperrors.New(apperrors.KindValidation, "value out of range")
		}
	}
	cents *= 100

	scale := int64(10)
	for i := 0; i < len(frac); i++ {
		c := frac[i]
		if c < '0' || c > '9' {
			return 0, apperrors.New(apperrors.KindValidation, "invalid decimal")
		}
		cents += int64(c-'0') * scale
		scale /= 10
	}
	return cents, nil
}

// FormatCents renders cents as a scale-2 decimal string.
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
