// Package isbn normalizes and validates ISBN-10 and ISBN-13 identifiers.
//
// Normalization strips separators and uppercases the ISBN-10 check
// character, so "0-13-235088-2" and "0132350882" map to the same stored
// key. An ISBN-10 and its ISBN-13 form are deliberately kept distinct;
// there is no cross-conversion.
package isbn

import (
	"github.com/tair/book-inventory/pkg/apperrors"
)

var errInvalid = apperrors.New(apperrors.KindValidation, "invalid ISBN-10 or ISBN-13")

// Normalize strips separators, uppercases, validates the checksum, and
// returns the canonical digit string. Letters are kept during the strip so
// malformed input fails validation instead of being silently cleaned; the
// only letter that can survive validation is a check-position 'X'.
func Normalize(raw string) (string, error) {
	if raw == "" {
		return "", apperrors.New(apperrors.KindValidation, "ISBN is required")
	}

	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c >= '0' && c <= '9':
			digits = append(digits, c)
		case c >= 'a' && c <= 'z':
			digits = append(digits, c-'a'+'A')
		case c >= 'A' && c <= 'Z':
			digits = append(digits, c)
		}
	}

	s := string(digits)
	switch len(s) {
	case 10:
		if !validISBN10(s) {
			return "", errInvalid
		}
	case 13:
		if !validISBN13(s) {
			return "", errInvalid
		}
	default:
		return "", errInvalid
	}
	return s, nil
}

// validISBN10 checks the weighted-sum-mod-11 checksum. Position weights run
// 1..9 over the first nine digits; the check character contributes its
// value times 10, with 'X' standing for 10.
func validISBN10(s string) bool {
	total := 0
	for i := 0; i < 9; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		total += int(c-'0') * (i + 1)
	}
	switch check := s[9]; {
	case check == 'X':
		total += 10 * 10
	case check >= '0' && check <= '9':
		total += int(check-'0') * 10
	default:
		return false
	}
	return total%11 == 0
}

// validISBN13 checks the alternating 1/3 weighted sum mod 10.
func validISBN13(s string) bool {
	total := 0
	for i := 0; i < 12; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		factor := 1
		if i%2 == 1 {
			factor = 3
		}
		total += int(c-'0') * factor
	}
	last := s[12]
	if last < '0' || last > '9' {
		return false
	}
	return (10-total%10)%10 == int(last-'0')
}
