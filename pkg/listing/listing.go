// Package listing holds the shared pagination and sorting contract used by
// every list operation: clamped page/limit, an allowlisted multi-key sort
// with a deterministic id tie-break, and the list envelope metadata.
package listing

import (
	"strings"

	"github.com/tair/book-inventory/pkg/apperrors"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page describes a normalized pagination window.
type Page struct {
	Number int
	Limit  int
}

// NewPage clamps raw page/limit values: page >= 1, limit in [1, MaxLimit],
// zero limit falls back to DefaultLimit.
func NewPage(number, limit int) Page {
	if number < 1 {
		number = 1
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Number: number, Limit: limit}
}

// Offset returns the row offset for the window.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// Order is one resolved sort key. Column is the storage column name taken
// from the entity's allowlist, never caller input.
type Order struct {
	Column string
	Desc   bool
}

// ParseSort parses a comma-separated sort parameter ("title,-published_date")
// against an allowlist of api-field -> column. Unknown fields fail with
// VALIDATION_ERROR. An "id" ascending tie-break is always appended so that
// pagination is deterministic; defaultSort applies when param is empty.
func ParseSort(param, defaultSort string, allowed map[string]string) ([]Order, error) {
	if strings.TrimSpace(param) == "" {
		param = defaultSort
	}

	var orders []Order
	for _, f := range strings.Split(param, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		desc := strings.HasPrefix(f, "-")
		key := strings.TrimPrefix(f, "-")
		column, ok := allowed[key]
		if !ok {
			return nil, apperrors.Newf(apperrors.KindValidation, "unsupported sort field: %s", key)
		}
		orders = append(orders, Order{Column: column, Desc: desc})
	}

	orders = append(orders, Order{Column: "id"})
	return orders, nil
}

// Meta is the envelope metadata echoed back with every list result.
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewMeta builds the echo metadata for a page and total count. TotalPages
// rounds up, an empty result has zero pages.
func NewMeta(p Page, total int64) Meta {
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	return Meta{Page: p.Number, Limit: p.Limit, Total: total, TotalPages: pages}
}
