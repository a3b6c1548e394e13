package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/tair/book-inventory/internal/catalog/domain"
	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/listing"
	"github.com/tair/book-inventory/pkg/logger"
	"github.com/tair/book-inventory/pkg/money"
)

// Guard wraps a handler with an authorization check. The user module
// provides the implementations; handlers stay unaware of token mechanics.
type Guard func(http.HandlerFunc) http.HandlerFunc

// Response is the common API envelope
type Response struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    interface{}         `json:"data,omitempty"`
	Meta    *listing.Meta       `json:"meta,omitempty"`
	Error   string              `json:"error,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// respondError maps an error kind onto its HTTP status and writes the
// envelope. Internal causes are logged, never serialized.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := apperrors.Get(err)
	if appErr.Kind == apperrors.KindInternal {
		logger.Error(r.Context()).Err(err).Str("path", r.URL.Path).Msg("Request failed")
	}
	respondJSON(w, statusFor(appErr.Kind), Response{
		Success: false,
		Error:   string(appErr.Kind),
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

func statusFor(kind apperrors.Kind) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusUnprocessableEntity
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	case apperrors.KindBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// bookResponse is the wire shape of a book. Price goes out as a decimal
// string, the cents representation stays internal.
type bookResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	ISBN          string              `json:"isbn"`
	PublishedDate *string             `json:"published_date"`
	Pages         *int                `json:"pages"`
	Quantity      int                 `json:"quantity"`
	Price         *string             `json:"price"`
	Description   string              `json:"description,omitempty"`
	Publisher     *domain.Publisher   `json:"publisher,omitempty"`
	PublisherID   *string             `json:"publisher_id,omitempty"`
	Authors       []domain.Author     `json:"authors"`
	Categories    []domain.Category   `json:"categories"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

func toBookResponse(b *domain.Book) bookResponse {
	resp := bookResponse{
		ID:          b.ID,
		Title:       b.Title,
		ISBN:        b.ISBN,
		Pages:       b.Pages,
		Quantity:    b.Quantity,
		Description: b.Description,
		Publisher:   b.Publisher,
		PublisherID: b.PublisherID,
		Authors:     b.Authors,
		Categories:  b.Categories,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.PublishedDate != nil {
		date := b.PublishedDate.Format("2006-01-02")
		resp.PublishedDate = &date
	}
	if b.PriceCents != nil {
		price := money.FormatCents(*b.PriceCents)
		resp.Price = &price
	}
	if resp.Authors == nil {
		resp.Authors = []domain.Author{}
	}
	if resp.Categories == nil {
		resp.Categories = []domain.Category{}
	}
	return resp
}

func toBookResponses(books []domain.Book) []bookResponse {
	out := make([]bookResponse, 0, len(books))
	for i := range books {
		out = append(out, toBookResponse(&books[i]))
	}
	return out
}
