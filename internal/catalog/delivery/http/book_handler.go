package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/book-inventory/internal/catalog/usecase/command"
	"github.com/tair/book-inventory/internal/catalog/usecase/query"
	"github.com/tair/book-inventory/pkg/apperrors"
)

// BookHandler handles HTTP requests for books using CQRS pattern
type BookHandler struct {
	createHandler *command.CreateBookHandler
	updateHandler *command.UpdateBookHandler
	deleteHandler *command.DeleteBookHandler

	getHandler  *query.GetBookHandler
	listHandler *query.ListBooksHandler
}

// NewBookHandler creates a new book handler
func NewBookHandler(
	createHandler *command.CreateBookHandler,
	updateHandler *command.UpdateBookHandler,
	deleteHandler *command.DeleteBookHandler,
	getHandler *query.GetBookHandler,
	listHandler *query.ListBooksHandler,
) *BookHandler {
	return &BookHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

// RegisterRoutes registers book routes. Reads are public, mutations go
// through the admin guard.
func (h *BookHandler) RegisterRoutes(router *mux.Router, requireAdmin Guard) {
	router.HandleFunc("/api/books", h.ListBooks).Methods("GET")
	router.HandleFunc("/api/books/{id}", h.GetBook).Methods("GET")

	router.HandleFunc("/api/books", requireAdmin(h.CreateBook)).Methods("POST")
	router.HandleFunc("/api/books/{id}", requireAdmin(h.UpdateBook)).Methods("PUT")
	router.HandleFunc("/api/books/{id}", requireAdmin(h.DeleteBook)).Methods("DELETE")
}

type bookRequest struct {
	Title         *string  `json:"title"`
	ISBN          *string  `json:"isbn"`
	PublishedDate *string  `json:"published_date"`
	Pages         *int     `json:"pages"`
	Price         *string  `json:"price"`
	Description   *string  `json:"description"`
	PublisherID   *string  `json:"publisher_id"`
	AuthorIDs     []string `json:"author_ids"`
	CategoryIDs   []string `json:"category_ids"`
}

// CreateBook handles POST /api/books
func (h *BookHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   string(apperrors.KindBadRequest),
			Message: "Invalid request body",
		})
		return
	}

	cmd := command.CreateBookCommand{
		Price:       req.Price,
		PublisherID: req.PublisherID,
		AuthorIDs:   req.AuthorIDs,
		CategoryIDs: req.CategoryIDs,
	}
	if req.Title != nil {
		cmd.Title = *req.Title
	}
	if req.ISBN != nil {
		cmd.ISBN = *req.ISBN
	}
	if req.Description != nil {
		cmd.Description = *req.Description
	}
	if req.Pages != nil {
		cmd.Pages = req.Pages
	}
	if req.PublishedDate != nil {
		date, err := time.Parse("2006-01-02", *req.PublishedDate)
		if err != nil {
			respondError(w, r, apperrors.Validation(map[string][]string{
				"published_date": {"must be a date in YYYY-MM-DD format"},
			}))
			return
		}
		cmd.PublishedDate = &date
	}

	book, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Book created successfully",
		Data:    toBookResponse(book),
	})
}

// UpdateBook handles PUT /api/books/{id}. The body is a partial document:
// absent fields stay untouched, explicit nulls clear the nullable ones.
func (h *BookHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var buf bytes.Buffer
	var req bookRequest
	if err := json.NewDecoder(io.TeeReader(r.Body, &buf)).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   string(apperrors.KindBadRequest),
			Message: "Invalid request body",
		})
		return
	}
	var rawFields map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &rawFields); err != nil {
		rawFields = nil
	}

	cmd := command.UpdateBookCommand{
		ID:          id,
		Title:       req.Title,
		ISBN:        req.ISBN,
		Pages:       req.Pages,
		Price:       req.Price,
		Description: req.Description,
		AuthorIDs:   req.AuthorIDs,
		CategoryIDs: req.CategoryIDs,
	}
	cmd.ClearDate = isNull(rawFields, "published_date")
	cmd.ClearPages = isNull(rawFields, "pages")
	cmd.ClearPrice = isNull(rawFields, "price")
	if _, present := rawFields["publisher_id"]; present {
		cmd.SetPublisher = true
		cmd.PublisherID = req.PublisherID
	}
	if req.PublishedDate != nil {
		date, err := time.Parse("2006-01-02", *req.PublishedDate)
		if err != nil {
			respondError(w, r, apperrors.Validation(map[string][]string{
				"published_date": {"must be a date in YYYY-MM-DD format"},
			}))
			return
		}
		cmd.PublishedDate = &date
	}

	book, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Book updated successfully",
		Data:    toBookResponse(book),
	})
}

// DeleteBook handles DELETE /api/books/{id}
func (h *BookHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteBookCommand{ID: id}); err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Book deleted successfully",
	})
}

// GetBook handles GET /api/books/{id}
func (h *BookHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	book, err := h.getHandler.Handle(r.Context(), query.GetBookQuery{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    toBookResponse(book),
	})
}

// ListBooks handles GET /api/books
func (h *BookHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	q := query.ListBooksQuery{
		Page:          page,
		Limit:         limit,
		Sort:          params.Get("sort"),
		AuthorID:      params.Get("author_id"),
		CategoryID:    params.Get("category_id"),
		PublisherID:   params.Get("publisher_id"),
		ISBN:          params.Get("isbn"),
		PriceMin:      params.Get("price_min"),
		PriceMax:      params.Get("price_max"),
		PublishedFrom: params.Get("published_from"),
		PublishedTo:   params.Get("published_to"),
		Search:        params.Get("q"),
	}

	result, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    toBookResponses(result.Books),
		Meta:    &result.Meta,
	})
}

// isNull reports whether a field was present in the body as an explicit
// JSON null.
func isNull(fields map[string]json.RawMessage, key string) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
