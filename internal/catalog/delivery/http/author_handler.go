package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/book-inventory/internal/catalog/usecase/command"
	"github.com/tair/book-inventory/internal/catalog/usecase/query"
	"github.com/tair/book-inventory/pkg/apperrors"
)

// AuthorHandler handles HTTP requests for authors
type AuthorHandler struct {
	createHandler  *command.CreateAuthorHandler
	updateHandler  *command.UpdateAuthorHandler
	deleteHandler  *command.SoftDeleteEntityHandler
	restoreHandler *command.RestoreEntityHandler

	getHandler  *query.GetAuthorHandler
	listHandler *query.ListAuthorsHandler
}

// NewAuthorHandler creates a new author handler
func NewAuthorHandler(
	createHandler *command.CreateAuthorHandler,
	updateHandler *command.UpdateAuthorHandler,
	deleteHandler *command.SoftDeleteEntityHandler,
	restoreHandler *command.RestoreEntityHandler,
	getHandler *query.GetAuthorHandler,
	listHandler *query.ListAuthorsHandler,
) *AuthorHandler {
	return &AuthorHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		restoreHandler: restoreHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
	}
}

// RegisterRoutes registers author routes
func (h *AuthorHandler) RegisterRoutes(router *mux.Router, requireAdmin Guard) {
	router.HandleFunc("/api/authors", h.ListAuthors).Methods("GET")
	router.HandleFunc("/api/authors/{id}", h.GetAuthor).Methods("GET")

	router.HandleFunc("/api/authors", requireAdmin(h.CreateAuthor)).Methods("POST")
	router.HandleFunc("/api/authors/{id}", requireAdmin(h.UpdateAuthor)).Methods("PUT")
	router.HandleFunc("/api/authors/{id}", requireAdmin(h.DeleteAuthor)).Methods("DELETE")
	router.HandleFunc("/api/authors/{id}/restore", requireAdmin(h.RestoreAuthor)).Methods("POST")
}

type nameRequest struct {
	Name string `json:"name"`
}

// CreateAuthor handles POST /api/authors
func (h *AuthorHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   string(apperrors.KindBadRequest),
			Message: "Invalid request body",
		})
		return
	}

	author, err := h.createHandler.Handle(r.Context(), command.CreateAuthorCommand{Name: req.Name})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Author created successfully",
		Data:    author,
	})
}

// UpdateAuthor handles PUT /api/authors/{id}
func (h *AuthorHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   string(apperrors.KindBadRequest),
			Message: "Invalid request body",
		})
		return
	}

	author, err := h.updateHandler.Handle(r.Context(), command.UpdateAuthorCommand{ID: id, Name: req.Name})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Author updated successfully",
		Data:    author,
	})
}

// DeleteAuthor handles DELETE /api/authors/{id} (soft delete)
func (h *AuthorHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.deleteHandler.Handle(r.Context(), command.SoftDeleteEntityCommand{
		Entity: command.EntityAuthor,
		ID:     id,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Author deleted successfully",
	})
}

// RestoreAuthor handles POST /api/authors/{id}/restore
func (h *AuthorHandler) RestoreAuthor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.restoreHandler.Handle(r.Context(), command.RestoreEntityCommand{
		Entity: command.EntityAuthor,
		ID:     id,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Author restored successfully",
	})
}

// GetAuthor handles GET /api/authors/{id}
func (h *AuthorHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	includeDeleted := r.URL.Query().Get("include_deleted") == "true"

	author, err := h.getHandler.Handle(r.Context(), query.GetAuthorQuery{
		ID:             id,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    author,
	})
}

// ListAuthors handles GET /api/authors
func (h *AuthorHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	result, err := h.listHandler.Handle(r.Context(), query.ListAuthorsQuery{
		Page:           page,
		Limit:          limit,
		Sort:           params.Get("sort"),
		Search:         params.Get("q"),
		IncludeDeleted: params.Get("include_deleted") == "true",
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result.Authors,
		Meta:    &result.Meta,
	})
}
