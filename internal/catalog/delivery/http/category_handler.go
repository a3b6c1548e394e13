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

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	createHandler  *command.CreateCategoryHandler
	updateHandler  *command.UpdateCategoryHandler
	deleteHandler  *command.SoftDeleteEntityHandler
	restoreHandler *command.RestoreEntityHandler

	getHandler  *query.GetCategoryHandler
	listHandler *query.ListCategoriesHandler
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(
	createHandler *command.CreateCategoryHandler,
	updateHandler *command.UpdateCategoryHandler,
	deleteHandler *command.SoftDeleteEntityHandler,
	restoreHandler *command.RestoreEntityHandler,
	getHandler *query.GetCategoryHandler,
	listHandler *query.ListCategoriesHandler,
) *CategoryHandler {
	return &CategoryHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		restoreHandler: restoreHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
	}
}

// RegisterRoutes registers category routes
func (h *CategoryHandler) RegisterRoutes(router *mux.Router, requireAdmin Guard) {
	router.HandleFunc("/api/categories", h.ListCategories).Methods("GET")
	router.HandleFunc("/api/categories/{id}", h.GetCategory).Methods("GET")

	router.HandleFunc("/api/categories", requireAdmin(h.CreateCategory)).Methods("POST")
	router.HandleFunc("/api/categories/{id}", requireAdmin(h.UpdateCategory)).Methods("PUT")
	router.HandleFunc("/api/categories/{id}", requireAdmin(h.DeleteCategory)).Methods("DELETE")
	router.HandleFunc("/api/categories/{id}/restore", requireAdmin(h.RestoreCategory)).Methods("POST")
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   string(apperrors.KindBadRequest),
			Message: "Invalid request body",
		})
		return
	}

	category, err := h.createHandler.Handle(r.Context(), command.CreateCategoryCommand{Name: req.Name})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Category created successfully",
		Data:    category,
	})
}

// UpdateCategory handles PUT /api/categories/{id}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
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

	category, err := h.updateHandler.Handle(r.Context(), command.UpdateCategoryCommand{ID: id, Name: req.Name})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category updated successfully",
		Data:    category,
	})
}

// DeleteCategory handles DELETE /api/categories/{id} (soft delete)
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.deleteHandler.Handle(r.Context(), command.SoftDeleteEntityCommand{
		Entity: command.EntityCategory,
		ID:     id,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category deleted successfully",
	})
}

// RestoreCategory handles POST /api/categories/{id}/restore
func (h *CategoryHandler) RestoreCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.restoreHandler.Handle(r.Context(), command.RestoreEntityCommand{
		Entity: command.EntityCategory,
		ID:     id,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Category restored successfully",
	})
}

// GetCategory handles GET /api/categories/{id}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	includeDeleted := r.URL.Query().Get("include_deleted") == "true"

	category, err := h.getHandler.Handle(r.Context(), query.GetCategoryQuery{
		ID:             id,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    category,
	})
}

// ListCategories handles GET /api/categories
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	result, err := h.listHandler.Handle(r.Context(), query.ListCategoriesQuery{
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
		Data:    result.Categories,
		Meta:    &result.Meta,
	})
}
