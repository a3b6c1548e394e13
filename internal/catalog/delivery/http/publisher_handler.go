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

// PublisherHandler handles HTTP requests for publishers
type PublisherHandler struct {
	createHandler  *command.CreatePublisherHandler
	updateHandler  *command.UpdatePublisherHandler
	deleteHandler  *command.SoftDeleteEntityHandler
	restoreHandler *command.RestoreEntityHandler

	getHandler  *query.GetPublisherHandler
	listHandler *query.ListPublishersHandler
}

// NewPublisherHandler creates a new publisher handler
func NewPublisherHandler(
	createHandler *command.CreatePublisherHandler,
	updateHandler *command.UpdatePublisherHandler,
	deleteHandler *command.SoftDeleteEntityHandler,
	restoreHandler *command.RestoreEntityHandler,
	getHandler *query.GetPublisherHandler,
	listHandler *query.ListPublishersHandler,
) *PublisherHandler {
	return &PublisherHandler{
		createHandler:  createHandler,
		updateHandler:  updateHandler,
		deleteHandler:  deleteHandler,
		restoreHandler: restoreHandler,
		getHandler:     getHandler,
		listHandler:    listHandler,
	}
}

// RegisterRoutes registers publisher routes
func (h *PublisherHandler) RegisterRoutes(router *mux.Router, requireAdmin Guard) {
	router.HandleFunc("/api/publishers", h.ListPublishers).Methods("GET")
	router.HandleFunc("/api/publishers/{id}", h.GetPublisher).Methods("GET")

	router.HandleFunc("/api/publishers", requireAdmin(h.CreatePublisher)).Methods("POST")
	router.HandleFunc("/api/publishers/{id}", requireAdmin(h.UpdatePublisher)).Methods("PUT")
	router.HandleFunc("/api/publishers/{id}", requireAdmin(h.DeletePublisher)).Methods("DELETE")
	router.HandleFunc("/api/publishers/{id}/restore", requireAdmin(h.RestorePublisher)).Methods("POST")
}

// CreatePublisher handles POST /api/publishers
func (h *PublisherHandler) CreatePublisher(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   string(apperrors.KindBadRequest),
			Message: "Invalid request body",
		})
		return
	}

	publisher, err := h.createHandler.Handle(r.Context(), command.CreatePublisherCommand{Name: req.Name})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Publisher created successfully",
		Data:    publisher,
	})
}

// UpdatePublisher handles PUT /api/publishers/{id}
func (h *PublisherHandler) UpdatePublisher(w http.ResponseWriter, r *http.Request) {
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

	publisher, err := h.updateHandler.Handle(r.Context(), command.UpdatePublisherCommand{ID: id, Name: req.Name})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Publisher updated successfully",
		Data:    publisher,
	})
}

// DeletePublisher handles DELETE /api/publishers/{id} (soft delete)
func (h *PublisherHandler) DeletePublisher(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.deleteHandler.Handle(r.Context(), command.SoftDeleteEntityCommand{
		Entity: command.EntityPublisher,
		ID:     id,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Publisher deleted successfully",
	})
}

// RestorePublisher handles POST /api/publishers/{id}/restore
func (h *PublisherHandler) RestorePublisher(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	err := h.restoreHandler.Handle(r.Context(), command.RestoreEntityCommand{
		Entity: command.EntityPublisher,
		ID:     id,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Publisher restored successfully",
	})
}

// GetPublisher handles GET /api/publishers/{id}
func (h *PublisherHandler) GetPublisher(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	includeDeleted := r.URL.Query().Get("include_deleted") == "true"

	publisher, err := h.getHandler.Handle(r.Context(), query.GetPublisherQuery{
		ID:             id,
		IncludeDeleted: includeDeleted,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    publisher,
	})
}

// ListPublishers handles GET /api/publishers
func (h *PublisherHandler) ListPublishers(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	result, err := h.listHandler.Handle(r.Context(), query.ListPublishersQuery{
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
		Data:    result.Publishers,
		Meta:    &result.Meta,
	})
}
