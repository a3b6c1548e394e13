package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/book-inventory/internal/inventory/usecase/command"
	"github.com/tair/book-inventory/internal/inventory/usecase/query"
	"github.com/tair/book-inventory/pkg/apperrors"
	"github.com/tair/book-inventory/pkg/listing"
	"github.com/tair/book-inventory/pkg/logger"
)

// Guard wraps a handler with an authorization check.
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

// TransactionHandler handles HTTP requests for the inventory ledger
type TransactionHandler struct {
	recordHandler *command.RecordTransactionHandler
	getHandler    *query.GetTransactionHandler
	listHandler   *query.ListTransactionsHandler
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(
	recordHandler *command.RecordTransactionHandler,
	getHandler *query.GetTransactionHandler,
	listHandler *query.ListTransactionsHandler,
) *TransactionHandler {
	return &TransactionHandler{
		recordHandler: recordHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
	}
}

// RegisterRoutes registers ledger routes. Appending requires an
// authenticated staff account; reads are public.
func (h *TransactionHandler) RegisterRoutes(router *mux.Router, requireAdmin Guard) {
	router.HandleFunc("/api/inventory/transactions", h.ListTransactions).Methods("GET")
	router.HandleFunc("/api/inventory/transactions/{id}", h.GetTransaction).Methods("GET")

	router.HandleFunc("/api/inventory/transactions", requireAdmin(h.RecordTransaction)).Methods("POST")
}

// RecordTransaction handles POST /api/inventory/transactions
func (h *TransactionHandler) RecordTransaction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BookID        string `json:"book_id"`
		DeltaQuantity int    `json:"delta_quantity"`
		Reason        string `json:"reason"`
		Note          string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   string(apperrors.KindBadRequest),
			Message: "Invalid request body",
		})
		return
	}

	entry, err := h.recordHandler.Handle(r.Context(), command.RecordTransactionCommand{
		BookID: req.BookID,
		Delta:  req.DeltaQuantity,
		Reason: req.Reason,
		Note:   req.Note,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Transaction recorded successfully",
		Data:    entry,
	})
}

// GetTransaction handles GET /api/inventory/transactions/{id}
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	entry, err := h.getHandler.Handle(r.Context(), query.GetTransactionQuery{ID: id})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    entry,
	})
}

// ListTransactions handles GET /api/inventory/transactions
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	page, _ := strconv.Atoi(params.Get("page"))
	limit, _ := strconv.Atoi(params.Get("limit"))

	result, err := h.listHandler.Handle(r.Context(), query.ListTransactionsQuery{
		Page:        page,
		Limit:       limit,
		Sort:        params.Get("sort"),
		BookID:      params.Get("book_id"),
		Reason:      params.Get("reason"),
		CreatedFrom: params.Get("created_from"),
		CreatedTo:   params.Get("created_to"),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    result.Transactions,
		Meta:    &result.Meta,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

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
