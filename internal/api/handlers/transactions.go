package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/api/request"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/api/response"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/insights"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/model"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/service"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/validation"
)

// TransactionHandler handles HTTP requests for ledger endpoints.
// It serves as the HTTP layer adapter, parsing requests and delegating
// state changes to the StateService.
type TransactionHandler struct {
	state *service.StateService
}

// NewTransactionHandler creates a new TransactionHandler with the provided service dependency.
func NewTransactionHandler(state *service.StateService) *TransactionHandler {
	return &TransactionHandler{
		state: state,
	}
}

// AllTransactions handles GET requests to retrieve the full ledger in
// insertion order, newest first.
//
// Endpoint: GET /api/transactions
// Response: 200 OK with array of Transaction
func (h *TransactionHandler) AllTransactions(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.state.Transactions())
}

// MonthTransactions handles GET requests to retrieve the ledger filtered
// to one month, ordered by date descending with insertion order breaking
// ties.
//
// Endpoint: GET /api/transactions/month?month=YYYY-MM
// Response: 200 OK with array of Transaction
// Error: 400 Bad Request if the month key is invalid (validated by middleware)
func (h *TransactionHandler) MonthTransactions(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	respondJSON(w, http.StatusOK, insights.MonthTransactions(h.state.Transactions(), month))
}

// CreateTransaction handles POST requests to record a new transaction.
// Validates the request body and assigns the server-side ID.
//
// Endpoint: POST /api/transactions
// Request Body: CreateTransactionRequest (type, amount, category, date, note)
// Response: 201 Created with Transaction
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.CreateTransactionRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateCreateTransaction(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	tx := h.state.AddTransaction(model.Transaction{
		Type:     model.TransactionType(req.Type),
		Amount:   req.Amount,
		Category: req.Category,
		Date:     req.Date,
		Note:     req.Note,
	})

	response.RespondJSON(w, http.StatusCreated, tx)
}

// DeleteTransaction handles DELETE requests to remove a transaction.
// Deletion is idempotent: removing an ID that is already gone still
// succeeds.
//
// Endpoint: DELETE /api/transactions/{transactionId}
// Response: 204 No Content
// Error: 400 Bad Request if the transaction ID is invalid (validated by middleware)
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "transactionId")

	h.state.DeleteTransaction(id)
	w.WriteHeader(http.StatusNoContent)
}
