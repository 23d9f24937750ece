package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/api/request"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/api/response"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/model"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/service"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/validation"
)

// BudgetHandler handles HTTP requests for budget limit endpoints.
type BudgetHandler struct {
	state *service.StateService
}

// NewBudgetHandler creates a new BudgetHandler with the provided service dependency.
func NewBudgetHandler(state *service.StateService) *BudgetHandler {
	return &BudgetHandler{
		state: state,
	}
}

// AllBudgets handles GET requests to retrieve every stored budget limit.
//
// Endpoint: GET /api/budgets
// Response: 200 OK with array of BudgetLimit
func (h *BudgetHandler) AllBudgets(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.state.Budgets())
}

// UpsertBudget handles PUT requests to set the limit for a (month,
// category) key. An existing entry for the key is replaced.
//
// Endpoint: PUT /api/budgets
// Request Body: UpsertBudgetRequest (month, category, limit)
// Response: 200 OK with BudgetLimit
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *BudgetHandler) UpsertBudget(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpsertBudgetRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpsertBudget(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	entry := model.BudgetLimit{
		Month:    req.Month,
		Category: req.Category,
		Limit:    req.Limit,
	}
	h.state.UpsertBudget(entry)

	response.RespondJSON(w, http.StatusOK, entry)
}

// DeleteBudget handles DELETE requests to remove the limit for a (month,
// category) key. Removal is idempotent.
//
// Endpoint: DELETE /api/budgets/{month}/{category}
// Response: 204 No Content
// Error: 400 Bad Request if the month key is malformed
func (h *BudgetHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")
	category := chi.URLParam(r, "category")

	if err := validation.ValidateMonthKey(month); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid month format", err.Error())
		return
	}

	h.state.DeleteBudget(month, category)
	w.WriteHeader(http.StatusNoContent)
}
