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

// GoalHandler handles HTTP requests for savings goal endpoints.
type GoalHandler struct {
	state *service.StateService
}

// NewGoalHandler creates a new GoalHandler with the provided service dependency.
func NewGoalHandler(state *service.StateService) *GoalHandler {
	return &GoalHandler{
		state: state,
	}
}

// AllGoals handles GET requests to retrieve every stored goal.
//
// Endpoint: GET /api/goals
// Response: 200 OK with array of Goal
func (h *GoalHandler) AllGoals(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.state.Goals())
}

// UpsertGoal handles PUT requests to set the savings target for a month.
// An existing goal for the (month, type) key is replaced.
//
// Endpoint: PUT /api/goals
// Request Body: UpsertGoalRequest (month, type, target)
// Response: 200 OK with Goal
// Error: 400 Bad Request if validation fails or request body is invalid
func (h *GoalHandler) UpsertGoal(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.UpsertGoalRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateUpsertGoal(req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	goal := model.Goal{
		Month:  req.Month,
		Type:   model.GoalType(req.Type),
		Target: req.Target,
	}
	h.state.UpsertGoal(goal)

	response.RespondJSON(w, http.StatusOK, goal)
}

// DeleteGoal handles DELETE requests to remove the savings goal for a
// month. Removal is idempotent.
//
// Endpoint: DELETE /api/goals/{month}
// Response: 204 No Content
// Error: 400 Bad Request if the month key is malformed
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	month := chi.URLParam(r, "month")

	if err := validation.ValidateMonthKey(month); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid month format", err.Error())
		return
	}

	h.state.DeleteGoal(month, model.GoalSavings)
	w.WriteHeader(http.StatusNoContent)
}
