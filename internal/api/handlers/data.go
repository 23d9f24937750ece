package handlers

import (
	"errors"
	"net/http"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/api/request"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/api/response"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/apperrors"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/service"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/validation"
)

// DataHandler handles HTTP requests for bulk data operations: the demo
// seed and the two-step destructive clear.
type DataHandler struct {
	state *service.StateService
	guard *service.ClearGuard
}

// NewDataHandler creates a new DataHandler
func NewDataHandler(state *service.StateService, guard *service.ClearGuard) *DataHandler {
	return &DataHandler{
		state: state,
		guard: guard,
	}
}

// ClearTokenResponse carries the confirmation token for the clear flow.
type ClearTokenResponse struct {
	Token string `json:"token"`
}

// SeedDemo handles POST requests to load the demo transaction set into
// the given month.
//
// Endpoint: POST /api/data/seed?month=YYYY-MM
// Response: 201 Created with array of Transaction
// Error: 400 Bad Request if the month key is invalid (validated by middleware)
func (h *DataHandler) SeedDemo(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	respondJSON(w, http.StatusCreated, h.state.SeedDemo(month))
}

// RequestClear handles POST requests to begin the destructive clear flow.
// The returned token must be echoed back to ConfirmClear within its TTL.
//
// Endpoint: POST /api/data/clear-request
// Response: 200 OK with ClearTokenResponse
// Error: 500 Internal Server Error if token signing fails
func (h *DataHandler) RequestClear(w http.ResponseWriter, _ *http.Request) {
	token, err := h.state.RequestClearAll(h.guard)
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to issue confirmation token", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, ClearTokenResponse{Token: token})
}

// ConfirmClear handles POST requests to complete the destructive clear
// flow. The state is only cleared when the presented token verifies and
// has not expired.
//
// Endpoint: POST /api/data/clear-confirm
// Request Body: ConfirmClearRequest (token)
// Response: 204 No Content
// Error: 400 Bad Request if the request body is invalid or the token is missing
// Error: 403 Forbidden if the token is invalid or expired
func (h *DataHandler) ConfirmClear(w http.ResponseWriter, r *http.Request) {
	req, err := parseJSON[request.ConfirmClearRequest](r)
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.Token == "" {
		response.RespondError(w, http.StatusBadRequest, "validation failed", &validation.Error{
			Fields: map[string]string{"token": "token is required"},
		})
		return
	}

	if err := h.state.ConfirmClearAll(h.guard, req.Token); err != nil {
		if errors.Is(err, apperrors.ErrInvalidConfirmation) {
			response.RespondError(w, http.StatusForbidden, apperrors.ErrInvalidConfirmation.Error(), "")
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to clear data", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
