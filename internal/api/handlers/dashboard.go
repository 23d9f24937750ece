package handlers

import (
	"net/http"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/service"
)

// DashboardHandler handles HTTP requests for the derived month view.
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Snapshot handles GET requests for the full derived view of one month:
// the filtered ledger, totals with prior-month comparison, top-category
// insight, category chart, budget rows with alerts, and the goal report.
//
// Endpoint: GET /api/dashboard?month=YYYY-MM
// Response: 200 OK with Snapshot
// Error: 400 Bad Request if the month key is invalid (validated by middleware)
func (h *DashboardHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")

	respondJSON(w, http.StatusOK, h.dashboardService.Snapshot(month))
}
