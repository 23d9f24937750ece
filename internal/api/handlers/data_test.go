package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/model"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/service"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/testutil"
)

func TestDataHandler_SeedDemo(t *testing.T) {
	setupHandler := func(t *testing.T) (*DataHandler, *service.StateService) {
		t.Helper()
		state := testutil.NewTestStateService(t)
		guard := testutil.NewTestClearGuard(t, time.Minute)
		return NewDataHandler(state, guard), state
	}

	t.Run("loads the demo set into the month", func(t *testing.T) {
		handler, state := setupHandler(t)

		req := testutil.NewRequestWithQueryParams(http.MethodPost, "/api/data/seed", map[string]string{"month": "2025-06"})
		w := httptest.NewRecorder()

		handler.SeedDemo(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 6 {
			t.Errorf("Expected 6 demo transactions, got %d", len(response))
		}
		if len(state.Transactions()) != 6 {
			t.Error("Expected ledger to hold the demo set")
		}
	})
}

func TestDataHandler_ClearFlow(t *testing.T) {
	setupHandler := func(t *testing.T) (*DataHandler, *service.StateService) {
		t.Helper()
		state := testutil.NewTestStateService(t)
		guard := testutil.NewTestClearGuard(t, time.Minute)
		return NewDataHandler(state, guard), state
	}

	t.Run("request then confirm clears everything", func(t *testing.T) {
		handler, state := setupHandler(t)
		testutil.NewTransaction().Build(t, state)
		testutil.NewBudget().Build(t, state)
		testutil.NewGoal().Build(t, state)

		reqToken := httptest.NewRequest(http.MethodPost, "/api/data/clear-request", nil)
		wToken := httptest.NewRecorder()
		handler.RequestClear(wToken, reqToken)

		if wToken.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", wToken.Code, wToken.Body.String())
		}

		var tokenResponse ClearTokenResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(wToken.Body).Decode(&tokenResponse)
		if tokenResponse.Token == "" {
			t.Fatal("Expected a confirmation token")
		}

		body, _ := json.Marshal(map[string]string{"token": tokenResponse.Token})
		reqConfirm := httptest.NewRequest(http.MethodPost, "/api/data/clear-confirm", strings.NewReader(string(body)))
		wConfirm := httptest.NewRecorder()
		handler.ConfirmClear(wConfirm, reqConfirm)

		if wConfirm.Code != http.StatusNoContent {
			t.Fatalf("Expected 204, got %d: %s", wConfirm.Code, wConfirm.Body.String())
		}
		if len(state.Transactions()) != 0 || len(state.Budgets()) != 0 || len(state.Goals()) != 0 {
			t.Error("Expected all collections to be empty")
		}
	})

	t.Run("returns 403 for a bad token and keeps state", func(t *testing.T) {
		handler, state := setupHandler(t)
		testutil.NewTransaction().Build(t, state)

		req := httptest.NewRequest(http.MethodPost, "/api/data/clear-confirm", strings.NewReader(`{"token":"garbage"}`))
		w := httptest.NewRecorder()
		handler.ConfirmClear(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("Expected 403, got %d", w.Code)
		}
		if len(state.Transactions()) != 1 {
			t.Error("Expected ledger to be untouched")
		}
	})

	t.Run("returns 400 when the token is missing", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/data/clear-confirm", strings.NewReader(`{}`))
		w := httptest.NewRecorder()
		handler.ConfirmClear(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})
}

func TestDashboardHandler_Snapshot(t *testing.T) {
	setupHandler := func(t *testing.T) (*DashboardHandler, *service.StateService) {
		t.Helper()
		state := testutil.NewTestStateService(t)
		dash := testutil.NewTestDashboardService(t, state)
		return NewDashboardHandler(dash), state
	}

	t.Run("returns the derived view for the month", func(t *testing.T) {
		handler, state := setupHandler(t)

		testutil.NewTransaction().Income().WithAmount(1000).WithDate("2025-06-01").Build(t, state)
		testutil.NewTransaction().WithAmount(400).WithDate("2025-06-10").Build(t, state)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/dashboard", map[string]string{"month": "2025-06"})
		w := httptest.NewRecorder()

		handler.Snapshot(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response service.Snapshot
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Month != "2025-06" {
			t.Errorf("Expected month 2025-06, got %s", response.Month)
		}
		if response.Totals.Balance != 600 {
			t.Errorf("Expected balance 600, got %v", response.Totals.Balance)
		}
		if len(response.Transactions) != 2 {
			t.Errorf("Expected 2 transactions, got %d", len(response.Transactions))
		}
	})
}
