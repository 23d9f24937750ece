package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/model"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/service"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/testutil"
)

func TestTransactionHandler_AllTransactions(t *testing.T) {
	setupHandler := func(t *testing.T) (*TransactionHandler, *service.StateService) {
		t.Helper()
		state := testutil.NewTestStateService(t)
		return NewTransactionHandler(state), state
	}

	t.Run("returns empty array when no transactions exist", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
		w := httptest.NewRecorder()

		handler.AllTransactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response == nil {
			t.Error("Expected non-nil array, got nil")
		}
		if len(response) != 0 {
			t.Errorf("Expected empty array, got %d transactions", len(response))
		}
	})

	t.Run("returns all transactions successfully", func(t *testing.T) {
		handler, state := setupHandler(t)

		tx1 := testutil.NewTransaction().Build(t, state)
		tx2 := testutil.NewTransaction().Build(t, state)

		req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
		w := httptest.NewRecorder()

		handler.AllTransactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(response))
		}

		found := make(map[string]bool)
		for _, tx := range response {
			found[tx.ID] = true
		}
		if !found[tx1.ID] || !found[tx2.ID] {
			t.Error("Expected both transactions in response")
		}
	})
}

func TestTransactionHandler_MonthTransactions(t *testing.T) {
	setupHandler := func(t *testing.T) (*TransactionHandler, *service.StateService) {
		t.Helper()
		state := testutil.NewTestStateService(t)
		return NewTransactionHandler(state), state
	}

	t.Run("filters to the requested month and orders by date descending", func(t *testing.T) {
		handler, state := setupHandler(t)

		testutil.NewTransaction().WithDate("2025-06-05").WithNote("early").Build(t, state)
		testutil.NewTransaction().WithDate("2025-06-20").WithNote("late").Build(t, state)
		testutil.NewTransaction().WithDate("2025-05-31").WithNote("other month").Build(t, state)

		req := testutil.NewRequestWithQueryParams(http.MethodGet, "/api/transactions/month", map[string]string{"month": "2025-06"})
		w := httptest.NewRecorder()

		handler.MonthTransactions(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var response []model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if len(response) != 2 {
			t.Fatalf("Expected 2 transactions, got %d", len(response))
		}
		if response[0].Note != "late" || response[1].Note != "early" {
			t.Errorf("Expected newest date first, got [%s, %s]", response[0].Note, response[1].Note)
		}
	})
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	setupHandler := func(t *testing.T) (*TransactionHandler, *service.StateService) {
		t.Helper()
		state := testutil.NewTestStateService(t)
		return NewTransactionHandler(state), state
	}

	t.Run("creates a transaction and assigns an ID", func(t *testing.T) {
		handler, state := setupHandler(t)

		body := `{"type":"expense","amount":5000,"category":"food","date":"2025-06-15","note":"Almuerzo"}`
		req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var response model.Transaction
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.ID == "" {
			t.Error("Expected server-assigned ID")
		}
		if response.Amount != 5000 || response.Category != "food" {
			t.Errorf("Unexpected transaction: %+v", response)
		}
		if len(state.Transactions()) != 1 {
			t.Error("Expected transaction to be recorded")
		}
	})

	t.Run("returns 400 for invalid JSON", func(t *testing.T) {
		handler, _ := setupHandler(t)

		req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader("{bad"))
		w := httptest.NewRecorder()

		handler.CreateTransaction(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", w.Code)
		}
	})

	t.Run("returns 400 when validation fails", func(t *testing.T) {
		handler, state := setupHandler(t)

		cases := []string{
			`{"type":"transfer","amount":10,"category":"food","date":"2025-06-15"}`,
			`{"type":"expense","amount":0,"category":"food","date":"2025-06-15"}`,
			`{"type":"expense","amount":-5,"category":"food","date":"2025-06-15"}`,
			`{"type":"expense","amount":10,"category":"","date":"2025-06-15"}`,
			`{"type":"expense","amount":10,"category":"food","date":"15-06-2025"}`,
		}
		for _, body := range cases {
			req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
			w := httptest.NewRecorder()

			handler.CreateTransaction(w, req)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400 for %s, got %d", body, w.Code)
			}
		}
		if len(state.Transactions()) != 0 {
			t.Error("Expected no transactions recorded from invalid requests")
		}
	})
}

func TestTransactionHandler_DeleteTransaction(t *testing.T) {
	setupHandler := func(t *testing.T) (*TransactionHandler, *service.StateService) {
		t.Helper()
		state := testutil.NewTestStateService(t)
		return NewTransactionHandler(state), state
	}

	t.Run("deletes an existing transaction", func(t *testing.T) {
		handler, state := setupHandler(t)
		tx := testutil.NewTransaction().Build(t, state)

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/transactions/"+tx.ID,
			map[string]string{"transactionId": tx.ID},
		)
		w := httptest.NewRecorder()

		handler.DeleteTransaction(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d", w.Code)
		}
		if len(state.Transactions()) != 0 {
			t.Error("Expected transaction to be removed")
		}
	})

	t.Run("returns 204 for an absent ID", func(t *testing.T) {
		handler, _ := setupHandler(t)
		id := testutil.MakeID()

		req := testutil.NewRequestWithURLParams(
			http.MethodDelete,
			"/api/transactions/"+id,
			map[string]string{"transactionId": id},
		)
		w := httptest.NewRecorder()

		handler.DeleteTransaction(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected 204, got %d", w.Code)
		}
	})
}
