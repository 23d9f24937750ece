package validation

import (
	"math"
	"testing"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/api/request"
)

func validCreate() request.CreateTransactionRequest {
	return request.CreateTransactionRequest{
		Type:     "expense",
		Amount:   5000,
		Category: "food",
		Date:     "2025-06-15",
		Note:     "Almuerzo",
	}
}

func TestValidateCreateTransaction(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		if err := ValidateCreateTransaction(validCreate()); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		req := validCreate()
		req.Type = "transfer"
		if err := ValidateCreateTransaction(req); err == nil {
			t.Error("Expected validation error for unknown type")
		}
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		for _, amount := range []float64{0, -1, -5000} {
			req := validCreate()
			req.Amount = amount
			if err := ValidateCreateTransaction(req); err == nil {
				t.Errorf("Expected validation error for amount %v", amount)
			}
		}
	})

	t.Run("rejects non-finite amounts", func(t *testing.T) {
		for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			req := validCreate()
			req.Amount = amount
			if err := ValidateCreateTransaction(req); err == nil {
				t.Errorf("Expected validation error for amount %v", amount)
			}
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		for _, date := range []string{"", "2025-6-15", "15/06/2025", "2025-13-01"} {
			req := validCreate()
			req.Date = date
			if err := ValidateCreateTransaction(req); err == nil {
				t.Errorf("Expected validation error for date %q", date)
			}
		}
	})

	t.Run("rejects empty category", func(t *testing.T) {
		req := validCreate()
		req.Category = "  "
		if err := ValidateCreateTransaction(req); err == nil {
			t.Error("Expected validation error for empty category")
		}
	})
}

func TestValidateUpsertBudget(t *testing.T) {
	t.Run("accepts a valid request", func(t *testing.T) {
		req := request.UpsertBudgetRequest{Month: "2025-06", Category: "food", Limit: 150000}
		if err := ValidateUpsertBudget(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("accepts a zero limit", func(t *testing.T) {
		req := request.UpsertBudgetRequest{Month: "2025-06", Category: "food", Limit: 0}
		if err := ValidateUpsertBudget(req); err != nil {
			t.Errorf("Expected no error for zero limit, got %v", err)
		}
	})

	t.Run("rejects bad month and negative limit", func(t *testing.T) {
		req := request.UpsertBudgetRequest{Month: "junio", Category: "food", Limit: -1}
		err := ValidateUpsertBudget(req)
		if err == nil {
			t.Fatal("Expected validation error")
		}
		verr, ok := err.(*Error)
		if !ok {
			t.Fatalf("Expected *validation.Error, got %T", err)
		}
		if _, found := verr.Fields["month"]; !found {
			t.Error("Expected a month field error")
		}
		if _, found := verr.Fields["limit"]; !found {
			t.Error("Expected a limit field error")
		}
	})
}

func TestValidateUpsertGoal(t *testing.T) {
	t.Run("accepts a savings goal", func(t *testing.T) {
		req := request.UpsertGoalRequest{Month: "2025-06", Type: "savings", Target: 250000}
		if err := ValidateUpsertGoal(req); err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("rejects unknown goal types", func(t *testing.T) {
		req := request.UpsertGoalRequest{Month: "2025-06", Type: "vacation", Target: 100}
		if err := ValidateUpsertGoal(req); err == nil {
			t.Error("Expected validation error for unknown goal type")
		}
	})
}

func TestValidateMonthKey(t *testing.T) {
	if err := ValidateMonthKey("2025-06"); err != nil {
		t.Errorf("Expected no error for valid month key, got %v", err)
	}
	if err := ValidateMonthKey("2025-6"); err == nil {
		t.Error("Expected error for malformed month key")
	}
}
