package service_test

import (
	"testing"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/insights"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/testutil"
)

// TestDashboardService_Snapshot tests snapshot assembly.
//
// WHY: The snapshot is the single read path for every page; it must filter
// to the requested month, carry prior-month comparisons, and reflect
// mutations immediately despite memoization.
func TestDashboardService_Snapshot(t *testing.T) {
	t.Run("filters transactions to the requested month", func(t *testing.T) {
		state := testutil.NewTestStateService(t)
		dash := testutil.NewTestDashboardService(t, state)

		testutil.NewTransaction().Income().WithAmount(1000).WithDate("2025-06-01").Build(t, state)
		testutil.NewTransaction().WithAmount(400).WithDate("2025-06-10").Build(t, state)
		testutil.NewTransaction().WithAmount(999).WithDate("2025-05-20").Build(t, state)

		snap := dash.Snapshot("2025-06")
		if len(snap.Transactions) != 2 {
			t.Fatalf("Expected 2 transactions in month, got %d", len(snap.Transactions))
		}
		if snap.Totals.Income != 1000 || snap.Totals.Expense != 400 || snap.Totals.Balance != 600 {
			t.Errorf("Unexpected totals: %+v", snap.Totals)
		}
	})

	t.Run("carries prior month totals and percent changes", func(t *testing.T) {
		state := testutil.NewTestStateService(t)
		dash := testutil.NewTestDashboardService(t, state)

		testutil.NewTransaction().WithAmount(100).WithDate("2025-05-10").Build(t, state)
		testutil.NewTransaction().WithAmount(150).WithDate("2025-06-10").Build(t, state)

		snap := dash.Snapshot("2025-06")
		if snap.PrevTotals.Expense != 100 {
			t.Errorf("Expected prior expense 100, got %v", snap.PrevTotals.Expense)
		}
		if snap.ExpensePct == nil || *snap.ExpensePct != 50 {
			t.Errorf("Expected expense change of 50%%, got %v", snap.ExpensePct)
		}
	})

	t.Run("suppresses percent change without a meaningful base", func(t *testing.T) {
		state := testutil.NewTestStateService(t)
		dash := testutil.NewTestDashboardService(t, state)

		testutil.NewTransaction().Income().WithAmount(500).WithDate("2025-06-01").Build(t, state)

		snap := dash.Snapshot("2025-06")
		if snap.IncomePct != nil {
			t.Errorf("Expected suppressed income change, got %v", *snap.IncomePct)
		}
	})

	t.Run("reflects mutations despite memoization", func(t *testing.T) {
		state := testutil.NewTestStateService(t)
		dash := testutil.NewTestDashboardService(t, state)

		first := dash.Snapshot("2025-06")
		if len(first.Transactions) != 0 {
			t.Fatalf("Expected empty snapshot, got %d transactions", len(first.Transactions))
		}

		testutil.NewTransaction().WithDate("2025-06-10").Build(t, state)

		second := dash.Snapshot("2025-06")
		if len(second.Transactions) != 1 {
			t.Errorf("Expected snapshot to reflect the new transaction")
		}
	})

	t.Run("serves identical months from cache between mutations", func(t *testing.T) {
		state := testutil.NewTestStateService(t)
		dash := testutil.NewTestDashboardService(t, state)
		testutil.NewTransaction().WithDate("2025-06-10").Build(t, state)

		a := dash.Snapshot("2025-06")
		b := dash.Snapshot("2025-06")
		if len(a.Transactions) != len(b.Transactions) || a.Totals != b.Totals {
			t.Error("Expected identical snapshots for the same version and month")
		}
	})

	t.Run("assembles budget rows, alerts, and the goal report", func(t *testing.T) {
		state := testutil.NewTestStateService(t)
		dash := testutil.NewTestDashboardService(t, state)

		testutil.NewTransaction().Income().WithAmount(1000).WithDate("2025-06-01").Build(t, state)
		testutil.NewTransaction().WithAmount(450).WithCategory("food").WithDate("2025-06-05").Build(t, state)
		testutil.NewBudget().WithCategory("food").WithLimit(500).Build(t, state)
		testutil.NewGoal().WithTarget(500).Build(t, state)

		snap := dash.Snapshot("2025-06")
		if len(snap.BudgetRows) != 1 || snap.BudgetRows[0].Status != insights.StatusNear {
			t.Errorf("Expected one near-limit budget row, got %+v", snap.BudgetRows)
		}
		if len(snap.Alerts) != 1 || snap.Alerts[0].Kind != insights.AlertWarn {
			t.Errorf("Expected one warn alert, got %+v", snap.Alerts)
		}
		if snap.Goal.Status != insights.GoalDone || snap.Goal.Percent != 100 {
			t.Errorf("Expected goal done at 100%%, got %+v", snap.Goal)
		}
	})
}
