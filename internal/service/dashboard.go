package service

import (
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/insights"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/model"
)

// Snapshot is the fully derived view of one month: the filtered ledger,
// totals with prior-month comparison, top-category insight, chart, budget
// rows with alerts, and the goal report.
type Snapshot struct {
	Month        string               `json:"month"`
	Transactions []model.Transaction  `json:"transactions"`
	Totals       insights.Totals      `json:"totals"`
	PrevTotals   insights.Totals      `json:"prev_totals"`
	IncomePct    *float64             `json:"income_pct"`
	ExpensePct   *float64             `json:"expense_pct"`
	Insight      insights.Insight     `json:"insight"`
	Chart        []insights.ChartRow  `json:"chart"`
	BudgetRows   []insights.BudgetRow `json:"budget_rows"`
	Alerts       []insights.Alert     `json:"alerts"`
	Goal         insights.GoalReport  `json:"goal"`
}

// DashboardService assembles snapshots from current state. Results are
// memoized per (state version, month), so repeated reads between
// mutations recompute nothing.
type DashboardService struct {
	state *StateService
	cache *gocache.Cache
}

func NewDashboardService(state *StateService) *DashboardService {
	return &DashboardService{
		state: state,
		cache: gocache.New(5*time.Minute, 10*time.Minute),
	}
}

// Snapshot derives the dashboard view for the given month.
func (s *DashboardService) Snapshot(month string) Snapshot {
	key := fmt.Sprintf("%d|%s", s.state.Version(), month)
	if cached, ok := s.cache.Get(key); ok {
		return cached.(Snapshot)
	}

	txs := s.state.Transactions()
	budgets := s.state.Budgets()
	goals := s.state.Goals()

	prev := model.PrevMonthKey(month)
	totals := insights.MonthTotals(txs, month)
	prevTotals := insights.MonthTotals(txs, prev)

	snap := Snapshot{
		Month:        month,
		Transactions: insights.MonthTransactions(txs, month),
		Totals:       totals,
		PrevTotals:   prevTotals,
		IncomePct:    pctOrNil(totals.Income, prevTotals.Income),
		ExpensePct:   pctOrNil(totals.Expense, prevTotals.Expense),
		Insight:      insights.TopCategories(txs, month),
		Chart:        insights.CategoryChart(txs, month),
		BudgetRows:   insights.BudgetRows(txs, budgets, month),
		Goal:         insights.GoalForMonth(totals.Balance, goals, month),
	}
	snap.Alerts = insights.BudgetAlerts(snap.BudgetRows)

	s.cache.SetDefault(key, snap)
	return snap
}

// pctOrNil maps a suppressed comparison (no meaningful base) to nil so
// renderers can omit the chip entirely.
func pctOrNil(current, previous float64) *float64 {
	pct, ok := insights.PercentChange(current, previous)
	if !ok {
		return nil
	}
	return &pct
}
