// Package insights is the derived-state engine: pure functions from the
// ledger, budget limits and goals to display-ready structures. Every function
// is deterministic for identical inputs and safe to recompute on every
// request; callers decide whether to memoize.
package insights

import (
	"math"
	"sort"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/model"
)

// Totals is the income/expense/balance summary for one month.
type Totals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// Direction classifies a category's month-over-month movement.
type Direction string

const (
	DirectionNew  Direction = "new"  // no spend in the prior month
	DirectionFlat Direction = "flat" // delta exactly zero
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// InsightRow is one entry of the top-category ranking.
type InsightRow struct {
	Category  string    `json:"category"`
	Label     string    `json:"label"`
	Amount    float64   `json:"amount"`
	Delta     float64   `json:"delta"`
	Direction Direction `json:"direction"`
}

// Insight is the top-category ranking with an explicit empty-state signal so
// the presentation can distinguish "no data" from "no rows yet".
type Insight struct {
	Rows  []InsightRow `json:"rows"`
	Empty bool         `json:"empty"`
}

// BudgetStatus classifies one category's spend against its limit.
type BudgetStatus string

const (
	StatusOver   BudgetStatus = "over"
	StatusNear   BudgetStatus = "near"
	StatusWithin BudgetStatus = "within"
	StatusNone   BudgetStatus = "none" // no limit defined
)

var statusRank = map[BudgetStatus]int{
	StatusOver: 0, StatusNear: 1, StatusWithin: 2, StatusNone: 3,
}

// BudgetRow is the per-category budget standing for one month.
type BudgetRow struct {
	Category  string       `json:"category"`
	Label     string       `json:"label"`
	Spent     float64      `json:"spent"`
	Limit     float64      `json:"limit"`
	Remaining float64      `json:"remaining"`
	Ratio     float64      `json:"ratio"`
	Status    BudgetStatus `json:"status"`
	HasLimit  bool         `json:"hasLimit"`
}

// AlertKind is the severity of a budget alert.
type AlertKind string

const (
	AlertDanger AlertKind = "danger"
	AlertWarn   AlertKind = "warn"
	AlertOK     AlertKind = "ok"
)

var alertRank = map[AlertKind]int{AlertDanger: 0, AlertWarn: 1, AlertOK: 2}

// maxAlerts caps the alert list to the most relevant entries.
const maxAlerts = 4

// Alert is a severity-classified budget notice for one category.
type Alert struct {
	Kind     AlertKind `json:"kind"`
	Category string    `json:"category"`
	Label    string    `json:"label"`
	Spent    float64   `json:"spent"`
	Limit    float64   `json:"limit"`
	Ratio    float64   `json:"ratio"`
}

// GoalStatus classifies progress toward the monthly savings goal.
type GoalStatus string

const (
	GoalDone     GoalStatus = "done"
	GoalNear     GoalStatus = "near"
	GoalProgress GoalStatus = "progress"
	GoalNone     GoalStatus = "none" // no goal defined or target is zero
)

// GoalReport is the savings-goal standing for one month.
type GoalReport struct {
	Target    float64    `json:"target"`
	Balance   float64    `json:"balance"`
	Remaining float64    `json:"remaining"`
	Ratio     float64    `json:"ratio"`
	Percent   int        `json:"percent"` // clamp01(ratio) rounded, always 0..100
	Status    GoalStatus `json:"status"`
}

// ChartRow is one bar of the expense-by-category chart.
type ChartRow struct {
	Category string  `json:"category"`
	Label    string  `json:"label"`
	Amount   float64 `json:"amount"`
	Percent  float64 `json:"percent"` // share of the charted total
}

// MonthTransactions returns the transactions of the given month in display
// order: date descending, insertion order breaking same-day ties. The ledger
// prepends new entries, so a stable sort keeps the most recently added entry
// first among equals.
func MonthTransactions(txs []model.Transaction, month string) []model.Transaction {
	out := make([]model.Transaction, 0)
	for _, t := range txs {
		if t.InMonth(month) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

// MonthTotals sums the month's income and expense amounts independently and
// derives the balance.
func MonthTotals(txs []model.Transaction, month string) Totals {
	var totals Totals
	for _, t := range txs {
		if !t.InMonth(month) {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			totals.Income += t.Amount
		case model.TypeExpense:
			totals.Expense += t.Amount
		}
	}
	totals.Balance = totals.Income - totals.Expense
	return totals
}

// PercentChange computes the percentage change from previous to current.
// There is no meaningful comparison against a non-positive base, so ok=false
// suppresses the figure instead of reporting an infinite or misleading value.
func PercentChange(current, previous float64) (float64, bool) {
	if previous <= 0 {
		return 0, false
	}
	pct := (current - previous) / previous * 100
	if math.IsNaN(pct) || math.IsInf(pct, 0) {
		return 0, false
	}
	return pct, true
}

// expenseByCategory aggregates the month's expense amounts per category.
func expenseByCategory(txs []model.Transaction, month string) map[string]float64 {
	sums := make(map[string]float64)
	for _, t := range txs {
		if t.Type != model.TypeExpense || !t.InMonth(month) {
			continue
		}
		sums[t.Category] += t.Amount
	}
	return sums
}

// TopCategories ranks the current month's expense categories against the
// prior month. Rows are sorted descending by current amount and capped to
// the top three; each carries a delta and a direction so the presentation
// can say "new", "unchanged", or "up/down by X".
func TopCategories(txs []model.Transaction, month string) Insight {
	current := expenseByCategory(txs, month)
	previous := expenseByCategory(txs, model.PrevMonthKey(month))

	if len(current) == 0 {
		return Insight{Rows: []InsightRow{}, Empty: true}
	}

	rows := make([]InsightRow, 0, len(current))
	for category, amount := range current {
		prior := previous[category]
		row := InsightRow{
			Category: category,
			Label:    model.CategoryLabel(category),
			Amount:   amount,
			Delta:    amount - prior,
		}
		switch {
		case prior == 0:
			row.Direction = DirectionNew
		case row.Delta == 0:
			row.Direction = DirectionFlat
		case row.Delta > 0:
			row.Direction = DirectionUp
		default:
			row.Direction = DirectionDown
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}
		return rows[i].Category < rows[j].Category
	})
	if len(rows) > 3 {
		rows = rows[:3]
	}

	return Insight{Rows: rows}
}

// CategoryChart returns the top five expense categories of the month with
// each one's share of the charted total.
func CategoryChart(txs []model.Transaction, month string) []ChartRow {
	sums := expenseByCategory(txs, month)

	rows := make([]ChartRow, 0, len(sums))
	for category, amount := range sums {
		rows = append(rows, ChartRow{
			Category: category,
			Label:    model.CategoryLabel(category),
			Amount:   amount,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}
		return rows[i].Category < rows[j].Category
	})
	if len(rows) > 5 {
		rows = rows[:5]
	}

	var total float64
	for _, r := range rows {
		total += r.Amount
	}
	if total > 0 {
		for i := range rows {
			rows[i].Percent = rows[i].Amount / total * 100
		}
	}

	return rows
}

// BudgetRows computes the budget standing for every category that has either
// a recorded spend or a defined limit this month. Rows are ordered most
// actionable first: over, then near, then within, then no-limit. That
// ordering is part of the alerts-list contract and must not change.
func BudgetRows(txs []model.Transaction, budgets []model.BudgetLimit, month string) []BudgetRow {
	spent := expenseByCategory(txs, month)

	limits := make(map[string]float64)
	for _, b := range budgets {
		if b.Month != month {
			continue
		}
		// A non-finite limit cannot drive a ratio; treat it as undefined.
		if math.IsNaN(b.Limit) || math.IsInf(b.Limit, 0) {
			continue
		}
		limits[b.Category] = b.Limit
	}

	categories := make([]string, 0, len(spent)+len(limits))
	seen := make(map[string]bool)
	for c := range spent {
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	for c := range limits {
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return model.CategoryLabel(categories[i]) < model.CategoryLabel(categories[j])
	})

	rows := make([]BudgetRow, 0, len(categories))
	for _, category := range categories {
		limit, hasLimit := limits[category]
		row := BudgetRow{
			Category:  category,
			Label:     model.CategoryLabel(category),
			Spent:     spent[category],
			Limit:     limit,
			Remaining: limit - spent[category],
			HasLimit:  hasLimit,
		}

		if limit > 0 {
			row.Ratio = row.Spent / limit
			switch {
			case row.Ratio >= 1:
				row.Status = StatusOver
			case row.Ratio >= 0.8:
				row.Status = StatusNear
			default:
				row.Status = StatusWithin
			}
		} else if row.Spent > 0 {
			// Spending against no limit (or a zero limit) is over by definition.
			row.Ratio = 1
			row.Status = StatusOver
		} else {
			row.Status = StatusNone
		}

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return statusRank[rows[i].Status] < statusRank[rows[j].Status]
	})

	return rows
}

// BudgetAlerts derives severity-classified notices from the budget rows.
// Only categories with a strictly positive defined limit participate. The
// "ok" band is deliberately narrow (ratio <= 0.5 with nonzero spend) so an
// all-clear notice never appears for a category with no activity.
func BudgetAlerts(rows []BudgetRow) []Alert {
	alerts := make([]Alert, 0, len(rows))
	for _, row := range rows {
		if !row.HasLimit || row.Limit <= 0 {
			continue
		}

		var kind AlertKind
		switch {
		case row.Ratio >= 1:
			kind = AlertDanger
		case row.Ratio >= 0.8:
			kind = AlertWarn
		case row.Ratio <= 0.5 && row.Spent > 0:
			kind = AlertOK
		default:
			continue
		}

		alerts = append(alerts, Alert{
			Kind:     kind,
			Category: row.Category,
			Label:    row.Label,
			Spent:    row.Spent,
			Limit:    row.Limit,
			Ratio:    row.Ratio,
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if alerts[i].Kind != alerts[j].Kind {
			return alertRank[alerts[i].Kind] < alertRank[alerts[j].Kind]
		}
		return alerts[i].Ratio > alerts[j].Ratio
	})
	if len(alerts) > maxAlerts {
		alerts = alerts[:maxAlerts]
	}

	return alerts
}

// GoalForMonth computes the savings-goal standing from the month's balance
// and the goal table. Percent is the ratio clamped to [0,1] and rounded: a
// balance above target reads 100, a negative balance reads 0.
func GoalForMonth(balance float64, goals []model.Goal, month string) GoalReport {
	report := GoalReport{Balance: balance, Status: GoalNone}

	for _, g := range goals {
		if g.Month == month && g.Type == model.GoalSavings {
			// Ignore a non-finite target the same way a non-finite limit is ignored.
			if math.IsNaN(g.Target) || math.IsInf(g.Target, 0) {
				continue
			}
			report.Target = g.Target
			break
		}
	}

	report.Remaining = report.Target - balance

	if report.Target <= 0 {
		report.Percent = 0
		return report
	}

	report.Ratio = balance / report.Target
	report.Percent = int(math.Round(clamp01(report.Ratio) * 100))

	switch {
	case balance >= report.Target:
		report.Status = GoalDone
	case balance >= 0.8*report.Target:
		report.Status = GoalNear
	default:
		report.Status = GoalProgress
	}

	return report
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
