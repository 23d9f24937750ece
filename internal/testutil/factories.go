package testutil

import (
	"testing"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/model"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/service"
)

// TransactionBuilder provides a fluent interface for creating test
// transactions.
//
// Example usage:
//
//	// Simple creation with defaults
//	tx := testutil.NewTransaction().Build(t, state)
//
//	// Customized transaction
//	tx := testutil.NewTransaction().
//	    Income().
//	    WithAmount(1500).
//	    WithCategory("salary").
//	    WithDate("2025-06-01").
//	    Build(t, state)
type TransactionBuilder struct {
	Type     model.TransactionType
	Amount   float64
	Category string
	Date     string
	Note     string
}

// NewTransaction creates a TransactionBuilder with sensible defaults.
func NewTransaction() *TransactionBuilder {
	return &TransactionBuilder{
		Type:     model.TypeExpense,
		Amount:   100,
		Category: "food",
		Date:     "2025-06-15",
		Note:     "Test expense",
	}
}

// Income marks the transaction as income.
func (b *TransactionBuilder) Income() *TransactionBuilder {
	b.Type = model.TypeIncome
	return b
}

// Expense marks the transaction as an expense.
func (b *TransactionBuilder) Expense() *TransactionBuilder {
	b.Type = model.TypeExpense
	return b
}

// WithAmount sets a custom amount.
func (b *TransactionBuilder) WithAmount(amount float64) *TransactionBuilder {
	b.Amount = amount
	return b
}

// WithCategory sets a custom category key.
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	b.Category = category
	return b
}

// WithDate sets a custom date in YYYY-MM-DD form.
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	b.Date = date
	return b
}

// WithNote sets a custom note.
func (b *TransactionBuilder) WithNote(note string) *TransactionBuilder {
	b.Note = note
	return b
}

// Value returns the transaction without recording it anywhere.
func (b *TransactionBuilder) Value() model.Transaction {
	return model.Transaction{
		Type:     b.Type,
		Amount:   b.Amount,
		Category: b.Category,
		Date:     b.Date,
		Note:     b.Note,
	}
}

// Build records the transaction through the state service and returns it
// with its assigned ID.
func (b *TransactionBuilder) Build(t *testing.T, state *service.StateService) model.Transaction {
	t.Helper()
	return state.AddTransaction(b.Value())
}

// BudgetBuilder provides a fluent interface for creating test budget limits.
//
// Example usage:
//
//	budget := testutil.NewBudget().
//	    WithCategory("transport").
//	    WithLimit(50000).
//	    Build(t, state)
type BudgetBuilder struct {
	Month    string
	Category string
	Limit    float64
}

// NewBudget creates a BudgetBuilder with sensible defaults.
func NewBudget() *BudgetBuilder {
	return &BudgetBuilder{
		Month:    "2025-06",
		Category: "food",
		Limit:    500,
	}
}

// WithMonth sets a custom month key.
func (b *BudgetBuilder) WithMonth(month string) *BudgetBuilder {
	b.Month = month
	return b
}

// WithCategory sets a custom category key.
func (b *BudgetBuilder) WithCategory(category string) *BudgetBuilder {
	b.Category = category
	return b
}

// WithLimit sets a custom limit.
func (b *BudgetBuilder) WithLimit(limit float64) *BudgetBuilder {
	b.Limit = limit
	return b
}

// Value returns the budget limit without recording it anywhere.
func (b *BudgetBuilder) Value() model.BudgetLimit {
	return model.BudgetLimit{
		Month:    b.Month,
		Category: b.Category,
		Limit:    b.Limit,
	}
}

// Build records the budget limit through the state service and returns it.
func (b *BudgetBuilder) Build(t *testing.T, state *service.StateService) model.BudgetLimit {
	t.Helper()
	entry := b.Value()
	state.UpsertBudget(entry)
	return entry
}

// GoalBuilder provides a fluent interface for creating test savings goals.
//
// Example usage:
//
//	goal := testutil.NewGoal().
//	    WithMonth("2025-06").
//	    WithTarget(500000).
//	    Build(t, state)
type GoalBuilder struct {
	Month  string
	Type   model.GoalType
	Target float64
}

// NewGoal creates a GoalBuilder with sensible defaults.
func NewGoal() *GoalBuilder {
	return &GoalBuilder{
		Month:  "2025-06",
		Type:   model.GoalSavings,
		Target: 1000,
	}
}

// WithMonth sets a custom month key.
func (b *GoalBuilder) WithMonth(month string) *GoalBuilder {
	b.Month = month
	return b
}

// WithTarget sets a custom target.
func (b *GoalBuilder) WithTarget(target float64) *GoalBuilder {
	b.Target = target
	return b
}

// Value returns the goal without recording it anywhere.
func (b *GoalBuilder) Value() model.Goal {
	return model.Goal{
		Month:  b.Month,
		Type:   b.Type,
		Target: b.Target,
	}
}

// Build records the goal through the state service and returns it.
func (b *GoalBuilder) Build(t *testing.T, state *service.StateService) model.Goal {
	t.Helper()
	goal := b.Value()
	state.UpsertGoal(goal)
	return goal
}
