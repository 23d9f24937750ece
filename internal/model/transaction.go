package model

// TransactionType discriminates the sign of an amount. Stored amounts are
// always non-negative; only the type decides whether they count as income
// or as expense.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single recorded income or expense entry.
// Transactions are append/delete only and are never mutated in place.
type Transaction struct {
	ID       string          `json:"id"`
	Type     TransactionType `json:"type"`
	Amount   float64         `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"` // "YYYY-MM-DD"
	Note     string          `json:"note,omitempty"`
}

// InMonth reports whether the transaction falls in the given month key.
// Month membership is derived from the date, never stored redundantly.
func (t Transaction) InMonth(month string) bool {
	return len(t.Date) >= 7 && t.Date[:7] == month
}
