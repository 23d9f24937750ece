package model

// BudgetLimit is a per (month, category) spending ceiling. At most one entry
// exists per key; absence means "no limit defined", which is not the same as
// a limit of zero.
type BudgetLimit struct {
	Month    string  `json:"month"` // "YYYY-MM"
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

// GoalType identifies the kind of monthly goal. Only savings goals exist today.
type GoalType string

const GoalSavings GoalType = "savings"

// Goal is a per (month, type) target. Same keyed upsert/delete semantics as
// BudgetLimit.
type Goal struct {
	Month  string   `json:"month"` // "YYYY-MM"
	Type   GoalType `json:"type"`
	Target float64  `json:"target"`
}
