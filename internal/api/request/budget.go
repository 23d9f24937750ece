package request

type UpsertBudgetRequest struct {
	Month    string  `json:"month"`
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
}

type UpsertGoalRequest struct {
	Month  string  `json:"month"`
	Type   string  `json:"type"`
	Target float64 `json:"target"`
}

// ConfirmClearRequest carries the token obtained from the clear-request step
// back to the confirm step.
type ConfirmClearRequest struct {
	Token string `json:"token"`
}
