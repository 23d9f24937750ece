package validation

import (
	"math"
	"strings"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/api/request"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/model"
)

// ValidateUpsertBudget validates a budget limit upsert request.
//
// Required fields:
//   - month: Must be a valid "YYYY-MM" key
//   - category: Must be non-empty
//   - limit: Must be a finite number >= 0
func ValidateUpsertBudget(req request.UpsertBudgetRequest) error {
	errors := make(map[string]string)

	if !model.ValidMonthKey(req.Month) {
		errors["month"] = "month must be in YYYY-MM format"
	}

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	}

	if math.IsNaN(req.Limit) || math.IsInf(req.Limit, 0) {
		errors["limit"] = "limit must be a finite number"
	} else if req.Limit < 0 {
		errors["limit"] = "limit cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateUpsertGoal validates a goal upsert request. Only savings goals
// exist today; the type field still travels in the request so new goal kinds
// do not change the wire shape.
func ValidateUpsertGoal(req request.UpsertGoalRequest) error {
	errors := make(map[string]string)

	if !model.ValidMonthKey(req.Month) {
		errors["month"] = "month must be in YYYY-MM format"
	}

	if req.Type != string(model.GoalSavings) {
		errors["type"] = "type must be savings"
	}

	if math.IsNaN(req.Target) || math.IsInf(req.Target, 0) {
		errors["target"] = "target must be a finite number"
	} else if req.Target < 0 {
		errors["target"] = "target cannot be negative"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
