package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/api/request"
)

// ValidTransactionType contains the allowed transaction type values.
var ValidTransactionType = map[string]bool{
	"income": true, "expense": true,
}

// ValidateCreateTransaction validates a transaction creation request.
//
// Required fields:
//   - type: Must be income or expense
//   - amount: Must be a finite, strictly positive number (the sign lives in
//     the type, never in the stored amount)
//   - category: Must be non-empty
//   - date: Must be in YYYY-MM-DD format
//
// Returns a validation Error with field-specific error messages if validation fails.
func ValidateCreateTransaction(req request.CreateTransactionRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	} else if !ValidTransactionType[req.Type] {
		errors["type"] = fmt.Sprintf("invalid type: %s", req.Type)
	}

	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		errors["amount"] = "amount must be a finite number"
	} else if req.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	if strings.TrimSpace(req.Category) == "" {
		errors["category"] = "category is required"
	}

	if strings.TrimSpace(req.Date) == "" {
		errors["date"] = "date is required"
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errors["date"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
