package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/model"
)

// Error carries field-specific validation messages so handlers can return
// them as structured details.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(msgs, "; ")
}

// Common validation errors
var (
	ErrInvalidUUID     = fmt.Errorf("invalid UUID format")
	ErrInvalidMonthKey = fmt.Errorf("invalid month key format")
)

// ValidateUUID checks if a string is a valid UUID
func ValidateUUID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidUUID, id)
	}
	return nil
}

// ValidateMonthKey checks if a string is a well-formed "YYYY-MM" month key
func ValidateMonthKey(month string) error {
	if !model.ValidMonthKey(month) {
		return fmt.Errorf("%w: %s", ErrInvalidMonthKey, month)
	}
	return nil
}
