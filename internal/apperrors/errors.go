package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBudgetNotFound indicates that no budget limit exists for a (month, category) key.
	ErrBudgetNotFound = errors.New("budget limit not found")

	// ErrGoalNotFound indicates that no goal exists for a (month, type) key.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrSlotNotFound indicates that a persisted store slot has no value.
	ErrSlotNotFound = errors.New("store slot not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrInvalidMonthKey indicates that a month parameter is not in "YYYY-MM" form.
	ErrInvalidMonthKey = errors.New("invalid month key format")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidTransactionType indicates a type other than income or expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidGoalType indicates a goal type the system does not know.
	ErrInvalidGoalType = errors.New("invalid goal type")

	// ErrInvalidConfirmation indicates an expired or unverifiable confirmation token.
	ErrInvalidConfirmation = errors.New("invalid or expired confirmation token")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data, as opposed to missing entities or validation issues.
var (
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveBudgets      = errors.New("failed to retrieve budget limits")
	ErrFailedToRetrieveGoals        = errors.New("failed to retrieve goals")
	ErrFailedToGetDashboard         = errors.New("failed to get dashboard snapshot")
	ErrFailedToPersist              = errors.New("failed to persist collection")
)
