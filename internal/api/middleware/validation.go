// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/api/response"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/validation"
)

// ValidateTransactionIDMiddleware validates that the transactionId URL
// parameter is present and is a valid UUID.
// Returns 400 Bad Request if the transaction ID is missing or invalid.
//
// Example usage in router:
//
//	r.Route("/{transactionId}", func(r chi.Router) {
//	    r.Use(middleware.ValidateTransactionIDMiddleware)
//	    r.Delete("/", handler.DeleteTransaction)
//	})
func ValidateTransactionIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "transactionId")

		if id == "" {
			response.RespondError(w, http.StatusBadRequest, "valid transaction ID is required", "")
			return
		}

		if err := validation.ValidateUUID(id); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid transaction ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}

// ValidateMonthQueryMiddleware validates the month query parameter on
// month-scoped read routes. The parameter is required and must be a
// YYYY-MM key with a month between 01 and 12.
func ValidateMonthQueryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		month := r.URL.Query().Get("month")

		if month == "" {
			response.RespondError(w, http.StatusBadRequest, "month query parameter is required", "")
			return
		}

		if err := validation.ValidateMonthKey(month); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid month format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
