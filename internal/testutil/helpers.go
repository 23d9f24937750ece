package testutil

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/service"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/store"
)

// NewTestStore creates a SQLite-backed slot store over a fresh in-memory
// database.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	return store.NewSQLiteStore(SetupTestDB(t))
}

// NewTestStateService creates a StateService over a fresh store with its
// own origin ID.
func NewTestStateService(t *testing.T) *service.StateService {
	t.Helper()

	return service.NewStateService(NewTestStore(t), MakeID())
}

// NewTestStateServiceWithStore creates a StateService over an existing
// store, for tests that exercise cross-session notification.
func NewTestStateServiceWithStore(t *testing.T, st store.Store) *service.StateService {
	t.Helper()

	return service.NewStateService(st, MakeID())
}

// NewTestDashboardService creates a DashboardService over the given state.
func NewTestDashboardService(t *testing.T, state *service.StateService) *service.DashboardService {
	t.Helper()

	return service.NewDashboardService(state)
}

// NewTestClearGuard creates a ClearGuard with a generated key and the
// given TTL.
func NewTestClearGuard(t *testing.T, ttl time.Duration) *service.ClearGuard {
	t.Helper()

	guard, err := service.NewClearGuardWithKey(ttl)
	if err != nil {
		t.Fatalf("Failed to create clear guard: %v", err)
	}
	return guard
}

// NewTestSystemService creates a SystemService over the given database.
func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}
