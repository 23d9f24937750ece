package backup_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/backup"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/store"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/testutil"
)

func TestJob_Run(t *testing.T) {
	t.Run("writes a snapshot containing every slot", func(t *testing.T) {
		st := testutil.NewTestStore(t)
		if err := st.Set(store.KeyTransactions, []byte(`[{"id":"a"}]`), "test"); err != nil {
			t.Fatalf("Failed to seed slot: %v", err)
		}
		if err := st.Set(store.KeyGoals, []byte(`[]`), "test"); err != nil {
			t.Fatalf("Failed to seed slot: %v", err)
		}

		dir := t.TempDir()
		job := backup.NewJob(st, dir, "0 3 * * *", 5)

		if err := job.Run(); err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}

		matches, err := filepath.Glob(filepath.Join(dir, "snapshot-*.json"))
		if err != nil || len(matches) != 1 {
			t.Fatalf("Expected 1 snapshot file, got %v (err %v)", matches, err)
		}

		raw, err := os.ReadFile(matches[0])
		if err != nil {
			t.Fatalf("Failed to read snapshot: %v", err)
		}

		var snapshot map[string]json.RawMessage
		if err := json.Unmarshal(raw, &snapshot); err != nil {
			t.Fatalf("Snapshot is not valid JSON: %v", err)
		}
		if string(snapshot[store.KeyTransactions]) != `[{"id":"a"}]` {
			t.Errorf("Unexpected transactions slot: %s", snapshot[store.KeyTransactions])
		}
	})

	t.Run("prunes snapshots beyond the retention count", func(t *testing.T) {
		st := testutil.NewTestStore(t)
		dir := t.TempDir()

		for _, name := range []string{
			"snapshot-20240101-000000.json",
			"snapshot-20240102-000000.json",
			"snapshot-20240103-000000.json",
		} {
			if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644); err != nil {
				t.Fatalf("Failed to plant snapshot: %v", err)
			}
		}

		job := backup.NewJob(st, dir, "0 3 * * *", 2)
		if err := job.Run(); err != nil {
			t.Fatalf("Snapshot failed: %v", err)
		}

		matches, _ := filepath.Glob(filepath.Join(dir, "snapshot-*.json"))
		if len(matches) != 2 {
			t.Fatalf("Expected 2 retained snapshots, got %d", len(matches))
		}
		for _, path := range matches {
			if filepath.Base(path) == "snapshot-20240101-000000.json" ||
				filepath.Base(path) == "snapshot-20240102-000000.json" {
				t.Errorf("Expected oldest snapshots pruned, found %s", path)
			}
		}
	})

	t.Run("rejects a malformed schedule on start", func(t *testing.T) {
		st := testutil.NewTestStore(t)
		job := backup.NewJob(st, t.TempDir(), "not a schedule", 2)

		if err := job.Start(); err == nil {
			t.Error("Expected an error for a malformed schedule")
			job.Stop()
		}
	})
}
