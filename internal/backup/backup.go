// Package backup periodically snapshots the persisted store to JSON files
// so a session's data survives database loss.
package backup

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
)

// SlotReader is the subset of the store the snapshot job needs.
type SlotReader interface {
	GetAll() (map[string][]byte, error)
}

// Job writes timestamped snapshots of every store slot on a cron schedule
// and prunes old ones.
type Job struct {
	store    SlotReader
	dir      string
	schedule string
	keep     int
	cron     *cron.Cron
}

// NewJob creates a snapshot job. keep is the number of snapshot files
// retained after each run.
func NewJob(store SlotReader, dir, schedule string, keep int) *Job {
	return &Job{
		store:    store,
		dir:      dir,
		schedule: schedule,
		keep:     keep,
		cron:     cron.New(),
	}
}

// Start registers the schedule and begins running. The first snapshot is
// taken on schedule, not at startup.
func (j *Job) Start() error {
	if err := os.MkdirAll(j.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup dir: %w", err)
	}

	if _, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.Run(); err != nil {
			log.Printf("backup: snapshot failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	return nil
}

// Stop halts the scheduler and waits for a running snapshot to finish.
func (j *Job) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

// Run takes one snapshot immediately and prunes old files.
func (j *Job) Run() error {
	slots, err := j.store.GetAll()
	if err != nil {
		return fmt.Errorf("failed to read slots: %w", err)
	}

	// Store raw slot JSON nested, not double-encoded.
	snapshot := make(map[string]json.RawMessage, len(slots))
	for key, value := range slots {
		snapshot[key] = json.RawMessage(value)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	name := fmt.Sprintf("snapshot-%s.json", time.Now().UTC().Format("20060102-150405"))
	path := filepath.Join(j.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	log.Printf("backup: wrote %s (%d slots)", path, len(snapshot))

	return j.prune()
}

// prune removes the oldest snapshots beyond the retention count. Snapshot
// names sort chronologically.
func (j *Job) prune() error {
	matches, err := filepath.Glob(filepath.Join(j.dir, "snapshot-*.json"))
	if err != nil {
		return err
	}
	if len(matches) <= j.keep {
		return nil
	}

	sort.Strings(matches)
	for _, path := range matches[:len(matches)-j.keep] {
		if err := os.Remove(path); err != nil {
			log.Printf("backup: failed to prune %s: %v", path, err)
		}
	}
	return nil
}
