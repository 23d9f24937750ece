package store

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
)

// SQLiteStore persists slots in the slot table and fans out change
// notifications to subscribed sessions.
type SQLiteStore struct {
	db *sql.DB

	mu   sync.Mutex
	subs map[<-chan Change]*subscriber
}

type subscriber struct {
	origin string
	ch     chan Change
}

// NewSQLiteStore creates a store over an already-migrated database.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db:   db,
		subs: make(map[<-chan Change]*subscriber),
	}
}

// Get returns the raw serialized value for a slot, or ok=false when the slot
// has never been written.
func (s *SQLiteStore) Get(key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM slot WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return []byte(value), true, nil
}

// Set replaces the whole slot value and notifies every subscriber except the
// writing origin. The write is synchronous; callers see the error before any
// notification goes out.
func (s *SQLiteStore) Set(key string, value []byte, origin string) error {
	_, err := s.db.Exec(`
		INSERT INTO slot (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}

	s.publish(Change{Key: key, Value: value, Present: true, Origin: origin})
	return nil
}

// GetAll returns every written slot. Used by the snapshot job.
func (s *SQLiteStore) GetAll() (map[string][]byte, error) {
	rows, err := s.db.Query(`SELECT key, value FROM slot`)
	if err != nil {
		return nil, fmt.Errorf("failed to read slots: %w", err)
	}
	defer rows.Close()

	slots := make(map[string][]byte)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan slot row: %w", err)
		}
		slots[key] = []byte(value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slots: %w", err)
	}

	return slots, nil
}

// Subscribe registers a session for change notifications. Changes written
// under the same origin are filtered out, mirroring how a browser tab does
// not receive its own storage events.
func (s *SQLiteStore) Subscribe(origin string) <-chan Change {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub := &subscriber{origin: origin, ch: make(chan Change, 16)}
	s.subs[sub.ch] = sub
	return sub.ch
}

// Unsubscribe removes a subscription and closes its channel.
func (s *SQLiteStore) Unsubscribe(ch <-chan Change) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sub, ok := s.subs[ch]; ok {
		delete(s.subs, ch)
		close(sub.ch)
	}
}

func (s *SQLiteStore) publish(change Change) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sub := range s.subs {
		if sub.origin == change.Origin {
			continue
		}
		select {
		case sub.ch <- change:
		default:
			// A stalled subscriber loses this notification; it will
			// converge on the next successful delivery.
			log.Printf("store: dropping change notification for %s (subscriber %s backed up)", change.Key, sub.origin)
		}
	}
}
