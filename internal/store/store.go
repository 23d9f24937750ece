// Package store implements the persisted key-value slots that back the
// in-memory collections, plus the subscribe/notify hub that propagates a
// writer's change to other sessions. Conflict policy is last writer wins at
// the granularity of a whole slot value; no merge is attempted.
package store

// Fixed slot keys. Each collection is serialized as a JSON array under its key.
const (
	KeyTransactions = "budget.transactions"
	KeyBudgets      = "budget.budgets"
	KeyGoals        = "budget.goals"
)

// SlotKeys lists every slot the application persists, in snapshot order.
var SlotKeys = []string{KeyTransactions, KeyBudgets, KeyGoals}

// Change describes a slot write observed by the hub. Present is false when
// the slot was removed rather than replaced.
type Change struct {
	Key     string
	Value   []byte
	Present bool
	Origin  string
}

// Store is the persisted store contract. Get returns ok=false when the slot
// has never been written. Set replaces the whole value synchronously; the
// caller's origin identifies the writing session so it is not notified of
// its own writes.
type Store interface {
	Get(key string) (value []byte, ok bool, err error)
	Set(key string, value []byte, origin string) error
	Subscribe(origin string) <-chan Change
	Unsubscribe(ch <-chan Change)
}
