package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/kvargasm/Budget-Tracker-Backend/internal/model"
	"github.com/kvargasm/Budget-Tracker-Backend/internal/store"
)

// StateService owns the three in-memory collections for the session and
// writes each one through to the persisted store after every mutation.
// Persistence is best effort: a failed write is logged and the in-memory
// state stays authoritative until the next successful write.
//
// Every mutation bumps a version counter; (version, month) is the
// memoization key for derived snapshots.
type StateService struct {
	store  store.Store
	origin string

	changes <-chan store.Change

	mu           sync.RWMutex
	transactions []model.Transaction
	budgets      []model.BudgetLimit
	goals        []model.Goal
	version      uint64
}

// NewStateService loads all collections from the store and subscribes to
// peer writes. A slot that is absent or holds malformed JSON initializes
// its collection empty; loading never fails on bad data. Call Run to
// consume the subscription.
func NewStateService(st store.Store, origin string) *StateService {
	s := &StateService{store: st, origin: origin}
	s.changes = st.Subscribe(origin)
	s.transactions = loadSlot[model.Transaction](st, store.KeyTransactions)
	s.budgets = loadSlot[model.BudgetLimit](st, store.KeyBudgets)
	s.goals = loadSlot[model.Goal](st, store.KeyGoals)
	return s
}

// loadSlot decodes one collection. Malformed stored JSON is treated as
// absent rather than fatal.
func loadSlot[T any](st store.Store, key string) []T {
	raw, ok, err := st.Get(key)
	if err != nil {
		log.Printf("state: failed to read %s, starting empty: %v", key, err)
		return []T{}
	}
	if !ok {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("state: malformed data in %s, starting empty: %v", key, err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Run pumps external change notifications until the context is canceled.
// An external write replaces the whole in-memory collection for that key;
// last writer wins, no merge.
func (s *StateService) Run(ctx context.Context) error {
	defer s.store.Unsubscribe(s.changes)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case change, ok := <-s.changes:
			if !ok {
				return nil
			}
			s.applyExternal(change)
		}
	}
}

func (s *StateService) applyExternal(change store.Change) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch change.Key {
	case store.KeyTransactions:
		s.transactions = decodeOrEmpty[model.Transaction](change)
	case store.KeyBudgets:
		s.budgets = decodeOrEmpty[model.BudgetLimit](change)
	case store.KeyGoals:
		s.goals = decodeOrEmpty[model.Goal](change)
	default:
		return
	}
	s.version++
}

func decodeOrEmpty[T any](change store.Change) []T {
	if !change.Present {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(change.Value, &items); err != nil {
		log.Printf("state: malformed external value for %s, replacing with empty: %v", change.Key, err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

// Version returns the mutation counter. It moves forward on every local
// mutation and every applied external change.
func (s *StateService) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Transactions returns a copy of the full ledger, newest insertion first.
func (s *StateService) Transactions() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Budgets returns a copy of the budget limits table.
func (s *StateService) Budgets() []model.BudgetLimit {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.BudgetLimit, len(s.budgets))
	copy(out, s.budgets)
	return out
}

// Goals returns a copy of the goal table.
func (s *StateService) Goals() []model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// AddTransaction records a new transaction with a server-generated ID and
// prepends it to the ledger. Display ordering by date is a read-side
// concern; insertion order is preserved here as the tie-break.
func (s *StateService) AddTransaction(tx model.Transaction) model.Transaction {
	tx.ID = uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]model.Transaction{tx}, s.transactions...)
	s.bumpAndPersist(store.KeyTransactions)
	return tx
}

// DeleteTransaction removes the entry with the matching ID. Deleting an
// absent ID is a no-op; calling twice leaves the same collection as once.
func (s *StateService) DeleteTransaction(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.transactions[:0:0]
	found := false
	for _, t := range s.transactions {
		if t.ID == id {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return false
	}
	if kept == nil {
		kept = []model.Transaction{}
	}
	s.transactions = kept
	s.bumpAndPersist(store.KeyTransactions)
	return true
}

// UpsertBudget replaces any existing entry with the same (month, category)
// key and prepends the new one, so at most one entry exists per key.
func (s *StateService) UpsertBudget(entry model.BudgetLimit) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := []model.BudgetLimit{entry}
	for _, b := range s.budgets {
		if b.Month == entry.Month && b.Category == entry.Category {
			continue
		}
		kept = append(kept, b)
	}
	s.budgets = kept
	s.bumpAndPersist(store.KeyBudgets)
}

// DeleteBudget removes the entry for (month, category). No-op if absent.
func (s *StateService) DeleteBudget(month, category string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := []model.BudgetLimit{}
	found := false
	for _, b := range s.budgets {
		if b.Month == month && b.Category == category {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return false
	}
	s.budgets = kept
	s.bumpAndPersist(store.KeyBudgets)
	return true
}

// UpsertGoal replaces any existing entry with the same (month, type) key.
func (s *StateService) UpsertGoal(goal model.Goal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := []model.Goal{goal}
	for _, g := range s.goals {
		if g.Month == goal.Month && g.Type == goal.Type {
			continue
		}
		kept = append(kept, g)
	}
	s.goals = kept
	s.bumpAndPersist(store.KeyGoals)
}

// DeleteGoal removes the entry for (month, type). No-op if absent.
func (s *StateService) DeleteGoal(month string, goalType model.GoalType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := []model.Goal{}
	found := false
	for _, g := range s.goals {
		if g.Month == month && g.Type == goalType {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return false
	}
	s.goals = kept
	s.bumpAndPersist(store.KeyGoals)
	return true
}

// SeedDemo prepends a canonical set of demo transactions into the given
// month and returns them.
func (s *StateService) SeedDemo(month string) []model.Transaction {
	demo := []model.Transaction{
		{ID: uuid.New().String(), Type: model.TypeIncome, Amount: 1500, Category: "salary", Date: month + "-01", Note: "Salario"},
		{ID: uuid.New().String(), Type: model.TypeExpense, Amount: 220, Category: "food", Date: month + "-03", Note: "Supermercado"},
		{ID: uuid.New().String(), Type: model.TypeExpense, Amount: 60, Category: "transport", Date: month + "-05", Note: "Gasolina"},
		{ID: uuid.New().String(), Type: model.TypeExpense, Amount: 120, Category: "utilities", Date: month + "-07", Note: "Internet"},
		{ID: uuid.New().String(), Type: model.TypeExpense, Amount: 180, Category: "shopping", Date: month + "-10", Note: "Compras"},
		{ID: uuid.New().String(), Type: model.TypeExpense, Amount: 90, Category: "entertainment", Date: month + "-12", Note: "Cine / streaming"},
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(demo, s.transactions...)
	s.bumpAndPersist(store.KeyTransactions)
	return demo
}

// clearAll empties all three collections. Callers gate this behind the
// confirmation token protocol; the mutation itself is unconditional.
func (s *StateService) clearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = []model.Transaction{}
	s.budgets = []model.BudgetLimit{}
	s.goals = []model.Goal{}
	s.bumpAndPersist(store.KeyTransactions, store.KeyBudgets, store.KeyGoals)
}

// bumpAndPersist advances the version and writes the named slots. Must be
// called with the write lock held. Write failures are logged; the session
// keeps serving from memory.
func (s *StateService) bumpAndPersist(keys ...string) {
	s.version++
	for _, key := range keys {
		raw, err := json.Marshal(s.collectionFor(key))
		if err != nil {
			log.Printf("state: failed to encode %s: %v", key, err)
			continue
		}
		if err := s.store.Set(key, raw, s.origin); err != nil {
			log.Printf("state: failed to persist %s, in-memory state remains authoritative: %v", key, err)
		}
	}
}

func (s *StateService) collectionFor(key string) any {
	switch key {
	case store.KeyTransactions:
		return s.transactions
	case store.KeyBudgets:
		return s.budgets
	case store.KeyGoals:
		return s.goals
	}
	return nil
}
