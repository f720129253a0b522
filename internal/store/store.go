// Package store holds the persisted user state: recently viewed transactions
// and watched accounts. State only changes by dispatching actions.
package store

import (
	"reflect"
	"slices"
	"sync"

	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store is a reducer store over domain.RootState.
type Store struct {
	mu    sync.RWMutex
	state domain.RootState

	subMu  sync.Mutex
	nextID uint64
	subs   map[uint64]func(domain.RootState)
}

// Init creates a store. A nil preloaded state starts empty.
func Init(preloaded *domain.RootState) *Store {
	s := &Store{subs: make(map[uint64]func(domain.RootState))}
	if preloaded != nil {
		s.state = clone(*preloaded)
	}
	return s
}

// Load creates a store from the state saved in persisted.
func Load(persisted ports.StateStore) (*Store, error) {
	state, err := persisted.Load()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load saved state")
	}
	return Init(state), nil
}

// State returns a copy of the current state.
func (s *Store) State() domain.RootState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.state)
}

// Dispatch applies action. Subscribers are called when the state changed.
func (s *Store) Dispatch(action Action) error {
	if err := action.validate(); err != nil {
		return zerr.With(err, "action", action.Type())
	}

	s.mu.Lock()
	next := rootReducer(s.state, action)
	if reflect.DeepEqual(next, s.state) {
		s.mu.Unlock()
		return nil
	}
	s.state = next
	snapshot := clone(next)
	s.mu.Unlock()

	s.subMu.Lock()
	subs := make([]func(domain.RootState), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(clone(snapshot))
	}
	return nil
}

// Subscribe registers fn to be called with the new state after every change.
func (s *Store) Subscribe(fn func(domain.RootState)) (unsubscribe func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// Persist saves the state to persisted after every change.
// Save failures are reported to log and do not stop later saves.
func Persist(s *Store, persisted ports.StateStore, log ports.Logger) (unsubscribe func()) {
	return s.Subscribe(func(state domain.RootState) {
		if err := persisted.Save(state); err != nil {
			log.Error(zerr.Wrap(err, "failed to save state"))
		}
	})
}

func clone(s domain.RootState) domain.RootState {
	return domain.RootState{
		Transactions: domain.TransactionsState{Recent: slices.Clone(s.Transactions.Recent)},
		Accounts:     domain.AccountsState{Watched: slices.Clone(s.Accounts.Watched)},
	}
}
