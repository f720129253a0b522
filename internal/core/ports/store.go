package ports

import "go.trai.ch/explorer/internal/core/domain"

// StateStore persists the legacy store state between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StateStore interface {
	// Load returns the saved state.
	// Returns nil, nil if nothing was saved yet.
	Load() (*domain.RootState, error)

	// Save stores the state, replacing any previous one.
	Save(state domain.RootState) error
}
