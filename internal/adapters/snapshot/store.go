// Package snapshot persists the legacy store state as a checksummed JSON file.
package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.StateStore = (*Store)(nil)

// envelope is the on-disk layout. Checksum covers the exact bytes of State.
type envelope struct {
	Checksum string          `json:"checksum"`
	State    json.RawMessage `json:"state"`
}

// Store implements ports.StateStore using a flat JSON file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a StateStore backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the snapshot file location.
func (s *Store) Path() string { return s.path }

// Load returns the saved state, or nil, nil if there is none.
func (s *Store) Load() (*domain.RootState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotCorrupt.Error()), "path", s.path)
	}

	if sum := checksum(env.State); sum != env.Checksum {
		corrupt := zerr.With(domain.ErrSnapshotCorrupt, "path", s.path)
		return nil, zerr.With(zerr.With(corrupt, "want", env.Checksum), "got", sum)
	}

	var state domain.RootState
	if err := json.Unmarshal(env.State, &state); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotCorrupt.Error()), "path", s.path)
	}
	return &state, nil
}

// Save replaces the snapshot with state.
func (s *Store) Save(state domain.RootState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error())
	}

	data, err := json.Marshal(envelope{Checksum: checksum(raw), State: raw})
	if err != nil {
		return zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", s.path)
	}

	// Write next to the target and rename so readers never see a partial file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", s.path)
	}
	return nil
}

func checksum(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}
