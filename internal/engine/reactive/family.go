package reactive

import (
	"iter"
	"sync"
)

// Family maps a parameter to a node created on demand.
type Family[K comparable, V any] struct {
	mu      sync.Mutex
	create  func(K) V
	members map[K]V
}

// NewFamily creates a family whose members are built by create.
func NewFamily[K comparable, V any](create func(K) V) *Family[K, V] {
	return &Family[K, V]{
		create:  create,
		members: make(map[K]V),
	}
}

// Get returns the member for key, creating it on first use.
func (f *Family[K, V]) Get(key K) V {
	f.mu.Lock()
	defer f.mu.Unlock()

	if v, ok := f.members[key]; ok {
		return v
	}
	v := f.create(key)
	f.members[key] = v
	return v
}

// Lookup returns the member for key without creating it.
func (f *Family[K, V]) Lookup(key K) (V, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	v, ok := f.members[key]
	return v, ok
}

// Evict drops the member for key. The next Get creates a fresh one.
func (f *Family[K, V]) Evict(key K) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.members[key]; !ok {
		return false
	}
	delete(f.members, key)
	return true
}

// Len returns the number of live members.
func (f *Family[K, V]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.members)
}

// All yields a snapshot of the live members.
func (f *Family[K, V]) All() iter.Seq2[K, V] {
	f.mu.Lock()
	snapshot := make(map[K]V, len(f.members))
	for k, v := range f.members {
		snapshot[k] = v
	}
	f.mu.Unlock()

	return func(yield func(K, V) bool) {
		for k, v := range snapshot {
			if !yield(k, v) {
				return
			}
		}
	}
}
