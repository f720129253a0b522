package fetchcache

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/explorer/internal/engine/reactive"
	"golang.org/x/sync/errgroup"
)

// Status is the lifecycle state of a cache entry.
type Status int

const (
	// StatusLoading means the first fetch has not settled yet.
	StatusLoading Status = iota
	// StatusReady means the entry holds a fetched value.
	StatusReady
	// StatusFailed means the last fetch failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Entry is the cached state of one entity.
type Entry[T any] struct {
	Status Status
	Value  T
	Err    error
}

// kind is the family of cache entries of one entity type.
type kind[K comparable, T any] struct {
	c       *Cache
	name    string
	format  func(K) string
	fetch   func(ctx context.Context, key K) (T, error)
	entries *reactive.Family[K, *reactive.Cell[Entry[T]]]
}

func newKind[K comparable, T any](
	c *Cache,
	name string,
	format func(K) string,
	fetch func(ctx context.Context, key K) (T, error),
) *kind[K, T] {
	k := &kind[K, T]{c: c, name: name, format: format, fetch: fetch}
	k.entries = reactive.NewFamily(func(key K) *reactive.Cell[Entry[T]] {
		cell := reactive.NewCell(c.graph, k.id(key), Entry[T]{})
		k.start(key, cell)
		return cell
	})
	c.kinds = append(c.kinds, k)
	return k
}

func (k *kind[K, T]) id(key K) string {
	return k.name + "/" + k.format(key)
}

// read returns the entry for key as an EntityCache result and records it as a
// dependency of r. The first read of a key starts its fetch.
func (k *kind[K, T]) read(r *reactive.Reader, key K) (T, error) {
	cell := k.entries.Get(key)
	k.c.touch(r, k.id(key), slot{
		observed: cell.Observed,
		drop:     func() { k.entries.Evict(key) },
	})

	e := cell.Read(r)
	switch e.Status {
	case StatusReady:
		return e.Value, nil
	case StatusFailed:
		var zero T
		return zero, e.Err
	case StatusLoading:
		var zero T
		return zero, nil
	default:
		var zero T
		return zero, nil
	}
}

// start fetches key in the background. Cells are never set from the read path
// because reads run with the graph locked.
func (k *kind[K, T]) start(key K, cell *reactive.Cell[Entry[T]]) {
	k.c.begin()
	go func() {
		defer k.c.end()
		_ = k.settle(k.c.ctx, key, cell)
	}()
}

// settle fetches key and stores the outcome in cell.
func (k *kind[K, T]) settle(ctx context.Context, key K, cell *reactive.Cell[Entry[T]]) error {
	id := k.id(key)
	v, err, _ := k.c.group.Do(id, func() (any, error) {
		if err := k.c.ctx.Err(); err != nil {
			return nil, errors.Join(domain.ErrCacheClosed, err)
		}
		value, err := k.fetch(ctx, key)
		if err != nil {
			return nil, err
		}
		return value, nil
	})

	if err != nil {
		cell.Set(Entry[T]{Status: StatusFailed, Err: err})
		k.c.failed(k.name, k.format(key), err)
	} else {
		cell.Set(Entry[T]{Status: StatusReady, Value: v.(T)})
	}
	k.c.publish(Event{Kind: k.name, Key: k.format(key), Err: err})
	return err
}

func (k *kind[K, T]) refresh(ctx context.Context, g *errgroup.Group) {
	for key, cell := range k.entries.All() {
		k.c.begin()
		g.Go(func() error {
			defer k.c.end()
			return k.settle(ctx, key, cell)
		})
	}
}

func (k *kind[K, T]) len() int {
	return k.entries.Len()
}

func (k *kind[K, T]) lookup(key K) (Entry[T], bool) {
	cell, ok := k.entries.Lookup(key)
	if !ok {
		return Entry[T]{}, false
	}
	return cell.Get(), true
}
