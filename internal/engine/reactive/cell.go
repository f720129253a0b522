package reactive

import "reflect"

// NodeOption configures a Cell or a Derived node.
type NodeOption[T any] func(*nodeConfig[T])

type nodeConfig[T any] struct {
	equal func(a, b T) bool
}

func newNodeConfig[T any](opts []NodeOption[T]) nodeConfig[T] {
	cfg := nodeConfig[T]{
		equal: func(a, b T) bool { return reflect.DeepEqual(a, b) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Equal sets the function deciding whether a new value is a change.
// The default is reflect.DeepEqual.
func Equal[T any](fn func(a, b T) bool) NodeOption[T] {
	return func(c *nodeConfig[T]) {
		c.equal = fn
	}
}

// Comparable compares values with ==.
func Comparable[T comparable]() NodeOption[T] {
	return Equal(func(a, b T) bool { return a == b })
}

// Cell is a settable source node.
type Cell[T any] struct {
	g     *Graph
	n     *node
	value T
	equal func(a, b T) bool
}

// NewCell creates a cell holding initial.
func NewCell[T any](g *Graph, label string, initial T, opts ...NodeOption[T]) *Cell[T] {
	cfg := newNodeConfig(opts)
	c := &Cell[T]{
		g:     g,
		value: initial,
		equal: cfg.equal,
	}
	c.n = g.newNode(label, nil)
	c.n.computed = true
	return c
}

// Label returns the debug label of the cell.
func (c *Cell[T]) Label() string { return c.n.label }

func (c *Cell[T]) base() *node { return c.n }

// Get returns the current value.
func (c *Cell[T]) Get() T {
	c.g.mu.Lock()
	defer c.g.mu.Unlock()
	return c.value
}

// Read returns the current value and records the cell as a dependency of the reader.
func (c *Cell[T]) Read(r *Reader) T {
	_ = r.track(c.n)
	return c.value
}

// Observed reports whether a derived node or a watcher currently depends on
// the cell. The Reader stands for the graph lock, which must be held.
func (c *Cell[T]) Observed(*Reader) bool {
	return len(c.n.dependents) > 0 || len(c.n.watchers) > 0
}

// Set replaces the value. Setting an equal value does nothing.
func (c *Cell[T]) Set(v T) {
	c.Update(func(T) T { return v })
}

// Update replaces the value with fn applied to the current one.
func (c *Cell[T]) Update(fn func(T) T) {
	c.g.mu.Lock()
	next := fn(c.value)
	if c.equal(c.value, next) {
		c.g.mu.Unlock()
		return
	}
	c.value = next
	c.n.version++
	notify := c.g.invalidate(c.n)
	c.g.mu.Unlock()

	for _, fn := range notify {
		fn()
	}
}
