// Package reactive implements an explicit dependency graph of memoized values.
//
// A Graph holds source cells and derived nodes. Derived nodes record which nodes
// they read while computing and the version each one had. Setting a cell marks its
// transitive dependents dirty; a dirty node is only recomputed when one of the
// dependencies it actually read has a new version, and its own version only moves
// when the recomputed value differs from the previous one.
//
// All reads and writes of a Graph are serialized by one mutex. Compute functions
// run with the mutex held, so they must not call Set on any cell.
package reactive

import (
	"sync"
	"sync/atomic"

	"go.trai.ch/explorer/internal/core/domain"
	"go.trai.ch/zerr"
)

// Observer is told about every recomputation of a derived node.
// It is called with the graph lock held and must not touch the graph.
type Observer interface {
	OnRecompute(label string, changed bool, err error)
}

// Option configures a Graph.
type Option func(*Graph)

// WithObserver installs an observer for recomputations.
func WithObserver(o Observer) Option {
	return func(g *Graph) {
		g.observer = o
	}
}

// Graph is a dependency graph of cells and derived nodes.
type Graph struct {
	mu       sync.Mutex
	ids      atomic.Uint64
	observer Observer
}

// New creates an empty Graph.
func New(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Node is implemented by Cell and Derived.
type Node interface {
	// Label returns the debug label of the node.
	Label() string

	base() *node
}

type edge struct {
	n       *node
	version uint64
}

type node struct {
	label      string
	version    uint64
	computed   bool
	dirty      bool
	computing  bool
	deps       []edge
	dependents map[*node]struct{}
	watchers   map[uint64]func()

	// compute is nil for cells.
	compute func(r *Reader) (changed bool, err error)
}

func (g *Graph) newNode(label string, compute func(r *Reader) (bool, error)) *node {
	return &node{
		label:      label,
		dependents: make(map[*node]struct{}),
		compute:    compute,
	}
}

// Reader is handed to compute functions and batch reads.
// Every node read through it becomes a dependency of the node being computed.
type Reader struct {
	g     *Graph
	owner *node
}

func (r *Reader) track(dep *node) error {
	if err := r.g.refresh(dep); err != nil {
		return err
	}
	if r.owner == nil {
		return nil
	}
	for _, e := range r.owner.deps {
		if e.n == dep {
			return nil
		}
	}
	r.owner.deps = append(r.owner.deps, edge{n: dep, version: dep.version})
	dep.dependents[r.owner] = struct{}{}
	return nil
}

// Batch runs fn with the graph locked so that every read inside it observes the
// same state. Reads made through the Reader do not create dependencies.
func (g *Graph) Batch(fn func(r *Reader)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&Reader{g: g})
}

// Watch registers fn to be called after a change that may affect n.
// fn runs outside the graph lock, at most once between two reads of n.
// The returned function cancels the registration.
func (g *Graph) Watch(n Node, fn func()) (cancel func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := n.base()
	// Establish the dependencies so that upstream changes reach the watcher.
	_ = g.refresh(b)

	if b.watchers == nil {
		b.watchers = make(map[uint64]func())
	}
	id := g.ids.Add(1)
	b.watchers[id] = fn

	return func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		delete(b.watchers, id)
	}
}

// refresh brings n up to date. It must be called with the lock held.
func (g *Graph) refresh(n *node) error {
	if n.compute == nil {
		return nil
	}
	if n.computing {
		return zerr.With(domain.ErrCycleDetected, "node", n.label)
	}
	if n.computed && !n.dirty {
		return nil
	}
	if n.computed && !g.depsChanged(n) {
		n.dirty = false
		return nil
	}
	g.run(n)
	return nil
}

// depsChanged reports whether any recorded dependency moved past the version n saw.
// Dependencies are checked in read order and the scan stops at the first change,
// since later reads may no longer happen after recomputation.
func (g *Graph) depsChanged(n *node) bool {
	for _, e := range n.deps {
		if err := g.refresh(e.n); err != nil {
			return true
		}
		if e.n.version != e.version {
			return true
		}
	}
	return false
}

// run recomputes n. Edges from the previous run stay in place until compute
// returns, so a node read again keeps its dependent throughout.
func (g *Graph) run(n *node) {
	prev := n.deps
	n.deps = nil

	var (
		changed bool
		err     error
	)
	func() {
		n.computing = true
		defer func() { n.computing = false }()
		changed, err = n.compute(&Reader{g: g, owner: n})
	}()

	if len(prev) > 0 {
		kept := make(map[*node]struct{}, len(n.deps))
		for _, e := range n.deps {
			kept[e.n] = struct{}{}
		}
		for _, e := range prev {
			if _, ok := kept[e.n]; !ok {
				delete(e.n.dependents, n)
			}
		}
	}

	n.computed = true
	n.dirty = false
	if changed {
		n.version++
	}

	if g.observer != nil {
		g.observer.OnRecompute(n.label, changed, err)
	}
}

// invalidate marks the dependents of src dirty and returns the watchers to notify.
// It must be called with the lock held.
func (g *Graph) invalidate(src *node) []func() {
	var notify []func()
	collect := func(n *node) {
		for _, fn := range n.watchers {
			notify = append(notify, fn)
		}
	}

	collect(src)
	stack := []*node{src}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for dep := range n.dependents {
			if dep.dirty {
				continue
			}
			dep.dirty = true
			collect(dep)
			stack = append(stack, dep)
		}
	}
	return notify
}
