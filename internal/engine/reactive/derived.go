package reactive

// Derived is a memoized function of other nodes.
type Derived[T any] struct {
	g     *Graph
	n     *node
	fn    func(r *Reader) (T, error)
	value T
	err   error
	equal func(a, b T) bool
}

// Derive creates a derived node. fn reads its inputs through the Reader and is
// re-run only when one of the nodes it read changed value.
func Derive[T any](g *Graph, label string, fn func(r *Reader) (T, error), opts ...NodeOption[T]) *Derived[T] {
	cfg := newNodeConfig(opts)
	d := &Derived[T]{
		g:     g,
		fn:    fn,
		equal: cfg.equal,
	}
	d.n = g.newNode(label, d.recompute)
	return d
}

// Label returns the debug label of the node.
func (d *Derived[T]) Label() string { return d.n.label }

func (d *Derived[T]) base() *node { return d.n }

func (d *Derived[T]) recompute(r *Reader) (bool, error) {
	v, err := d.fn(r)
	changed := !d.n.computed || !sameError(d.err, err) || !d.equal(d.value, v)
	d.value, d.err = v, err
	return changed, err
}

// Get returns the up to date value, recomputing it if needed.
func (d *Derived[T]) Get() (T, error) {
	d.g.mu.Lock()
	defer d.g.mu.Unlock()

	if err := d.g.refresh(d.n); err != nil {
		var zero T
		return zero, err
	}
	return d.value, d.err
}

// Read returns the up to date value and records the node as a dependency of the reader.
func (d *Derived[T]) Read(r *Reader) (T, error) {
	if err := r.track(d.n); err != nil {
		var zero T
		return zero, err
	}
	return d.value, d.err
}

// Peek returns the memoized value without recomputing.
// ok is false when the node was never computed or is stale.
func (d *Derived[T]) Peek() (value T, ok bool) {
	d.g.mu.Lock()
	defer d.g.mu.Unlock()

	if !d.n.computed || d.n.dirty || d.err != nil {
		var zero T
		return zero, false
	}
	return d.value, true
}

func sameError(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a == b || a.Error() == b.Error()
}
