package forwardlist

import (
	"go.uber.org/atomic"
)

// liveNodes counts nodes handed out by newnode and not yet released,
// across every list in the process.
var liveNodes = atomic.NewInt64(0)

// LiveNodes returns the number of list nodes currently allocated and not
// released by any list. Nodes of a list dropped without Clear stay
// counted. Intended for leak checks in tests.
func LiveNodes() int64 {
	return liveNodes.Load()
}

// region Node
type node[T any] struct {
	value    T
	next     *node[T]
	released bool
}

func newnode[T any](value T, next *node[T]) *node[T] {
	liveNodes.Inc()
	return &node[T]{value: value, next: next}
}

// release drops the node out of the chain for good. Iterators still
// holding it panic on use.
func (n *node[T]) release() {
	var zero T
	n.value = zero
	n.next = nil
	n.released = true
	liveNodes.Dec()
}

// deref returns the node if it is live. Callers rule out the sentinel.
func (n *node[T]) deref() *node[T] {
	switch {
	case n == nil:
		violated(ErrEndIterator)
	case n.released:
		violated(ErrReleasedNode)
	}
	return n
}

// successor is the node following n; n may be the sentinel.
func (n *node[T]) successor() *node[T] {
	switch {
	case n == nil:
		violated(ErrEndIterator)
	case n.released:
		violated(ErrReleasedNode)
	}
	return n.next
}

// endregion
