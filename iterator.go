package forwardlist

// Position is anything that marks a place in a list: an Iterator or a
// ConstIterator. Positions of both kinds compare equal when they refer
// to the same node.
type Position[T any] interface {
	at() *node[T]
}

// region Iterator

// Iterator is a forward iterator that can modify the element it points
// to. It is a small value: copy it freely, Next returns a new one.
//
// An Iterator is in one of three states: before begin (List.BeforeBegin),
// at an element, or at end. Removing the element it points to
// invalidates it.
type Iterator[T any] struct {
	n *node[T]
	// before marks the list's sentinel, which holds no element.
	before bool
}

func (it Iterator[T]) at() *node[T] { return it.n }

func (it Iterator[T]) element() *node[T] {
	if it.before {
		violated(ErrBeforeBegin)
	}
	return it.n.deref()
}

// Value returns the element. Panics at end or before begin.
func (it Iterator[T]) Value() T {
	return it.element().value
}

// Ptr returns a pointer to the element stored in the list.
func (it Iterator[T]) Ptr() *T {
	return &it.element().value
}

// Set replaces the element.
func (it Iterator[T]) Set(v T) {
	it.element().value = v
}

// Next returns an iterator to the following element, or End if this is
// the last one. Panics when called on End.
func (it Iterator[T]) Next() Iterator[T] {
	return Iterator[T]{n: it.n.successor()}
}

// IsEnd reports whether it is past the last element.
func (it Iterator[T]) IsEnd() bool {
	return it.n == nil
}

// Equal reports whether it and other refer to the same node.
func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.n == other.at()
}

// Const returns a read-only iterator to the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{n: it.n, before: it.before}
}

// endregion

// region ConstIterator

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any] struct {
	n      *node[T]
	before bool
}

func (it ConstIterator[T]) at() *node[T] { return it.n }

// Value returns the element. Panics at end, before begin or on a removed
// element.
func (it ConstIterator[T]) Value() T {
	if it.before {
		violated(ErrBeforeBegin)
	}
	return it.n.deref().value
}

// Next returns the following position. Panics when called on end.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return ConstIterator[T]{n: it.n.successor()}
}

// IsEnd reports whether it is past the last element.
func (it ConstIterator[T]) IsEnd() bool {
	return it.n == nil
}

// Equal reports whether it and other refer to the same node.
func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.n == other.at()
}

// endregion
