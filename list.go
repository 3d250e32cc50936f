// Package forwardlist implements a generic singly-linked list with
// insert-after/erase-after iterators and value semantics.
//
// A list is not safe for concurrent mutation. Precondition violations
// (popping an empty list, dereferencing End, erasing after the last
// element, using an iterator to a removed element) panic with one of the
// Err* values in this package.
package forwardlist

import (
	"fmt"
	"iter"
	"strings"
)

// New returns a list holding values in the given order.
func New[T any](values ...T) *List[T] {
	l := &List[T]{}
	l.appendAll(func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	})
	return l
}

// FromSeq returns a list holding the values produced by seq, in order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := &List[T]{}
	l.appendAll(seq)
	return l
}

// region List

// List is a singly-linked list. The zero value is an empty list ready to
// use. A List must not be copied after first use; use Clone or Assign.
type List[T any] struct {
	// head is the before-first sentinel; head.next is the first element.
	head  node[T]
	count int
}

// Len returns the number of elements. O(1).
func (l *List[T]) Len() int {
	return l.count
}

// IsEmpty reports whether l has no elements. O(1).
func (l *List[T]) IsEmpty() bool {
	return l.count == 0
}

// Front returns the first element. Panics on an empty list.
func (l *List[T]) Front() T {
	if l.head.next == nil {
		violated(ErrEmptyList)
	}
	return l.head.next.value
}

// PushFront inserts v before the first element. O(1), never panics.
func (l *List[T]) PushFront(v T) {
	l.head.next = newnode(v, l.head.next)
	l.count++
}

// PopFront removes the first element. Panics on an empty list.
func (l *List[T]) PopFront() {
	first := l.head.next
	if first == nil {
		violated(ErrEmptyList)
	}
	l.head.next = first.next
	l.count--
	first.release()
}

// InsertAfter inserts v right after pos and returns an iterator to it.
// pos may be BeforeBegin; it must not be End.
func (l *List[T]) InsertAfter(pos Position[T], v T) Iterator[T] {
	at := pos.at()
	succ := at.successor()
	inserted := newnode(v, succ)
	at.next = inserted
	l.count++
	return Iterator[T]{n: inserted}
}

// EraseAfter removes the element right after pos and returns an iterator
// to the element that now follows pos. Iterators to the removed element
// become invalid. Panics if pos has no successor.
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	at := pos.at()
	victim := at.successor()
	if victim == nil {
		violated(ErrNoSuccessor)
	}
	at.next = victim.next
	l.count--
	victim.release()
	return Iterator[T]{n: at.next}
}

// Clear removes every element. Nodes are released one by one, so long
// lists do not recurse.
func (l *List[T]) Clear() {
	for n := l.head.next; n != nil; {
		next := n.next
		n.release()
		n = next
	}
	l.head.next = nil
	l.count = 0
}

// Swap exchanges the contents of l and other in O(1). Iterators to
// elements stay valid and follow their elements into the other list;
// BeforeBegin iterators stay with their list.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.count, other.count = other.count, l.count
}

// Clone returns an independent deep copy of l.
func (l *List[T]) Clone() *List[T] {
	c := &List[T]{}
	c.appendAll(l.All())
	return c
}

// Assign replaces the contents of l with a copy of other. The copy is
// built in full before it is swapped in, so l is never observed half
// updated. Iterators to the previous contents of l become invalid.
func (l *List[T]) Assign(other *List[T]) {
	if l == other {
		return
	}
	tmp := other.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// appendAll appends every value of seq after the current last element.
func (l *List[T]) appendAll(seq iter.Seq[T]) {
	last := &l.head
	for last.next != nil {
		last = last.next
	}
	for v := range seq {
		last.next = newnode(v, nil)
		last = last.next
		l.count++
	}
}

// endregion

// region Iteration

// Begin is the position of the first element, or End on an empty list.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{n: l.head.next}
}

// End is the position past the last element. O(1).
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin is the position before the first element. It may be passed
// to InsertAfter and EraseAfter but not dereferenced.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{n: &l.head, before: true}
}

// CBegin is the read-only Begin.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd is the read-only End.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// CBeforeBegin is the read-only BeforeBegin. It does not write to l, so
// concurrent readers may call it.
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return l.BeforeBegin().Const()
}

// All returns an iterator over the elements, front to back. The list must
// not be modified while ranging.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head.next; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values returns the elements as a slice.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.count)
	for v := range l.All() {
		values = append(values, v)
	}
	return values
}

// String formats the elements like a slice: [1 2 3].
func (l *List[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for n := l.head.next; n != nil; n = n.next {
		if n != l.head.next {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, n.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

// endregion

// Swap exchanges the contents of a and b.
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}
