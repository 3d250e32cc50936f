// This file was automatically generated by genny.
// Any changes will be lost if this file is regenerated.
// see https://github.com/cheekybits/genny

package intlist

import (
	forwardlist "github.com/snwfog/forwardlist.go"
)

// region IntList

// IntList is a forward list of int. Ordering, equality and hashing
// that the generic List offers as functions are bound here as methods.
type IntList struct {
	forwardlist.List[int]
}

func NewIntList(values ...int) *IntList {
	l := &IntList{}
	it := l.BeforeBegin()
	for _, v := range values {
		it = l.InsertAfter(it, v)
	}
	return l
}

// Clone returns an independent deep copy of l.
func (l *IntList) Clone() *IntList {
	c := &IntList{}
	c.Assign(&l.List)
	return c
}

func (l *IntList) Equal(other *IntList) bool {
	return forwardlist.Equal(&l.List, &other.List)
}

func (l *IntList) Compare(other *IntList) int {
	return forwardlist.Compare(&l.List, &other.List)
}

func (l *IntList) Less(other *IntList) bool {
	return forwardlist.Less(&l.List, &other.List)
}

func (l *IntList) LessOrEqual(other *IntList) bool {
	return forwardlist.LessOrEqual(&l.List, &other.List)
}

func (l *IntList) Greater(other *IntList) bool {
	return forwardlist.Greater(&l.List, &other.List)
}

func (l *IntList) GreaterOrEqual(other *IntList) bool {
	return forwardlist.GreaterOrEqual(&l.List, &other.List)
}

func (l *IntList) Hash() uint64 {
	return forwardlist.Hash(&l.List)
}

// Sum adds up every element.
func (l *IntList) Sum() int {
	var sum int
	for v := range l.All() {
		sum += v
	}
	return sum
}

// endregion
