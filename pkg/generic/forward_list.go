package generic

import (
	"github.com/cheekybits/genny/generic"

	forwardlist "github.com/snwfog/forwardlist.go"
)

//go:generate genny -in=$GOFILE -out=../intlist/int_forward_list.go -pkg=intlist gen "Value=int"

type Value generic.Number

// region ValueList

// ValueList is a forward list of Value. Ordering, equality and hashing
// that the generic List offers as functions are bound here as methods.
type ValueList struct {
	forwardlist.List[Value]
}

func NewValueList(values ...Value) *ValueList {
	l := &ValueList{}
	it := l.BeforeBegin()
	for _, v := range values {
		it = l.InsertAfter(it, v)
	}
	return l
}

// Clone returns an independent deep copy of l.
func (l *ValueList) Clone() *ValueList {
	c := &ValueList{}
	c.Assign(&l.List)
	return c
}

func (l *ValueList) Equal(other *ValueList) bool {
	return forwardlist.Equal(&l.List, &other.List)
}

func (l *ValueList) Compare(other *ValueList) int {
	return forwardlist.Compare(&l.List, &other.List)
}

func (l *ValueList) Less(other *ValueList) bool {
	return forwardlist.Less(&l.List, &other.List)
}

func (l *ValueList) LessOrEqual(other *ValueList) bool {
	return forwardlist.LessOrEqual(&l.List, &other.List)
}

func (l *ValueList) Greater(other *ValueList) bool {
	return forwardlist.Greater(&l.List, &other.List)
}

func (l *ValueList) GreaterOrEqual(other *ValueList) bool {
	return forwardlist.GreaterOrEqual(&l.List, &other.List)
}

func (l *ValueList) Hash() uint64 {
	return forwardlist.Hash(&l.List)
}

// Sum adds up every element.
func (l *ValueList) Sum() Value {
	var sum Value
	for v := range l.All() {
		sum += v
	}
	return sum
}

// endregion
