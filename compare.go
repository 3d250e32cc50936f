package forwardlist

import (
	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller supplied element equality.
func EqualFunc[T any](a, b *List[T], eq func(x, y T) bool) bool {
	if a.count != b.count {
		return false
	}
	for x, y := a.head.next, b.head.next; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// Compare compares a and b lexicographically. The result is -1, 0 or +1.
// A list that is a proper prefix of the other is the smaller one.
func Compare[T constraints.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, func(x, y T) int {
		switch {
		case x < y:
			return -1
		case y < x:
			return +1
		}
		return 0
	})
}

// CompareFunc is Compare with a caller supplied element comparison.
func CompareFunc[T any](a, b *List[T], cmp func(x, y T) int) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := cmp(x.value, y.value); c != 0 {
			return c
		}
	}
	switch {
	case x == nil && y != nil:
		return -1
	case x != nil && y == nil:
		return +1
	}
	return 0
}

// Less reports whether a sorts before b.
func Less[T constraints.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual is Less(a, b) || Equal(a, b).
func LessOrEqual[T constraints.Ordered](a, b *List[T]) bool {
	return Less(a, b) || Equal(a, b)
}

// Greater is !LessOrEqual(a, b).
func Greater[T constraints.Ordered](a, b *List[T]) bool {
	return !LessOrEqual(a, b)
}

// GreaterOrEqual is !Less(a, b).
func GreaterOrEqual[T constraints.Ordered](a, b *List[T]) bool {
	return !Less(a, b)
}
