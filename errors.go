package forwardlist

import (
	"github.com/pkg/errors"
)

// Contract violations. The list never returns these; it panics with them
// (wrapped with a stack) so a caller that recovers can match with errors.Is.
var (
	ErrEmptyList    = errors.New("forwardlist: list is empty")
	ErrNoSuccessor  = errors.New("forwardlist: position has no successor")
	ErrEndIterator  = errors.New("forwardlist: iterator is at end")
	ErrBeforeBegin  = errors.New("forwardlist: iterator is before begin")
	ErrReleasedNode = errors.New("forwardlist: iterator refers to a removed element")
)

func violated(err error) {
	panic(errors.WithStack(err))
}
