package forwardlist

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestLiveNodesInsertErase(t *testing.T) {
	base := LiveNodes()

	l := New(1, 2, 3)
	assert.Equal(t, base+3, LiveNodes())

	l.PushFront(0)
	l.InsertAfter(l.Begin(), 9)
	assert.Equal(t, base+5, LiveNodes())

	l.PopFront()
	l.EraseAfter(l.BeforeBegin())
	assert.Equal(t, base+3, LiveNodes())

	l.Clear()
	assert.Equal(t, base, LiveNodes())
}

func TestLiveNodesAssign(t *testing.T) {
	base := LiveNodes()

	dst, src := New(1, 2, 3, 4), New(5, 6)
	dst.Assign(src)
	assert.Equal(t, base+4, LiveNodes())

	c := dst.Clone()
	assert.Equal(t, base+6, LiveNodes())

	Swap(c, src)
	assert.Equal(t, base+6, LiveNodes())

	dst.Clear()
	src.Clear()
	c.Clear()
	assert.Equal(t, base, LiveNodes())
}

// Read-only traversal of a shared list is safe; every goroutine clones
// and mutates only its own copy.
func TestConcurrentClone(t *testing.T) {
	base := LiveNodes()
	n := 1 << 10
	src := New[int]()
	it := src.BeforeBegin()
	for i := 0; i < n; i++ {
		it = src.InsertAfter(it, i)
	}

	p := runtime.NumCPU()
	sums := make([]int, p)
	walked := make([]int, p)

	var g errgroup.Group
	for i := 0; i < p; i++ {
		g.Go(func() error {
			for it := src.CBeforeBegin().Next(); !it.IsEnd(); it = it.Next() {
				walked[i] += it.Value()
			}

			c := src.Clone()
			defer c.Clear()

			c.PushFront(i)
			for v := range c.All() {
				sums[i] += v
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i, sum := range sums {
		assert.Equal(t, (n-1)*n/2+i, sum)
		assert.Equal(t, (n-1)*n/2, walked[i])
	}
	assert.Equal(t, n, src.Len())
	assert.Equal(t, base+int64(n), LiveNodes())

	src.Clear()
	assert.Equal(t, base, LiveNodes())
}
