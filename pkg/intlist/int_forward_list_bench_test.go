package intlist

import (
	"testing"
)

var Sum int

func BenchmarkSum(b *testing.B) {
	list := NewIntList()
	for i := 0; i < 1<<10; i++ {
		list.PushFront(i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Sum = list.Sum()
	}
}

func BenchmarkSliceSum(b *testing.B) {
	values := make([]int, 0, 1<<10)
	for i := 0; i < 1<<10; i++ {
		values = append(values, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := 0
		for _, v := range values {
			s += v
		}
		Sum = s
	}
}
