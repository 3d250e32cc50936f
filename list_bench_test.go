package forwardlist

import (
	"container/list"
	"testing"
)

var (
	resultInt  int
	resultHash uint64
)

func BenchmarkPushFront(b *testing.B) {
	var l List[int]
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.PushFront(i)
	}
	l.Clear()
}

func BenchmarkStdListPushFront(b *testing.B) {
	l := list.New()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.PushFront(i)
	}
}

func BenchmarkInsertEraseAfter(b *testing.B) {
	l := New(1, 2, 3)
	it := l.Begin()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.InsertAfter(it, i)
		l.EraseAfter(it)
	}
}

func BenchmarkIterate_10(b *testing.B)  { iterate(b, 10) }
func BenchmarkIterate_12(b *testing.B)  { iterate(b, 1<<12) }
func BenchmarkIterate_16(b *testing.B)  { iterate(b, 1<<16) }
func BenchmarkRangeAll_16(b *testing.B) { rangeAll(b, 1<<16) }

func iterate(b *testing.B, n int) {
	l := filled(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for it := l.CBegin(); !it.IsEnd(); it = it.Next() {
			resultInt += it.Value()
		}
	}
}

func rangeAll(b *testing.B, n int) {
	l := filled(n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for v := range l.All() {
			resultInt += v
		}
	}
}

func BenchmarkClone_12(b *testing.B) {
	l := filled(1 << 12)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := l.Clone()
		c.Clear()
	}
}

func BenchmarkHash_12(b *testing.B) {
	l := filled(1 << 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		resultHash = Hash(l)
	}
}

func filled(n int) *List[int] {
	l := New[int]()
	it := l.BeforeBegin()
	for i := 0; i < n; i++ {
		it = l.InsertAfter(it, i)
	}
	return l
}
