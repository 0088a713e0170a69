package accum

import (
	"testing"

	"github.com/rony4d/go-accumulator/store"
)

// BenchmarkAccumulator compares backing stores on a read-sized push, then
// message-sized pops from both ends.
func BenchmarkAccumulator(b *testing.B) {
	reads := [][]byte{make([]byte, 512), make([]byte, 1500), make([]byte, 64)}

	run := func(b *testing.B, a *testAccumulator) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			for _, r := range reads {
				a.PushBack(r)
			}
			if _, err := a.PopFrontN(1000); err != nil {
				b.Fatal(err)
			}
			if _, err := a.PopBackN(a.Len()); err != nil {
				b.Fatal(err)
			}
		}
	}

	b.Run("Deque", func(b *testing.B) {
		run(b, New[[]byte](Store[[]byte](store.NewDeque[[]byte](4))))
	})
	b.Run("Ring", func(b *testing.B) {
		run(b, New[[]byte](Store[[]byte](store.NewRing[[]byte](16))))
	})
	b.Run("Slice", func(b *testing.B) {
		run(b, New[[]byte](Store[[]byte](store.NewSlice[[]byte](16))))
	})
}

// BenchmarkAt measures flat indexing across many small chunks.
func BenchmarkAt(b *testing.B) {
	a := New[[]byte](Store[[]byte](store.NewRing[[]byte](1024)))
	for i := 0; i < 1024; i++ {
		a.PushBack(make([]byte, 16))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := a.At(i % a.Len()); err != nil {
			b.Fatal(err)
		}
	}
}
