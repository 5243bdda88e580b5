package scan

import (
	"fmt"
	"runtime"
	"testing"
)

var benchSink bool

// benchSequence builds a slice with the match placed at the midpoint, the
// average-case layout used by the sweep harness.
func benchSequence(n int) []int {
	seq := make([]int, n)
	for i := range seq {
		seq[i] = 1 + (i%2)*2
	}
	seq[n/2] = 2
	return seq
}

func BenchmarkAnyMatch(b *testing.B) {
	seq := benchSequence(1 << 20)
	p := runtime.GOMAXPROCS(0)

	for _, k := range []int{1, 2, p, 2 * p, 4 * p} {
		b.Run(fmt.Sprintf("k=%d", k), func(b *testing.B) {
			runtime.GC()
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				found, err := AnyMatch(seq, k, isTwo)
				if err != nil {
					b.Fatal(err)
				}
				benchSink = found
			}
		})
	}
}

func BenchmarkReferenceStrategies(b *testing.B) {
	seq := benchSequence(1 << 20)

	strategies := []struct {
		name string
		fn   func([]int, Predicate) bool
	}{
		{"sequential", Sequential},
		{"range-sequential", RangeSequential},
		{"range-parallel", RangeParallel},
		{"range-speculative", RangeSpeculative},
	}

	for _, s := range strategies {
		b.Run(s.name, func(b *testing.B) {
			runtime.GC()
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				benchSink = s.fn(seq, isTwo)
			}
		})
	}
}
