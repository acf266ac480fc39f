package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algotrace/sorting"
	"github.com/katalvlaran/algotrace/trace"
)

func BenchmarkMergeSort_Discard(b *testing.B) {
	in, _ := sorting.RandomArray(rand.New(rand.NewSource(1)), 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = sorting.MergeSort(in, trace.WithDiscard())
	}
}

func BenchmarkBubble(b *testing.B) {
	in, _ := sorting.RandomArray(rand.New(rand.NewSource(1)), 64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sorting.Bubble(in)
	}
}
