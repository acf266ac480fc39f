package sorting_test

import (
	"cmp"
	"context"
	"math/rand"
	"slices"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/sorting"
	"github.com/katalvlaran/algotrace/trace"
)

func TestMergeSort_Basic(t *testing.T) {
	in := []int{38, 27, 43, 3, 9, 82, 10}
	out, tr, err := sorting.MergeSort(in)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 9, 10, 27, 38, 43, 82}, out)
	assert.Equal(t, []int{38, 27, 43, 3, 9, 82, 10}, in, "input untouched")

	assert.Equal(t, sorting.KindInitial, tr[0].Kind)
	last, _ := tr.Last()
	assert.Equal(t, sorting.KindSorted, last.Kind)
	assert.Equal(t, 6, tr.Count(sorting.KindDivide))
	assert.Equal(t, 7, tr.Count(sorting.KindBaseCase))
	assert.Equal(t, 6, tr.Count(sorting.KindMergeComplete))

	first := tr[1].Payload.(sorting.State[int])
	assert.Equal(t, sorting.KindDivide, tr[1].Kind)
	assert.Equal(t, 0, first.Lo)
	assert.Equal(t, 3, first.Mid)
	assert.Equal(t, 7, first.Hi)
	assert.Equal(t, []int{38, 27, 43}, first.Left)
	assert.Equal(t, []int{3, 9, 82, 10}, first.Right)
}

// Every payload carries a full snapshot, and merge-complete snapshots show the
// merged run at its absolute position.
func TestMergeSort_Snapshots(t *testing.T) {
	in := []int{5, 2, 4, 6, 1, 3}
	_, tr, err := sorting.MergeSort(in)
	require.NoError(t, err)

	placed := 0
	for _, s := range tr {
		st := s.Payload.(sorting.State[int])
		require.Len(t, st.Array, len(in), "step %d", s.Seq)
		switch s.Kind {
		case sorting.KindDivide:
			placed += st.Hi - st.Lo
		case sorting.KindCompare, sorting.KindTake:
			placed--
		case sorting.KindMergeComplete:
			assert.Equal(t, st.Merged, st.Array[st.Lo:st.Hi])
			assert.True(t, slices.IsSorted(st.Merged))
		}
	}
	assert.Zero(t, placed, "one compare or take per merged element")

	tr[0].Payload.(sorting.State[int]).Array[0] = 99
	assert.NotEqual(t, 99, tr[1].Payload.(sorting.State[int]).Array[0])
}

func TestMergeSort_CompareRecordsCandidates(t *testing.T) {
	_, tr, err := sorting.MergeSort([]int{2, 1})
	require.NoError(t, err)
	assert.Equal(t, []trace.Kind{
		sorting.KindInitial, sorting.KindDivide, sorting.KindBaseCase, sorting.KindBaseCase,
		sorting.KindCompare, sorting.KindTake, sorting.KindMergeComplete, sorting.KindSorted,
	}, tr.Kinds())

	st := tr[4].Payload.(sorting.State[int])
	assert.Equal(t, 0, st.I)
	assert.Equal(t, 1, st.J)
	assert.Equal(t, sorting.SideRight, st.Took)
	assert.Equal(t, []int{1}, st.Merged)
}

func TestMergeSort_Trivial(t *testing.T) {
	for _, in := range [][]int{nil, {}, {7}} {
		out, tr, err := sorting.MergeSort(in)
		require.NoError(t, err)
		assert.Len(t, out, len(in))
		assert.Equal(t, []trace.Kind{sorting.KindInitial, sorting.KindBaseCase, sorting.KindSorted}, tr.Kinds())
	}
}

func TestMergeSortFunc_Stable(t *testing.T) {
	type card struct {
		Rank int
		Tag  int
	}
	rng := rand.New(rand.NewSource(5))
	in := make([]card, 60)
	for i := range in {
		in[i] = card{Rank: rng.Intn(6), Tag: i}
	}

	out, _, err := sorting.MergeSortFunc(in, func(x, y card) int { return cmp.Compare(x.Rank, y.Rank) },
		trace.WithDiscard())
	require.NoError(t, err)

	want := slices.Clone(in)
	slices.SortStableFunc(want, func(x, y card) int { return cmp.Compare(x.Rank, y.Rank) })
	assert.Equal(t, want, out)
}

func TestMergeSortFunc_NilCompare(t *testing.T) {
	_, _, err := sorting.MergeSortFunc([]int{1}, nil)
	assert.ErrorIs(t, err, sorting.ErrNilCompare)
	assert.ErrorIs(t, err, trace.ErrInvalidInput)
}

func TestMergeSort_RandomPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for round := 0; round < 50; round++ {
		in, err := sorting.RandomArray(rng, 1+rng.Intn(30))
		require.NoError(t, err)
		out, _, err := sorting.MergeSort(in, trace.WithDiscard())
		require.NoError(t, err)

		want := slices.Clone(in)
		slices.Sort(want)
		assert.Equal(t, want, out)
	}
}

func TestRunners_Counters(t *testing.T) {
	in := []int{5, 1, 4, 2, 8}

	b, err := sorting.Bubble(in)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 5, 8}, b.Sorted)
	assert.Equal(t, 10, b.Comparisons)
	assert.Equal(t, 4, b.Swaps, "one swap per inversion")
	assert.Equal(t, 4, b.Trace.Count(sorting.KindPassDone))

	s, err := sorting.Selection(in)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 5, 8}, s.Sorted)
	assert.Equal(t, 10, s.Comparisons)
	assert.Equal(t, 2, s.Swaps)

	m, err := sorting.MergeRun(in)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 5, 8}, m.Sorted)
	assert.Equal(t, 8, m.Comparisons)
	assert.Equal(t, 4, m.Merges)
	assert.Equal(t, 12, m.Writes)
	assert.Equal(t, m.Writes, m.Trace.Count(sorting.KindWrite))

	assert.Equal(t, []int{5, 1, 4, 2, 8}, in)
	assert.Equal(t, in, b.Input)
}

func TestRunners_EmptyAndSingle(t *testing.T) {
	for _, name := range sorting.Algorithms() {
		run, err := sorting.Runner(name)
		require.NoError(t, err)
		for _, in := range [][]int{{}, {3}} {
			r, err := run(in)
			require.NoError(t, err, name)
			assert.Equal(t, in, r.Sorted)
			assert.Zero(t, r.Comparisons)
			assert.Equal(t, 1, r.Trace.Len())
		}
	}

	_, err := sorting.Runner("quick")
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func TestCompare(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	in, err := sorting.RandomArray(rng, sorting.DefaultRandomSize)
	require.NoError(t, err)

	var steps atomic.Int64
	runs, err := sorting.Compare(context.Background(), in,
		trace.WithOnStep(func(trace.Step) error {
			steps.Add(1)
			return nil
		}))
	require.NoError(t, err)
	require.Len(t, runs, 3)

	want := slices.Clone(in)
	slices.Sort(want)
	total := 0
	for i, r := range runs {
		assert.Equal(t, sorting.Algorithms()[i], r.Algorithm)
		assert.Equal(t, want, r.Sorted)
		total += r.Trace.Len()
	}
	assert.Equal(t, int64(total), steps.Load())

	n := len(in)
	assert.Equal(t, n*(n-1)/2, runs[0].Comparisons)
	assert.Equal(t, n*(n-1)/2, runs[1].Comparisons)
	assert.Less(t, runs[2].Comparisons, runs[0].Comparisons)
	assert.Equal(t, n-1, runs[2].Merges)
}

func TestCompare_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sorting.Compare(ctx, []int{3, 2, 1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRandomArray(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	a, err := sorting.RandomArray(rng, 200)
	require.NoError(t, err)
	require.Len(t, a, 200)
	for _, v := range a {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 100)
	}

	_, err = sorting.RandomArray(rng, 0)
	assert.ErrorIs(t, err, sorting.ErrBadSize)
}
