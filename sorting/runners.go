package sorting

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algotrace/trace"
)

// Algorithms lists the comparison runners in Compare order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgoBubble, AlgoSelection, AlgoMerge}
}

// RunnerFunc is the signature shared by Bubble, Selection and MergeRun.
type RunnerFunc func(a []int, opts ...trace.Option) (*Run, error)

// Runner returns the runner registered under name.
func Runner(name Algorithm) (RunnerFunc, error) {
	switch name {
	case AlgoBubble:
		return Bubble, nil
	case AlgoSelection:
		return Selection, nil
	case AlgoMerge:
		return MergeRun, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Bubble sorts a copy of a with classic bubble sort: n-1 passes, each
// comparing adjacent pairs up to the already-settled tail. There is no early
// exit, so comparisons are always n(n-1)/2.
func Bubble(a []int, opts ...trace.Option) (*Run, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, err
	}
	r := &Run{Algorithm: AlgoBubble, Input: slices.Clone(a)}
	arr := slices.Clone(a)
	n := len(arr)

	for i := 0; i < n-1; i++ {
		for j := 0; j < n-i-1; j++ {
			r.Comparisons++
			if err = em.Emit(KindCompare, Cells{I: j, J: j + 1, Array: slices.Clone(arr)},
				"compare a[%d]=%d with a[%d]=%d", j, arr[j], j+1, arr[j+1]); err != nil {
				return nil, err
			}
			if arr[j] > arr[j+1] {
				arr[j], arr[j+1] = arr[j+1], arr[j]
				r.Swaps++
				if err = em.Emit(KindSwap, Cells{I: j, J: j + 1, Array: slices.Clone(arr)},
					"swap a[%d] and a[%d]", j, j+1); err != nil {
					return nil, err
				}
			}
		}
		if err = em.Emit(KindPassDone, Cells{I: n - i - 1, J: -1, Array: slices.Clone(arr)},
			"pass %d done: a[%d]=%d is in place", i+1, n-i-1, arr[n-i-1]); err != nil {
			return nil, err
		}
	}

	return finish(em, r, arr)
}

// Selection sorts a copy of a with selection sort, swapping at most once per
// pass and only when the minimum is not already in place.
func Selection(a []int, opts ...trace.Option) (*Run, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, err
	}
	r := &Run{Algorithm: AlgoSelection, Input: slices.Clone(a)}
	arr := slices.Clone(a)
	n := len(arr)

	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			r.Comparisons++
			if err = em.Emit(KindCompare, Cells{I: minIdx, J: j, Array: slices.Clone(arr)},
				"compare a[%d]=%d with current minimum a[%d]=%d", j, arr[j], minIdx, arr[minIdx]); err != nil {
				return nil, err
			}
			if arr[j] < arr[minIdx] {
				minIdx = j
			}
		}
		if minIdx != i {
			arr[i], arr[minIdx] = arr[minIdx], arr[i]
			r.Swaps++
			if err = em.Emit(KindSwap, Cells{I: i, J: minIdx, Array: slices.Clone(arr)},
				"swap a[%d] and a[%d]", i, minIdx); err != nil {
				return nil, err
			}
		}
		if err = em.Emit(KindPassDone, Cells{I: i, J: -1, Array: slices.Clone(arr)},
			"pass %d done: a[%d]=%d is in place", i+1, i, arr[i]); err != nil {
			return nil, err
		}
	}

	return finish(em, r, arr)
}

// MergeRun sorts a copy of a with index-based top-down merge sort over the
// inclusive range [left, right], split at floor((left+right)/2).
func MergeRun(a []int, opts ...trace.Option) (*Run, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, err
	}
	r := &Run{Algorithm: AlgoMerge, Input: slices.Clone(a)}
	arr := slices.Clone(a)

	var sortRange func(left, right int) error
	sortRange = func(left, right int) error {
		if left >= right {
			return nil
		}
		mid := (left + right) / 2
		if err := sortRange(left, mid); err != nil {
			return err
		}
		if err := sortRange(mid+1, right); err != nil {
			return err
		}
		return mergeRange(em, r, arr, left, mid, right)
	}
	if err = sortRange(0, len(arr)-1); err != nil {
		return nil, err
	}

	return finish(em, r, arr)
}

func mergeRange(em *trace.Emitter, r *Run, arr []int, left, mid, right int) error {
	r.Merges++
	if err := em.Emit(KindMerge, Cells{I: left, J: right, Array: slices.Clone(arr)},
		"merge [%d..%d] and [%d..%d]", left, mid, mid+1, right); err != nil {
		return err
	}

	lpart := slices.Clone(arr[left : mid+1])
	rpart := slices.Clone(arr[mid+1 : right+1])
	write := func(k, v int) error {
		arr[k] = v
		r.Writes++
		return em.Emit(KindWrite, Cells{I: k, J: -1, Array: slices.Clone(arr)}, "write %d to a[%d]", v, k)
	}

	i, j, k := 0, 0, left
	for i < len(lpart) && j < len(rpart) {
		r.Comparisons++
		if err := em.Emit(KindCompare, Cells{I: left + i, J: mid + 1 + j, Array: slices.Clone(arr)},
			"compare %d with %d", lpart[i], rpart[j]); err != nil {
			return err
		}
		v := rpart[j]
		if lpart[i] <= rpart[j] {
			v = lpart[i]
			i++
		} else {
			j++
		}
		if err := write(k, v); err != nil {
			return err
		}
		k++
	}
	for ; i < len(lpart); i, k = i+1, k+1 {
		if err := write(k, lpart[i]); err != nil {
			return err
		}
	}
	for ; j < len(rpart); j, k = j+1, k+1 {
		if err := write(k, rpart[j]); err != nil {
			return err
		}
	}
	return nil
}

func finish(em *trace.Emitter, r *Run, arr []int) (*Run, error) {
	r.Sorted = arr
	if err := em.Emit(KindSorted, Cells{I: -1, J: -1, Array: slices.Clone(arr)},
		"%s sort done: %d comparisons, %d swaps, %d merges, %d writes",
		r.Algorithm, r.Comparisons, r.Swaps, r.Merges, r.Writes); err != nil {
		return nil, err
	}
	r.Trace = em.Trace()
	return r, nil
}

// Compare runs Bubble, Selection and MergeRun concurrently, each on its own
// copy of a, and returns their runs in Algorithms order. opts apply to every
// runner; an OnStep sink is therefore called from three goroutines and must
// be safe for concurrent use. The first failure cancels the others.
func Compare(ctx context.Context, a []int, opts ...trace.Option) ([]*Run, error) {
	algos := Algorithms()
	runs := make([]*Run, len(algos))
	g, gctx := errgroup.WithContext(ctx)

	for idx, name := range algos {
		run, _ := Runner(name)
		input := slices.Clone(a)
		g.Go(func() error {
			r, err := run(input, append(slices.Clone(opts), trace.WithContext(gctx))...)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			runs[idx] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return runs, nil
}
