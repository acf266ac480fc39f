package twopointer

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/algotrace/trace"
)

// PairSum collects the pairs of a sorted array that sum to target.
//
// Sortedness is the caller's obligation: unsorted input fails with
// ErrNotSorted unless po.AutoSort is set, in which case a sorted copy is used
// and a presort step records it. The caller's slice is never modified.
//
// Each iteration emits compare, then match (both pointers move), move-left
// (sum too small) or move-right (sum too large). The walk ends when the
// pointers meet, with the terminal done step.
//
// Complexity: O(N), plus O(N log N) when AutoSort sorts.
func PairSum(arr []int, target int, po PairSumOptions, opts ...trace.Option) (*PairResult, trace.Trace, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, nil, err
	}
	if len(arr) < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrTooShort, len(arr))
	}

	a := slices.Clone(arr)
	res := &PairResult{Array: a, Target: target, Pairs: []Pair{}}
	if !slices.IsSorted(a) {
		if !po.AutoSort {
			return nil, nil, ErrNotSorted
		}
		slices.Sort(a)
		res.Presorted = true
		if err = em.Emit(KindPresort, slices.Clone(a), "input was unsorted: sorted to %v", a); err != nil {
			return nil, em.Trace(), err
		}
	}

	left, right := 0, len(a)-1
	for left < right {
		sum := a[left] + a[right]
		p := Pointers{Left: left, Right: right, A: a[left], B: a[right], Sum: sum}
		res.Comparisons++
		if err = em.Emit(KindCompare, p, "a[%d]+a[%d] = %d+%d = %d (target %d)",
			left, right, a[left], a[right], sum, target); err != nil {
			return nil, em.Trace(), err
		}

		switch {
		case sum == target:
			res.Pairs = append(res.Pairs, Pair(p))
			err = em.Emit(KindMatch, p, "pair (%d, %d) sums to %d", a[left], a[right], target)
			left++
			right--
		case sum < target:
			err = em.Emit(KindMoveLeft, p, "%d < %d: move left pointer right", sum, target)
			left++
		default:
			err = em.Emit(KindMoveRight, p, "%d > %d: move right pointer left", sum, target)
			right--
		}
		if err != nil {
			return nil, em.Trace(), err
		}
	}

	if err = em.Emit(KindDone, slices.Clone(res.Pairs), "found %d pair(s) summing to %d", len(res.Pairs), target); err != nil {
		return nil, em.Trace(), err
	}
	return res, em.Trace(), nil
}
