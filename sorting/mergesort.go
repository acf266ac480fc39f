package sorting

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/algotrace/trace"
)

// MergeSort sorts a copy of a ascending and narrates every step.
func MergeSort(a []int, opts ...trace.Option) ([]int, trace.Trace, error) {
	return MergeSortFunc(a, cmp.Compare[int], opts...)
}

// MergeSortFunc sorts a copy of a by compare (negative when x < y) with a
// stable top-down merge sort. The input is never mutated.
//
// Steps: initial; for every range of length >= 2 a divide at floor(len/2),
// for every range of length <= 1 a base-case; while merging, one compare per
// element placed while both halves are non-empty and one take per leftover
// element; merge-complete once the merged run is written back at its absolute
// position; finally sorted.
func MergeSortFunc[T any](a []T, compare func(x, y T) int, opts ...trace.Option) ([]T, trace.Trace, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, nil, err
	}
	if compare == nil {
		return nil, nil, ErrNilCompare
	}

	m := &merger[T]{work: slices.Clone(a), cmp: compare, em: em}
	if err = em.Emit(KindInitial, m.state(0, 0, len(m.work)), "initial array of %d element(s)", len(m.work)); err != nil {
		return nil, em.Trace(), err
	}
	if err = m.sort(0, len(m.work)); err != nil {
		return nil, em.Trace(), err
	}
	if err = em.Emit(KindSorted, m.state(0, 0, len(m.work)), "sorted %d element(s)", len(m.work)); err != nil {
		return nil, em.Trace(), err
	}

	return m.work, em.Trace(), nil
}

// merger carries the working array across the recursion.
type merger[T any] struct {
	work []T
	cmp  func(x, y T) int
	em   *trace.Emitter
}

func (m *merger[T]) state(lo, mid, hi int) State[T] {
	return State[T]{Array: slices.Clone(m.work), Lo: lo, Mid: mid, Hi: hi, I: -1, J: -1}
}

func (m *merger[T]) sort(lo, hi int) error {
	if hi-lo <= 1 {
		return m.em.Emit(KindBaseCase, m.state(lo, lo, hi), "[%d..%d) has %d element(s): already sorted", lo, hi, hi-lo)
	}

	mid := lo + (hi-lo)/2
	st := m.state(lo, mid, hi)
	st.Left, st.Right = slices.Clone(m.work[lo:mid]), slices.Clone(m.work[mid:hi])
	if err := m.em.Emit(KindDivide, st, "split [%d..%d) at %d", lo, hi, mid); err != nil {
		return err
	}
	if err := m.sort(lo, mid); err != nil {
		return err
	}
	if err := m.sort(mid, hi); err != nil {
		return err
	}
	return m.merge(lo, mid, hi)
}

func (m *merger[T]) merge(lo, mid, hi int) error {
	left := slices.Clone(m.work[lo:mid])
	right := slices.Clone(m.work[mid:hi])
	merged := make([]T, 0, hi-lo)

	step := func(kind trace.Kind, i, j int, took Side, format string, args ...any) error {
		st := m.state(lo, mid, hi)
		st.Left, st.Right, st.Merged = left, right, slices.Clone(merged)
		st.I, st.J, st.Took = i, j, took
		return m.em.Emit(kind, st, format, args...)
	}

	i, j := 0, 0
	for i < len(left) && j < len(right) {
		li, rj := i, j
		took := SideLeft
		if m.cmp(left[i], right[j]) <= 0 {
			merged = append(merged, left[i])
			i++
		} else {
			merged = append(merged, right[j])
			took = SideRight
			j++
		}
		if err := step(KindCompare, lo+li, mid+rj, took,
			"compare left[%d] with right[%d]: take from %s", li, rj, took); err != nil {
			return err
		}
	}
	for ; i < len(left); i++ {
		merged = append(merged, left[i])
		if err := step(KindTake, lo+i, -1, SideLeft, "take leftover left[%d]", i); err != nil {
			return err
		}
	}
	for ; j < len(right); j++ {
		merged = append(merged, right[j])
		if err := step(KindTake, -1, mid+j, SideRight, "take leftover right[%d]", j); err != nil {
			return err
		}
	}

	copy(m.work[lo:hi], merged)
	st := m.state(lo, mid, hi)
	st.Merged = slices.Clone(merged)
	return m.em.Emit(KindMergeComplete, st, "merged [%d..%d)", lo, hi)
}
