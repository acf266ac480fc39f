package search

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/algotrace/trace"
)

// Binary searches the ascending sequence seq for target.
//
// Each iteration emits a compare step for (low, mid, high), then either the
// terminal found step or a narrow step with the updated bracket. When the
// bracket empties (low > high) the terminal not-found step is emitted.
//
// Returns ErrNotSorted before any step if seq is not ascending.
//
// Complexity: O(log N) iterations.
func Binary(seq []int, target int, opts ...trace.Option) (*Result, trace.Trace, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, nil, err
	}
	if !slices.IsSorted(seq) {
		return nil, nil, ErrNotSorted
	}

	res := &Result{Target: target, Index: -1}
	low, high := 0, len(seq)-1
	for low <= high {
		mid := low + (high-low)/2
		v := seq[mid]
		res.Iterations++
		if err = em.Emit(KindCompare, Bracket{Low: low, Mid: mid, High: high, Value: v},
			"compare seq[%d]=%d with %d in [%d..%d]", mid, v, target, low, high); err != nil {
			return nil, em.Trace(), err
		}

		switch {
		case v == target:
			res.Found, res.Index = true, mid
			if err = em.Emit(KindFound, Bracket{Low: low, Mid: mid, High: high, Value: v},
				"found %d at index %d after %d comparisons", target, mid, res.Iterations); err != nil {
				return nil, em.Trace(), err
			}
			return res, em.Trace(), nil
		case v < target:
			low = mid + 1
			err = em.Emit(KindNarrowRight, Bracket{Low: low, Mid: mid, High: high, Value: v},
				"%d < %d: discard left half, search [%d..%d]", v, target, low, high)
		default:
			high = mid - 1
			err = em.Emit(KindNarrowLeft, Bracket{Low: low, Mid: mid, High: high, Value: v},
				"%d > %d: discard right half, search [%d..%d]", v, target, low, high)
		}
		if err != nil {
			return nil, em.Trace(), err
		}
	}

	if err = em.Emit(KindNotFound, Bracket{Low: low, Mid: -1, High: high, Value: target},
		"%d not found after %d comparisons", target, res.Iterations); err != nil {
		return nil, em.Trace(), err
	}
	return res, em.Trace(), nil
}

// Linear scans seq from index 0 and stops at the first element equal to target.
// It has no ordering precondition.
//
// Complexity: O(N) iterations.
func Linear(seq []int, target int, opts ...trace.Option) (*Result, trace.Trace, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, nil, err
	}

	res := &Result{Target: target, Index: -1}
	for i, v := range seq {
		res.Iterations++
		if err = em.Emit(KindCheck, Probe{Index: i, Value: v}, "check seq[%d]=%d", i, v); err != nil {
			return nil, em.Trace(), err
		}
		if v == target {
			res.Found, res.Index = true, i
			if err = em.Emit(KindFound, Probe{Index: i, Value: v},
				"found %d at index %d after %d checks", target, i, res.Iterations); err != nil {
				return nil, em.Trace(), err
			}
			return res, em.Trace(), nil
		}
	}

	if err = em.Emit(KindNotFound, Probe{Index: -1, Value: target},
		"%d not found after %d checks", target, res.Iterations); err != nil {
		return nil, em.Trace(), err
	}
	return res, em.Trace(), nil
}

// Race runs Binary and Linear side by side over private copies of seq and
// reports which needed fewer iterations. The runners share nothing, so the
// only coordination is waiting for both; the first failure cancels the other.
func Race(ctx context.Context, seq []int, target int) (*RaceResult, error) {
	g, gctx := errgroup.WithContext(ctx)
	out := &RaceResult{}

	binSeq := slices.Clone(seq)
	linSeq := slices.Clone(seq)

	g.Go(func() error {
		res, tr, err := Binary(binSeq, target, trace.WithContext(gctx))
		out.Binary, out.BinaryTrace = res, tr
		return err
	})
	g.Go(func() error {
		res, tr, err := Linear(linSeq, target, trace.WithContext(gctx))
		out.Linear, out.LinearTrace = res, tr
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	switch {
	case out.Binary.Iterations < out.Linear.Iterations:
		out.Winner = WinnerBinary
	case out.Linear.Iterations < out.Binary.Iterations:
		out.Winner = WinnerLinear
	default:
		out.Winner = WinnerTie
	}

	return out, nil
}
