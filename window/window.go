package window

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// MaxSumWindow finds the window of k consecutive elements with the largest
// sum. One window step is emitted per position (len(a)-k+1 of them), then the
// terminal best step. Requires len(a) >= 2 and 1 <= k <= len(a).
func MaxSumWindow(a []int, k int, opts ...trace.Option) (*WindowResult, trace.Trace, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, nil, err
	}
	if len(a) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 values, got %d", ErrTooShort, len(a))
	}
	if k < 1 || k > len(a) {
		return nil, nil, fmt.Errorf("%w: k=%d, len=%d", ErrBadWindowSize, k, len(a))
	}

	sum := 0
	for _, v := range a[:k] {
		sum += v
	}
	bestStart, bestSum := 0, sum
	res := &WindowResult{Size: k}

	for start := 0; start+k <= len(a); start++ {
		if start > 0 {
			sum += a[start+k-1] - a[start-1]
			if sum > bestSum {
				bestStart, bestSum = start, sum
			}
		}
		res.Windows++
		end := start + k - 1
		if err = em.Emit(KindWindow, Frame{Start: start, End: end, Sum: sum, BestStart: bestStart, BestSum: bestSum},
			"window [%d..%d] sum %d (best %d at %d)", start, end, sum, bestSum, bestStart); err != nil {
			return nil, em.Trace(), err
		}
	}

	res.Start, res.End, res.Sum = bestStart, bestStart+k-1, bestSum
	res.Average = float64(bestSum) / float64(k)
	if err = em.Emit(KindBest, *res, "best window [%d..%d] sum %d, average %.2f",
		res.Start, res.End, res.Sum, res.Average); err != nil {
		return nil, em.Trace(), err
	}
	return res, em.Trace(), nil
}

// LongestIncreasingRun finds the longest strictly increasing stretch. For each
// i in 1..n-1 it emits extend when a[i] > a[i-1] and reset otherwise. Requires
// len(a) >= 2.
func LongestIncreasingRun(a []int, opts ...trace.Option) (*RunResult, trace.Trace, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, nil, err
	}
	if len(a) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 values, got %d", ErrTooShort, len(a))
	}

	runStart, runLen := 0, 0
	bestStart, bestLen := 0, 0
	for i := 1; i < len(a); i++ {
		kind := KindReset
		if a[i] > a[i-1] {
			kind = KindExtend
			runLen++
			if runLen > bestLen {
				bestStart, bestLen = runStart, runLen
			}
		} else {
			runStart, runLen = i, 0
		}

		st := RunState{Index: i, RunStart: runStart, RunLength: runLen, BestStart: bestStart, BestEnd: bestStart + bestLen}
		if kind == KindExtend {
			err = em.Emit(kind, st, "%d > %d: run [%d..%d] has %d gain(s)", a[i], a[i-1], runStart, i, runLen)
		} else {
			err = em.Emit(kind, st, "%d <= %d: run restarts at %d", a[i], a[i-1], i)
		}
		if err != nil {
			return nil, em.Trace(), err
		}
	}

	res := &RunResult{
		Start:  bestStart,
		End:    bestStart + bestLen,
		Gains:  bestLen,
		Length: bestLen + 1,
		Gain:   a[bestStart+bestLen] - a[bestStart],
	}
	if err = em.Emit(KindBest, *res, "longest increasing run [%d..%d]: %d gain(s), +%d",
		res.Start, res.End, res.Gains, res.Gain); err != nil {
		return nil, em.Trace(), err
	}
	return res, em.Trace(), nil
}

// MaxSubarray runs Kadane's algorithm. Index 0 emits start; every later index
// emits restart when the running sum before it was negative, extend otherwise.
// The first maximal subarray wins. Requires len(a) >= 1.
func MaxSubarray(a []int, opts ...trace.Option) (*SubarrayResult, trace.Trace, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, nil, err
	}
	if len(a) < 1 {
		return nil, nil, fmt.Errorf("%w: need at least 1 value", ErrTooShort)
	}

	cur, curStart := a[0], 0
	best, bestStart, bestEnd := a[0], 0, 0
	if err = em.Emit(KindStart, KadaneState{CurrentSum: cur, BestSum: best},
		"start with a[0]=%d", a[0]); err != nil {
		return nil, em.Trace(), err
	}

	for i := 1; i < len(a); i++ {
		kind := KindExtend
		if cur < 0 {
			kind = KindRestart
			cur, curStart = a[i], i
		} else {
			cur += a[i]
		}
		if cur > best {
			best, bestStart, bestEnd = cur, curStart, i
		}

		st := KadaneState{Index: i, CurrentSum: cur, CurStart: curStart, BestSum: best, BestStart: bestStart, BestEnd: bestEnd}
		if kind == KindRestart {
			err = em.Emit(kind, st, "running sum was negative: restart at a[%d]=%d", i, a[i])
		} else {
			err = em.Emit(kind, st, "extend with a[%d]=%d: sum %d (best %d)", i, a[i], cur, best)
		}
		if err != nil {
			return nil, em.Trace(), err
		}
	}

	res := &SubarrayResult{Start: bestStart, End: bestEnd, Sum: best, Length: bestEnd - bestStart + 1}
	if err = em.Emit(KindBest, *res, "max subarray [%d..%d] sum %d", res.Start, res.End, res.Sum); err != nil {
		return nil, em.Trace(), err
	}
	return res, em.Trace(), nil
}
