package dp

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// Strategies lists the Fibonacci strategies.
func Strategies() []Strategy {
	return []Strategy{Naive, Memoized, Tabulated}
}

// ParseStrategy maps a name to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Fibonacci computes F(n) with F(0)=0, F(1)=1 using strategy.
//
//   - Naive emits a call step per invocation: 2*F(n+1)-1 of them.
//     Requires n <= MaxNaiveN.
//   - Memoized emits call for every invocation that computes and cache-hit
//     for every lookup served from the memo; fib(n-1) is evaluated before
//     fib(n-2). For n >= 1 that is 2n-1 invocations.
//   - Tabulated emits one fill step per index 0..n.
//
// Every strategy ends with the terminal result step and they all agree on
// the value. Requires 0 <= n <= MaxN.
func Fibonacci(n int, strategy Strategy, opts ...trace.Option) (*FibResult, trace.Trace, error) {
	em, err := trace.NewEmitter(opts...)
	if err != nil {
		return nil, nil, err
	}
	if n < 0 || n > MaxN {
		return nil, nil, fmt.Errorf("%w: n=%d, want 0..%d", ErrBadN, n, MaxN)
	}

	res := &FibResult{N: n, Strategy: strategy}
	switch strategy {
	case Naive:
		if n > MaxNaiveN {
			return nil, nil, fmt.Errorf("%w: n=%d, naive strategy allows 0..%d", ErrBadN, n, MaxNaiveN)
		}
		res.Value, err = fibNaive(em, res, n, 0)
	case Memoized:
		memo := make(map[int]int64, n+1)
		res.Value, err = fibMemo(em, res, memo, n, 0)
		res.Computed = len(memo)
	case Tabulated:
		res.Value, err = fibTable(em, res, n)
		res.Computed = res.Calls
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
	if err != nil {
		return nil, em.Trace(), err
	}

	if err = em.Emit(KindResult, *res, "F(%d) = %d via %s: %d call(s), %d cache hit(s)",
		n, res.Value, strategy, res.Calls, res.CacheHits); err != nil {
		return nil, em.Trace(), err
	}
	return res, em.Trace(), nil
}

func fibNaive(em *trace.Emitter, res *FibResult, n, depth int) (int64, error) {
	res.Calls++
	if err := em.Emit(KindCall, FibCall{N: n, Depth: depth}, "compute F(%d) recursively", n); err != nil {
		return 0, err
	}
	if n <= 1 {
		return int64(n), nil
	}
	a, err := fibNaive(em, res, n-1, depth+1)
	if err != nil {
		return 0, err
	}
	b, err := fibNaive(em, res, n-2, depth+1)
	if err != nil {
		return 0, err
	}
	return a + b, nil
}

func fibMemo(em *trace.Emitter, res *FibResult, memo map[int]int64, n, depth int) (int64, error) {
	res.Calls++
	if v, ok := memo[n]; ok {
		res.CacheHits++
		return v, em.Emit(KindCacheHit, FibCall{N: n, Depth: depth, Value: v}, "F(%d) = %d from cache", n, v)
	}
	if err := em.Emit(KindCall, FibCall{N: n, Depth: depth}, "compute F(%d) with memoization", n); err != nil {
		return 0, err
	}
	if n <= 1 {
		memo[n] = int64(n)
		return memo[n], nil
	}
	a, err := fibMemo(em, res, memo, n-1, depth+1)
	if err != nil {
		return 0, err
	}
	b, err := fibMemo(em, res, memo, n-2, depth+1)
	if err != nil {
		return 0, err
	}
	memo[n] = a + b
	return memo[n], nil
}

func fibTable(em *trace.Emitter, res *FibResult, n int) (int64, error) {
	table := make([]int64, n+1)
	for i := 0; i <= n; i++ {
		switch i {
		case 0, 1:
			table[i] = int64(i)
		default:
			table[i] = table[i-1] + table[i-2]
		}
		res.Calls++
		if err := em.Emit(KindFill, FibFill{Index: i, Value: table[i]}, "F(%d) = %d", i, table[i]); err != nil {
			return 0, err
		}
	}
	return table[n], nil
}
