package scenario

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/dijkstra"
	"github.com/katalvlaran/algotrace/dp"
	"github.com/katalvlaran/algotrace/search"
	"github.com/katalvlaran/algotrace/sorting"
	"github.com/katalvlaran/algotrace/trace"
	"github.com/katalvlaran/algotrace/twopointer"
	"github.com/katalvlaran/algotrace/window"
)

// defaultSeed replaces a zero seed so that "no seed" is still reproducible.
const defaultSeed int64 = 1

// Rand returns the deterministic generator for s.Seed.
func (s *Scenario) Rand() *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Run executes the scenario. ctx bounds the run and is checked between
// steps; opts are forwarded to the engine after it. search-race ignores opts
// other than ctx.
func (s *Scenario) Run(ctx context.Context, opts ...trace.Option) (*Envelope, error) {
	var emitted atomic.Int64
	all := make([]trace.Option, 0, len(opts)+2)
	all = append(all, trace.WithContext(ctx))
	all = append(all, opts...)
	all = append(all, trace.WithOnStep(func(trace.Step) error {
		emitted.Add(1)
		return nil
	}))

	result, steps, err := s.dispatch(ctx, all)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Engine, err)
	}

	env := &Envelope{
		RunID:     NewRunID(),
		Name:      s.Name,
		Engine:    s.Engine,
		Result:    result,
		Steps:     steps,
		StepCount: int(emitted.Load()),
	}
	if race, ok := result.(*search.RaceResult); ok {
		env.StepCount = len(race.BinaryTrace) + len(race.LinearTrace)
	}

	return env, nil
}

func (s *Scenario) dispatch(ctx context.Context, opts []trace.Option) (any, trace.Trace, error) {
	switch s.Engine {
	case EngineBinarySearch, EngineLinearSearch, EngineSearchRace:
		return s.runSearch(ctx, opts)
	case EnginePalindrome:
		po := twopointer.DefaultPalindromeOptions()
		if s.IgnoreCase != nil {
			po.IgnoreCase = *s.IgnoreCase
		}
		if s.IgnoreNonAlnum != nil {
			po.IgnoreNonAlnum = *s.IgnoreNonAlnum
		}
		return wrap(twopointer.Palindrome(s.Text, po, opts...))
	case EnginePairSum:
		arr, target := s.Array, s.Target
		if s.Random {
			arr, target = twopointer.RandomPairs(s.Rand())
		}
		return wrap(twopointer.PairSum(arr, target, twopointer.PairSumOptions{AutoSort: s.AutoSort}, opts...))
	case EngineWindow:
		return s.runWindow(opts)
	case EngineMergeSort, EngineSortRunner, EngineSortCompare:
		return s.runSorting(ctx, opts)
	case EngineDijkstra:
		g, err := s.graph()
		if err != nil {
			return nil, nil, err
		}
		start, end := s.Start, s.End
		if vs := g.Vertices(); len(vs) > 0 {
			if start == "" {
				start = vs[0]
			}
			if end == "" {
				end = vs[len(vs)-1]
			}
		}
		return wrap(dijkstra.ShortestPath(g, start, end, opts...))
	case EngineCoinChange:
		return wrap(dp.CoinChange(s.Amount, s.Coins, opts...))
	case EngineKnapsack:
		items := s.Items
		if len(items) == 0 && s.ItemPreset != "" {
			var err error
			if items, err = dp.ItemPreset(s.ItemPreset); err != nil {
				return nil, nil, err
			}
		}
		return wrap(dp.Knapsack(s.Capacity, items, opts...))
	case EngineFibonacci:
		strategy := DefaultStrategy
		if s.Strategy != "" {
			var err error
			if strategy, err = dp.ParseStrategy(s.Strategy); err != nil {
				return nil, nil, err
			}
		}
		return wrap(dp.Fibonacci(s.N, strategy, opts...))
	}

	return nil, nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownEngine, s.Engine, Engines())
}

// wrap erases an engine's concrete result type.
func wrap[R any](res *R, tr trace.Trace, err error) (any, trace.Trace, error) {
	if err != nil {
		return nil, tr, err
	}
	return res, tr, nil
}

func (s *Scenario) runSearch(ctx context.Context, opts []trace.Option) (any, trace.Trace, error) {
	seq := s.Seq
	if len(seq) == 0 {
		n := s.Books
		if n == 0 {
			n = DefaultBooks
		}
		var err error
		if seq, err = search.Books(n); err != nil {
			return nil, nil, err
		}
	}

	switch s.Engine {
	case EngineLinearSearch:
		return wrap(search.Linear(seq, s.Target, opts...))
	case EngineSearchRace:
		res, err := search.Race(ctx, seq, s.Target)
		if err != nil {
			return nil, nil, err
		}
		return res, nil, nil
	}
	return wrap(search.Binary(seq, s.Target, opts...))
}

func (s *Scenario) runWindow(opts []trace.Option) (any, trace.Trace, error) {
	prices, k := s.Array, s.K
	if s.Random {
		prices, k = window.RandomPrices(s.Rand())
	}
	if len(prices) == 0 {
		return nil, nil, fmt.Errorf("%w: %s needs array or random", ErrMissingInput, s.Engine)
	}

	problem := s.Problem
	if problem == "" {
		problem = DefaultProblem
	}
	switch problem {
	case ProblemMaxSum:
		return wrap(window.MaxSumWindow(prices, k, opts...))
	case ProblemLongestGain:
		return wrap(window.LongestIncreasingRun(prices, opts...))
	case ProblemMaxSubarray:
		return wrap(window.MaxSubarray(prices, opts...))
	}
	return nil, nil, fmt.Errorf("%w: unknown window problem %q", ErrMissingInput, problem)
}

func (s *Scenario) runSorting(ctx context.Context, opts []trace.Option) (any, trace.Trace, error) {
	arr := s.Array
	if s.Random {
		size := s.Size
		if size == 0 {
			size = sorting.DefaultRandomSize
		}
		var err error
		if arr, err = sorting.RandomArray(s.Rand(), size); err != nil {
			return nil, nil, invalid(err)
		}
	}
	if arr == nil {
		return nil, nil, fmt.Errorf("%w: %s needs array or random", ErrMissingInput, s.Engine)
	}

	switch s.Engine {
	case EngineMergeSort:
		out, tr, err := sorting.MergeSort(arr, opts...)
		if err != nil {
			return nil, tr, err
		}
		return map[string][]int{"input": arr, "sorted": out}, tr, nil
	case EngineSortRunner:
		name := sorting.Algorithm(s.Algorithm)
		if name == "" {
			name = sorting.AlgoMerge
		}
		run, err := sorting.Runner(name)
		if err != nil {
			return nil, nil, invalid(err)
		}
		r, err := run(arr, opts...)
		if err != nil {
			return nil, nil, err
		}
		return r, r.Trace, nil
	}

	runs, err := sorting.Compare(ctx, arr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return runs, nil, nil
}

func (s *Scenario) graph() (*core.Graph, error) {
	switch {
	case s.Random:
		return core.Random(s.Rand()), nil
	case len(s.Edges) > 0:
		g := core.NewGraph()
		for _, e := range s.Edges {
			if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
				return nil, invalid(err)
			}
		}
		return g, nil
	}

	name := s.Graph
	if name == "" {
		name = DefaultGraph
	}
	g, err := core.Preset(name)
	if err != nil {
		return nil, invalid(err)
	}
	return g, nil
}

// invalid classifies errors of packages that do not use the trace
// sentinels (core, sorting) as invalid input.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", trace.ErrInvalidInput, err)
}
