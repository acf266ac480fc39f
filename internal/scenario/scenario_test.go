package scenario_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/dijkstra"
	"github.com/katalvlaran/algotrace/dp"
	"github.com/katalvlaran/algotrace/internal/scenario"
	"github.com/katalvlaran/algotrace/search"
	"github.com/katalvlaran/algotrace/sorting"
	"github.com/katalvlaran/algotrace/trace"
	"github.com/katalvlaran/algotrace/twopointer"
	"github.com/katalvlaran/algotrace/window"
)

func fixedRunID(t *testing.T) {
	t.Helper()
	prev := scenario.NewRunID
	scenario.NewRunID = func() string { return "run-1" }
	t.Cleanup(func() { scenario.NewRunID = prev })
}

func TestLoadFile_MultiDocument(t *testing.T) {
	list, err := scenario.LoadFile("testdata/tour.yaml")
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "shelf", list[0].Name)
	assert.Equal(t, scenario.EngineBinarySearch, list[0].Engine)
	assert.Equal(t, 42, list[0].Target)
	assert.Equal(t, "A man, a plan, a canal: Panama", list[1].Text)
	assert.Equal(t, []int{1, 2, 5}, list[3].Coins)
}

func TestLoad_JSON(t *testing.T) {
	list, err := scenario.Load(strings.NewReader(`{"engine": "fibonacci", "n": 10, "strategy": "naive"}`))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 10, list[0].N)
	assert.Equal(t, "naive", list[0].Strategy)
}

func TestLoad_Errors(t *testing.T) {
	_, err := scenario.Load(strings.NewReader(""))
	assert.ErrorIs(t, err, scenario.ErrNoScenarios)

	_, err = scenario.Load(strings.NewReader("engine: knapsack\ncapacty: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = scenario.Load(strings.NewReader("target: 3\n"))
	assert.ErrorIs(t, err, scenario.ErrMissingInput)

	_, err = scenario.LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestRun_Envelope(t *testing.T) {
	fixedRunID(t)
	sc := scenario.Scenario{Name: "shelf", Engine: scenario.EngineBinarySearch, Books: 7, Target: 5}

	env, err := sc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "run-1", env.RunID)
	assert.Equal(t, "shelf", env.Name)
	assert.Equal(t, scenario.EngineBinarySearch, env.Engine)
	assert.Equal(t, env.Steps.Len(), env.StepCount)

	res, ok := env.Result.(*search.Result)
	require.True(t, ok)
	assert.True(t, res.Found)
	assert.Equal(t, 4, res.Index)
}

func TestRun_EveryEngine(t *testing.T) {
	yes := true
	cases := []struct {
		sc    scenario.Scenario
		check func(t *testing.T, res any)
	}{
		{scenario.Scenario{Engine: scenario.EngineLinearSearch, Seq: []int{9, 4, 7}, Target: 7}, func(t *testing.T, res any) {
			assert.Equal(t, 2, res.(*search.Result).Index)
		}},
		{scenario.Scenario{Engine: scenario.EngineSearchRace, Target: 1}, func(t *testing.T, res any) {
			assert.Equal(t, search.WinnerLinear, res.(*search.RaceResult).Winner)
		}},
		{scenario.Scenario{Engine: scenario.EnginePalindrome, Text: "Abba", IgnoreCase: &yes}, func(t *testing.T, res any) {
			assert.True(t, res.(*twopointer.PalindromeResult).Palindrome)
		}},
		{scenario.Scenario{Engine: scenario.EnginePairSum, Array: []int{4, 1, 3, 2}, Target: 5, AutoSort: true}, func(t *testing.T, res any) {
			assert.Len(t, res.(*twopointer.PairResult).Pairs, 2)
		}},
		{scenario.Scenario{Engine: scenario.EngineWindow, Array: []int{1, 2, 3, 4, 5}, K: 2}, func(t *testing.T, res any) {
			assert.Equal(t, 9, res.(*window.WindowResult).Sum)
		}},
		{scenario.Scenario{Engine: scenario.EngineWindow, Problem: scenario.ProblemMaxSubarray, Array: []int{-2, 1, -3, 4, -1, 2, 1, -5, 4}}, func(t *testing.T, res any) {
			assert.Equal(t, 6, res.(*window.SubarrayResult).Sum)
		}},
		{scenario.Scenario{Engine: scenario.EngineWindow, Problem: scenario.ProblemLongestGain, Array: []int{3, 1, 2, 3}}, func(t *testing.T, res any) {
			assert.Equal(t, 3, res.(*window.RunResult).Length)
		}},
		{scenario.Scenario{Engine: scenario.EngineMergeSort, Array: []int{3, 1, 2}}, func(t *testing.T, res any) {
			assert.Equal(t, []int{1, 2, 3}, res.(map[string][]int)["sorted"])
		}},
		{scenario.Scenario{Engine: scenario.EngineSortRunner, Algorithm: "bubble", Array: []int{2, 1}}, func(t *testing.T, res any) {
			assert.Equal(t, 1, res.(*sorting.Run).Swaps)
		}},
		{scenario.Scenario{Engine: scenario.EngineSortCompare, Random: true, Size: 8}, func(t *testing.T, res any) {
			assert.Len(t, res.([]*sorting.Run), 3)
		}},
		{scenario.Scenario{Engine: scenario.EngineDijkstra}, func(t *testing.T, res any) {
			r := res.(*dijkstra.Result)
			assert.Equal(t, "A", r.Start)
			assert.Equal(t, "E", r.End)
			assert.EqualValues(t, 10, r.Distance)
		}},
		{scenario.Scenario{Engine: scenario.EngineCoinChange, Amount: 11, Coins: []int{1, 2, 5}}, func(t *testing.T, res any) {
			assert.Equal(t, 3, res.(*dp.CoinResult).MinCoins)
		}},
		{scenario.Scenario{Engine: scenario.EngineKnapsack, Capacity: 3, ItemPreset: "jewelry"}, func(t *testing.T, res any) {
			assert.Equal(t, 12500, res.(*dp.KnapsackResult).MaxValue)
		}},
		{scenario.Scenario{Engine: scenario.EngineFibonacci, N: 10}, func(t *testing.T, res any) {
			r := res.(*dp.FibResult)
			assert.EqualValues(t, 55, r.Value)
			assert.Equal(t, dp.Memoized, r.Strategy)
		}},
	}

	covered := map[string]bool{}
	for _, tc := range cases {
		t.Run(tc.sc.Engine, func(t *testing.T) {
			env, err := tc.sc.Run(context.Background())
			require.NoError(t, err)
			tc.check(t, env.Result)
			assert.Positive(t, env.StepCount)
			if len(env.Steps) > 0 {
				assert.Equal(t, len(env.Steps), env.StepCount)
			}
		})
		covered[tc.sc.Engine] = true
	}
	for _, e := range scenario.Engines() {
		assert.True(t, covered[e], "engine %s not exercised", e)
	}
}

func TestRun_RandomIsSeeded(t *testing.T) {
	sc := scenario.Scenario{Engine: scenario.EngineWindow, Random: true, Seed: 99}
	a, err := sc.Run(context.Background())
	require.NoError(t, err)
	b, err := sc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a.Result, b.Result)
	assert.Equal(t, a.StepCount, b.StepCount)
}

func TestRun_RandomPairSum(t *testing.T) {
	sc := scenario.Scenario{Engine: scenario.EnginePairSum, Random: true, Seed: 4}
	a, err := sc.Run(context.Background())
	require.NoError(t, err)
	b, err := sc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a.Result, b.Result)

	res := a.Result.(*twopointer.PairResult)
	assert.GreaterOrEqual(t, len(res.Array), 8)
	assert.NotEmpty(t, res.Pairs, "the generated target is always reachable")
}

func TestRun_Errors(t *testing.T) {
	_, err := (&scenario.Scenario{Engine: "bogo-sort"}).Run(context.Background())
	assert.ErrorIs(t, err, scenario.ErrUnknownEngine)

	_, err = (&scenario.Scenario{Engine: scenario.EngineWindow}).Run(context.Background())
	assert.ErrorIs(t, err, scenario.ErrMissingInput)

	_, err = (&scenario.Scenario{Engine: scenario.EngineFibonacci, N: 5, Strategy: "magic"}).Run(context.Background())
	assert.ErrorIs(t, err, dp.ErrUnknownStrategy)

	_, err = (&scenario.Scenario{Engine: scenario.EngineBinarySearch, Seq: []int{3, 1}}).Run(context.Background())
	assert.ErrorIs(t, err, search.ErrNotSorted)

	_, err = (&scenario.Scenario{Engine: scenario.EngineFibonacci, N: 20}).Run(context.Background(), trace.WithMaxSteps(5))
	assert.ErrorIs(t, err, trace.ErrStepLimit)

	_, err = (&scenario.Scenario{Engine: scenario.EngineDijkstra, Graph: "moon"}).Run(context.Background())
	assert.ErrorIs(t, err, core.ErrUnknownPreset)
	assert.ErrorIs(t, err, trace.ErrInvalidInput)

	_, err = (&scenario.Scenario{Engine: scenario.EngineSortRunner, Algorithm: "bogo", Array: []int{1}}).Run(context.Background())
	assert.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
	assert.ErrorIs(t, err, trace.ErrInvalidInput)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = (&scenario.Scenario{Engine: scenario.EngineCoinChange, Amount: 4, Coins: []int{1}}).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
