package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/dp"
	"github.com/katalvlaran/algotrace/internal/scenario"
	"github.com/katalvlaran/algotrace/sorting"
	"github.com/katalvlaran/algotrace/trace"
)

// execute runs one scenario and renders its envelope.
func execute(cmd *cobra.Command, opts *RootOptions, sc *scenario.Scenario) error {
	r := NewRenderer(opts.Format, cmd.OutOrStdout())
	if err := runOne(cmd, opts, r, sc); err != nil {
		return err
	}
	return r.Close()
}

func runOne(cmd *cobra.Command, opts *RootOptions, r *Renderer, sc *scenario.Scenario) error {
	log := opts.logger().With("engine", sc.Engine)
	if sc.Name != "" {
		log = log.With("scenario", sc.Name)
	}

	var engOpts []trace.Option
	if sink := r.Sink(); sink != nil {
		engOpts = append(engOpts, trace.WithOnStep(sink))
	}
	engOpts = append(engOpts, opts.traceOptions(cmd)...)

	log.Debug("run started")
	env, err := sc.Run(cmd.Context(), engOpts...)
	if err != nil {
		log.Debug("run failed", "error", err)
		return runError(sc.Engine, err)
	}
	log.Debug("run finished", "run_id", env.RunID, "steps", env.StepCount)

	return r.Render(env)
}

// NewSearchCommand creates the search command (binary by default).
func NewSearchCommand(opts *RootOptions) *cobra.Command {
	sc := &scenario.Scenario{}
	var linear bool

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Binary or linear search over a sorted shelf",
		Long: `Search for --target in --seq, or in the shelf of books 1..--books.

Example:
  algotrace search --target 42
  algotrace search --seq 1,3,5,7 --target 5 --linear`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc.Engine = scenario.EngineBinarySearch
			if linear {
				sc.Engine = scenario.EngineLinearSearch
			}
			return execute(cmd, opts, sc)
		},
	}

	searchFlags(cmd, sc)
	cmd.Flags().BoolVar(&linear, "linear", false, "use linear instead of binary search")

	return cmd
}

// NewRaceCommand creates the race command.
func NewRaceCommand(opts *RootOptions) *cobra.Command {
	sc := &scenario.Scenario{Engine: scenario.EngineSearchRace}

	cmd := &cobra.Command{
		Use:           "race",
		Short:         "Race binary against linear search",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, opts, sc)
		},
	}

	searchFlags(cmd, sc)

	return cmd
}

func searchFlags(cmd *cobra.Command, sc *scenario.Scenario) {
	cmd.Flags().IntVar(&sc.Books, "books", scenario.DefaultBooks, "shelf size when --seq is not given")
	cmd.Flags().IntSliceVar(&sc.Seq, "seq", nil, "sorted sequence to search")
	cmd.Flags().IntVarP(&sc.Target, "target", "t", 0, "value to look for")
}

// NewPalindromeCommand creates the palindrome command.
func NewPalindromeCommand(opts *RootOptions) *cobra.Command {
	sc := &scenario.Scenario{Engine: scenario.EnginePalindrome}
	var ignoreCase, ignoreNonAlnum bool

	cmd := &cobra.Command{
		Use:   "palindrome <text>...",
		Short: "Two-pointer palindrome check",
		Long: `Check whether the text reads the same both ways. Arguments are joined
with single spaces.

Example:
  algotrace palindrome "A man, a plan, a canal: Panama"
  algotrace palindrome --ignore-case=false Abba`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc.Text = strings.Join(args, " ")
			sc.IgnoreCase = &ignoreCase
			sc.IgnoreNonAlnum = &ignoreNonAlnum
			return execute(cmd, opts, sc)
		},
	}

	cmd.Flags().BoolVar(&ignoreCase, "ignore-case", true, "fold case before comparing")
	cmd.Flags().BoolVar(&ignoreNonAlnum, "ignore-non-alnum", true, "skip everything but letters and digits")

	return cmd
}

// NewPairSumCommand creates the pairsum command.
func NewPairSumCommand(opts *RootOptions) *cobra.Command {
	sc := &scenario.Scenario{Engine: scenario.EnginePairSum}

	cmd := &cobra.Command{
		Use:   "pairsum",
		Short: "Two-pointer pairs summing to a target",
		Long: `Walk a sorted array with two pointers and collect the pairs summing to
--target. --random generates the array and a reachable target instead.

Example:
  algotrace pairsum --array 1,2,3,4,5,6 --target 7
  algotrace pairsum --random --seed 4`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, opts, sc)
		},
	}

	cmd.Flags().IntSliceVar(&sc.Array, "array", nil, "sorted array")
	cmd.Flags().IntVarP(&sc.Target, "target", "t", 0, "target sum")
	cmd.Flags().BoolVar(&sc.AutoSort, "auto-sort", false, "sort unsorted input instead of failing")
	randomFlags(cmd, sc)
	cmd.MarkFlagsOneRequired("array", "random")
	cmd.MarkFlagsMutuallyExclusive("array", "random")

	return cmd
}

// NewWindowCommand creates the window command.
func NewWindowCommand(opts *RootOptions) *cobra.Command {
	sc := &scenario.Scenario{Engine: scenario.EngineWindow}

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Sliding-window and Kadane scans over prices",
		Long: `Scan an array of prices with one of three problems:
  max-sum       best average over --k consecutive days
  longest-gain  longest strictly increasing run
  max-subarray  maximum subarray sum (Kadane)

Example:
  algotrace window --array 100,102,98,105,110,107,111 --k 3
  algotrace window --random --seed 7 --problem longest-gain`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, opts, sc)
		},
	}

	cmd.Flags().StringVar(&sc.Problem, "problem", scenario.DefaultProblem, "max-sum|longest-gain|max-subarray")
	cmd.Flags().IntSliceVar(&sc.Array, "array", nil, "input values")
	cmd.Flags().IntVarP(&sc.K, "k", "k", 3, "window size for max-sum")
	randomFlags(cmd, sc)

	return cmd
}

// NewSortCommand creates the sort command.
func NewSortCommand(opts *RootOptions) *cobra.Command {
	sc := &scenario.Scenario{}

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Traced merge sort, or one of the comparison runners",
		Long: `Without --algo, run the detailed merge sort trace (divide, compare,
take, merge-complete). With --algo, run the bubble, selection or merge
runner and report its counters.

Example:
  algotrace sort --array 38,27,43,3,9,82,10
  algotrace sort --algo bubble --random --size 10`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc.Engine = scenario.EngineMergeSort
			if sc.Algorithm != "" {
				sc.Engine = scenario.EngineSortRunner
			}
			return execute(cmd, opts, sc)
		},
	}

	cmd.Flags().StringVar(&sc.Algorithm, "algo", "", "runner: "+joinAlgorithms())
	sortFlags(cmd, sc)

	return cmd
}

// NewCompareCommand creates the compare command.
func NewCompareCommand(opts *RootOptions) *cobra.Command {
	sc := &scenario.Scenario{Engine: scenario.EngineSortCompare}

	cmd := &cobra.Command{
		Use:           "compare",
		Short:         "Run every sorting runner on the same input concurrently",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, opts, sc)
		},
	}

	sortFlags(cmd, sc)

	return cmd
}

func sortFlags(cmd *cobra.Command, sc *scenario.Scenario) {
	cmd.Flags().IntSliceVar(&sc.Array, "array", nil, "values to sort")
	cmd.Flags().IntVar(&sc.Size, "size", sorting.DefaultRandomSize, "length of the random array")
	randomFlags(cmd, sc)
}

func randomFlags(cmd *cobra.Command, sc *scenario.Scenario) {
	cmd.Flags().BoolVar(&sc.Random, "random", false, "generate a random input")
	cmd.Flags().Int64Var(&sc.Seed, "seed", 0, "random seed (0 means 1)")
}

func joinAlgorithms() string {
	names := make([]string, 0, len(sorting.Algorithms()))
	for _, a := range sorting.Algorithms() {
		names = append(names, string(a))
	}
	return strings.Join(names, "|")
}

// NewDijkstraCommand creates the dijkstra command.
func NewDijkstraCommand(opts *RootOptions) *cobra.Command {
	sc := &scenario.Scenario{Engine: scenario.EngineDijkstra}

	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Shortest path on a preset or random graph",
		Long: `Find the shortest path between --from and --to. Missing endpoints
default to the first and last vertex of the graph.

Presets: ` + strings.Join(core.PresetNames(), ", ") + `

Example:
  algotrace dijkstra --preset highway --from BOS --to CHI
  algotrace dijkstra --random --seed 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, opts, sc)
		},
	}

	cmd.Flags().StringVar(&sc.Graph, "preset", scenario.DefaultGraph, "graph preset")
	cmd.Flags().StringVar(&sc.Start, "from", "", "start vertex")
	cmd.Flags().StringVar(&sc.End, "to", "", "end vertex")
	randomFlags(cmd, sc)

	return cmd
}

// NewCoinsCommand creates the coins command.
func NewCoinsCommand(opts *RootOptions) *cobra.Command {
	sc := &scenario.Scenario{Engine: scenario.EngineCoinChange}

	cmd := &cobra.Command{
		Use:           "coins",
		Short:         "Minimum coin change by dynamic programming",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, opts, sc)
		},
	}

	cmd.Flags().IntVar(&sc.Amount, "amount", 11, "amount to pay")
	cmd.Flags().IntSliceVar(&sc.Coins, "coins", []int{1, 2, 5}, "coin denominations")

	return cmd
}

// NewKnapsackCommand creates the knapsack command.
func NewKnapsackCommand(opts *RootOptions) *cobra.Command {
	sc := &scenario.Scenario{Engine: scenario.EngineKnapsack}

	cmd := &cobra.Command{
		Use:           "knapsack",
		Short:         "0/1 knapsack over an item preset",
		Long:          "Fill a knapsack of --capacity from one of the presets: " + strings.Join(dp.ItemPresetNames(), ", ") + ".",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, opts, sc)
		},
	}

	cmd.Flags().IntVar(&sc.Capacity, "capacity", 5, "knapsack capacity")
	cmd.Flags().StringVar(&sc.ItemPreset, "preset", "tech", "item preset")

	return cmd
}

// NewFibCommand creates the fib command.
func NewFibCommand(opts *RootOptions) *cobra.Command {
	sc := &scenario.Scenario{Engine: scenario.EngineFibonacci}

	cmd := &cobra.Command{
		Use:   "fib",
		Short: "Fibonacci by naive recursion, memoization or tabulation",
		Long: `Compute F(--n) with one of the strategies and compare their call counts.

Example:
  algotrace fib --n 10 --strategy naive
  algotrace fib --n 50 --strategy tabulated --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute(cmd, opts, sc)
		},
	}

	cmd.Flags().IntVarP(&sc.N, "n", "n", 10, "index of the Fibonacci number")
	cmd.Flags().StringVar(&sc.Strategy, "strategy", string(scenario.DefaultStrategy), "naive|memoized|tabulated")

	return cmd
}
