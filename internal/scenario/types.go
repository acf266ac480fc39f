package scenario

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/algotrace/core"
	"github.com/katalvlaran/algotrace/dp"
	"github.com/katalvlaran/algotrace/trace"
)

// Sentinel errors.
var (
	// ErrUnknownEngine indicates an engine name not listed by Engines.
	ErrUnknownEngine = fmt.Errorf("%w: scenario: unknown engine", trace.ErrInvalidInput)

	// ErrMissingInput indicates a scenario without the inputs its engine needs.
	ErrMissingInput = fmt.Errorf("%w: scenario: missing input", trace.ErrInvalidInput)

	// ErrNoScenarios indicates an empty scenario file.
	ErrNoScenarios = errors.New("scenario: no scenarios found")
)

// Engine names.
const (
	EngineBinarySearch = "binary-search"
	EngineLinearSearch = "linear-search"
	EngineSearchRace   = "search-race"
	EnginePalindrome   = "palindrome"
	EnginePairSum      = "pair-sum"
	EngineWindow       = "sliding-window"
	EngineMergeSort    = "merge-sort"
	EngineSortRunner   = "sort-runner"
	EngineSortCompare  = "sort-compare"
	EngineDijkstra     = "dijkstra"
	EngineCoinChange   = "coin-change"
	EngineKnapsack     = "knapsack"
	EngineFibonacci    = "fibonacci"
)

// Sliding-window problems.
const (
	ProblemMaxSum      = "max-sum"
	ProblemLongestGain = "longest-gain"
	ProblemMaxSubarray = "max-subarray"
)

// Defaults applied when a scenario leaves an input unset.
const (
	DefaultBooks    = 100
	DefaultGraph    = "simple"
	DefaultStrategy = dp.Memoized
	DefaultProblem  = ProblemMaxSum
)

// Engines lists every engine name Run accepts.
func Engines() []string {
	return []string{
		EngineBinarySearch, EngineLinearSearch, EngineSearchRace,
		EnginePalindrome, EnginePairSum, EngineWindow,
		EngineMergeSort, EngineSortRunner, EngineSortCompare,
		EngineDijkstra, EngineCoinChange, EngineKnapsack, EngineFibonacci,
	}
}

// Scenario is one engine invocation. Only the fields of the chosen engine
// are read.
type Scenario struct {
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Engine string `json:"engine" yaml:"engine"`

	// search
	Seq    []int `json:"seq,omitempty" yaml:"seq,omitempty"`
	Books  int   `json:"books,omitempty" yaml:"books,omitempty"`
	Target int   `json:"target,omitempty" yaml:"target,omitempty"`

	// palindrome
	Text           string `json:"text,omitempty" yaml:"text,omitempty"`
	IgnoreCase     *bool  `json:"ignore_case,omitempty" yaml:"ignore_case,omitempty"`
	IgnoreNonAlnum *bool  `json:"ignore_non_alnum,omitempty" yaml:"ignore_non_alnum,omitempty"`

	// pair-sum, sliding-window, sorting
	Array     []int  `json:"array,omitempty" yaml:"array,omitempty"`
	AutoSort  bool   `json:"auto_sort,omitempty" yaml:"auto_sort,omitempty"`
	Problem   string `json:"problem,omitempty" yaml:"problem,omitempty"`
	K         int    `json:"k,omitempty" yaml:"k,omitempty"`
	Algorithm string `json:"algorithm,omitempty" yaml:"algorithm,omitempty"`
	Size      int    `json:"size,omitempty" yaml:"size,omitempty"`

	// dijkstra
	Graph string      `json:"graph,omitempty" yaml:"graph,omitempty"`
	Edges []core.Edge `json:"edges,omitempty" yaml:"edges,omitempty"`
	Start string      `json:"start,omitempty" yaml:"start,omitempty"`
	End   string      `json:"end,omitempty" yaml:"end,omitempty"`

	// dp
	Amount     int       `json:"amount,omitempty" yaml:"amount,omitempty"`
	Coins      []int     `json:"coins,omitempty" yaml:"coins,omitempty"`
	Capacity   int       `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Items      []dp.Item `json:"items,omitempty" yaml:"items,omitempty"`
	ItemPreset string    `json:"item_preset,omitempty" yaml:"item_preset,omitempty"`
	N          int       `json:"n,omitempty" yaml:"n,omitempty"`
	Strategy   string    `json:"strategy,omitempty" yaml:"strategy,omitempty"`

	// Random replaces array-like inputs with seeded random ones (pair-sum
	// array and target, window prices, sort arrays, dijkstra graphs). Seed 0
	// means seed 1.
	Random bool  `json:"random,omitempty" yaml:"random,omitempty"`
	Seed   int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// Envelope is the rendered outcome of one run. Steps is empty for the
// concurrent engines (search-race, sort-compare), whose per-runner traces
// are summarised in Result; StepCount still counts every emitted step.
type Envelope struct {
	RunID     string      `json:"run_id" yaml:"run_id"`
	Name      string      `json:"name,omitempty" yaml:"name,omitempty"`
	Engine    string      `json:"engine" yaml:"engine"`
	Result    any         `json:"result" yaml:"result"`
	Steps     trace.Trace `json:"steps,omitempty" yaml:"steps,omitempty"`
	StepCount int         `json:"step_count" yaml:"step_count"`
}

// NewRunID generates run identifiers. Tests may replace it for stable output.
var NewRunID = func() string { return uuid.NewString() }
