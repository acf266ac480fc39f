package dp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/algotrace/trace"
)

// Sentinel errors returned by the DP solvers. All wrap trace.ErrInvalidInput
// and are reported before any step.
var (
	// ErrBadAmount indicates a negative CoinChange amount.
	ErrBadAmount = fmt.Errorf("%w: dp: amount must be non-negative", trace.ErrInvalidInput)

	// ErrNoCoins indicates an empty coin set.
	ErrNoCoins = fmt.Errorf("%w: dp: at least one coin denomination is required", trace.ErrInvalidInput)

	// ErrBadCoin indicates a zero or negative denomination.
	ErrBadCoin = fmt.Errorf("%w: dp: coin denominations must be positive", trace.ErrInvalidInput)

	// ErrBadCapacity indicates a negative knapsack capacity.
	ErrBadCapacity = fmt.Errorf("%w: dp: capacity must be non-negative", trace.ErrInvalidInput)

	// ErrBadItem indicates an item with non-positive weight or negative value.
	ErrBadItem = fmt.Errorf("%w: dp: item weight must be positive and value non-negative", trace.ErrInvalidInput)

	// ErrBadN indicates a Fibonacci index outside [0, MaxN].
	ErrBadN = fmt.Errorf("%w: dp: fibonacci index out of range", trace.ErrInvalidInput)

	// ErrUnknownStrategy indicates a Fibonacci strategy not listed by Strategies.
	ErrUnknownStrategy = fmt.Errorf("%w: dp: unknown fibonacci strategy", trace.ErrInvalidInput)

	// ErrUnknownPreset indicates an item preset not listed by ItemPresetNames.
	ErrUnknownPreset = fmt.Errorf("%w: dp: unknown item preset", trace.ErrInvalidInput)
)

// Inf marks an amount that no coin combination reaches.
const Inf = math.MaxInt

const (
	// MaxN is the largest Fibonacci index whose value fits in int64.
	MaxN = 92

	// MaxNaiveN caps the naive strategy, whose call count grows as phi^n.
	MaxNaiveN = 30
)

// Step kinds.
const (
	KindTableUpdate trace.Kind = "table-update"
	KindCellDone    trace.Kind = "cell-done"
	KindSolution    trace.Kind = "solution"
	KindNoSolution  trace.Kind = "no-solution"
	KindCall        trace.Kind = "call"
	KindCacheHit    trace.Kind = "cache-hit"
	KindFill        trace.Kind = "fill"
	KindResult      trace.Kind = "result"
)

// CoinUpdate is the payload of CoinChange table-update steps.
type CoinUpdate struct {
	Amount int `json:"amount" yaml:"amount"`
	Coin   int `json:"coin" yaml:"coin"`
	Old    int `json:"old" yaml:"old"` // Inf when previously unreachable
	New    int `json:"new" yaml:"new"`
}

// CoinCell is the payload of CoinChange cell-done steps.
type CoinCell struct {
	Amount int `json:"amount" yaml:"amount"`
	Coins  int `json:"coins" yaml:"coins"` // Inf when unreachable
	Last   int `json:"last" yaml:"last"`   // coin that achieved it, 0 if none
}

// CoinResult is the outcome of CoinChange. Used lists the coins of one
// optimal combination, Counts tallies them per denomination.
type CoinResult struct {
	Amount   int         `json:"amount" yaml:"amount"`
	Coins    []int       `json:"coins" yaml:"coins"`
	Feasible bool        `json:"feasible" yaml:"feasible"`
	MinCoins int         `json:"minCoins" yaml:"minCoins"` // -1 when infeasible
	Used     []int       `json:"used" yaml:"used"`
	Counts   map[int]int `json:"counts" yaml:"counts"`
	Table    []int       `json:"table" yaml:"table"`
}

// Item is one knapsack candidate.
type Item struct {
	Name   string `json:"name" yaml:"name"`
	Value  int    `json:"value" yaml:"value"`
	Weight int    `json:"weight" yaml:"weight"`
}

// KnapsackCell is the payload of Knapsack table-update steps. Include is only
// meaningful when Fits.
type KnapsackCell struct {
	Item    int  `json:"item" yaml:"item"` // 1-based row
	W       int  `json:"w" yaml:"w"`
	Fits    bool `json:"fits" yaml:"fits"`
	Include int  `json:"include" yaml:"include"`
	Exclude int  `json:"exclude" yaml:"exclude"`
	Value   int  `json:"value" yaml:"value"`
	Took    bool `json:"took" yaml:"took"`
}

// KnapsackResult is the outcome of Knapsack. Selected is in item order.
type KnapsackResult struct {
	Capacity    int     `json:"capacity" yaml:"capacity"`
	MaxValue    int     `json:"maxValue" yaml:"maxValue"`
	Selected    []Item  `json:"selected" yaml:"selected"`
	TotalWeight int     `json:"totalWeight" yaml:"totalWeight"`
	Subproblems int     `json:"subproblems" yaml:"subproblems"`
	Table       [][]int `json:"table" yaml:"table"`
}

// Strategy selects how Fibonacci computes its value.
type Strategy string

const (
	Naive     Strategy = "naive"
	Memoized  Strategy = "memoized"
	Tabulated Strategy = "tabulated"
)

// FibCall is the payload of call and cache-hit steps.
type FibCall struct {
	N     int   `json:"n" yaml:"n"`
	Depth int   `json:"depth" yaml:"depth"`
	Value int64 `json:"value,omitempty" yaml:"value,omitempty"` // set on cache hits
}

// FibFill is the payload of fill steps.
type FibFill struct {
	Index int   `json:"index" yaml:"index"`
	Value int64 `json:"value" yaml:"value"`
}

// FibResult is the outcome of Fibonacci. Calls counts recursive invocations
// (cache hits included) or table fills for Tabulated.
type FibResult struct {
	N         int      `json:"n" yaml:"n"`
	Strategy  Strategy `json:"strategy" yaml:"strategy"`
	Value     int64    `json:"value" yaml:"value"`
	Calls     int      `json:"calls" yaml:"calls"`
	CacheHits int      `json:"cacheHits" yaml:"cacheHits"`
	Computed  int      `json:"computed" yaml:"computed"`
}
