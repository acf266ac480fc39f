package sorting

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// Sentinel errors returned by the sorting engines.
var (
	// ErrNilCompare indicates a nil comparison function passed to MergeSortFunc.
	ErrNilCompare = fmt.Errorf("%w: sorting: compare function is nil", trace.ErrInvalidInput)

	// ErrBadSize indicates a non-positive size passed to RandomArray.
	ErrBadSize = fmt.Errorf("%w: sorting: array size must be positive", trace.ErrInvalidInput)

	// ErrUnknownAlgorithm indicates a runner name not returned by Algorithms.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// Step kinds of the narrated merge sort.
const (
	KindInitial       trace.Kind = "initial"
	KindDivide        trace.Kind = "divide"
	KindBaseCase      trace.Kind = "base-case"
	KindCompare       trace.Kind = "compare"
	KindTake          trace.Kind = "take"
	KindMergeComplete trace.Kind = "merge-complete"
	KindSorted        trace.Kind = "sorted"
)

// Step kinds of the comparison runners (KindCompare and KindSorted are shared).
const (
	KindSwap     trace.Kind = "swap"
	KindWrite    trace.Kind = "write"
	KindPassDone trace.Kind = "pass-done"
	KindMerge    trace.Kind = "merge"
)

// Side tells which half of a merge an element came from.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// State is the payload of every merge-sort step. Array is always a full
// snapshot of the working array; the other fields are set when they apply.
// Ranges are half-open: [Lo, Hi), split at Mid.
type State[T any] struct {
	Array  []T  `json:"array" yaml:"array"`
	Lo     int  `json:"lo" yaml:"lo"`
	Mid    int  `json:"mid" yaml:"mid"`
	Hi     int  `json:"hi" yaml:"hi"`
	Left   []T  `json:"left,omitempty" yaml:"left,omitempty"`
	Right  []T  `json:"right,omitempty" yaml:"right,omitempty"`
	Merged []T  `json:"merged,omitempty" yaml:"merged,omitempty"`
	I      int  `json:"i" yaml:"i"` // absolute index of the left candidate
	J      int  `json:"j" yaml:"j"` // absolute index of the right candidate
	Took   Side `json:"took,omitempty" yaml:"took,omitempty"`
}

// Cells is the payload of runner steps: the touched indices and a snapshot.
type Cells struct {
	I     int   `json:"i" yaml:"i"`
	J     int   `json:"j" yaml:"j"`
	Array []int `json:"array" yaml:"array"`
}

// Algorithm names a comparison runner.
type Algorithm string

const (
	AlgoBubble    Algorithm = "bubble"
	AlgoSelection Algorithm = "selection"
	AlgoMerge     Algorithm = "merge"
)

// Run is the outcome of one comparison runner.
type Run struct {
	Algorithm   Algorithm   `json:"algorithm" yaml:"algorithm"`
	Input       []int       `json:"input" yaml:"input"`
	Sorted      []int       `json:"sorted" yaml:"sorted"`
	Comparisons int         `json:"comparisons" yaml:"comparisons"`
	Swaps       int         `json:"swaps" yaml:"swaps"`
	Merges      int         `json:"merges" yaml:"merges"`
	Writes      int         `json:"writes" yaml:"writes"`
	Trace       trace.Trace `json:"-" yaml:"-"`
}
