package search

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// Sentinel errors returned by the search engines.
var (
	// ErrNotSorted indicates that Binary received a sequence that is not ascending.
	ErrNotSorted = fmt.Errorf("%w: search: sequence must be sorted ascending", trace.ErrPreconditionViolation)

	// ErrBadShelfSize indicates a non-positive size passed to Books.
	ErrBadShelfSize = fmt.Errorf("%w: search: shelf size must be positive", trace.ErrInvalidInput)
)

// Step kinds emitted by Binary and Linear.
const (
	KindCompare     trace.Kind = "compare"
	KindNarrowLeft  trace.Kind = "narrow-left"
	KindNarrowRight trace.Kind = "narrow-right"
	KindCheck       trace.Kind = "check"
	KindFound       trace.Kind = "found"
	KindNotFound    trace.Kind = "not-found"
)

// Bracket is the payload of binary-search steps: the active range and the
// probed middle element. On narrow steps Low/High already hold the new range.
type Bracket struct {
	Low   int `json:"low" yaml:"low"`
	Mid   int `json:"mid" yaml:"mid"`
	High  int `json:"high" yaml:"high"`
	Value int `json:"value" yaml:"value"`
}

// Probe is the payload of linear-search steps.
type Probe struct {
	Index int `json:"index" yaml:"index"`
	Value int `json:"value" yaml:"value"`
}

// Result is the terminal outcome of one search.
type Result struct {
	Target     int  `json:"target" yaml:"target"`
	Found      bool `json:"found" yaml:"found"`
	Index      int  `json:"index" yaml:"index"` // -1 when not found
	Iterations int  `json:"iterations" yaml:"iterations"`
}

// Winner names the faster engine of a Race.
type Winner string

const (
	WinnerBinary Winner = "binary"
	WinnerLinear Winner = "linear"
	WinnerTie    Winner = "tie"
)

// RaceResult reports both sides of a Race.
type RaceResult struct {
	Binary      *Result     `json:"binary" yaml:"binary"`
	Linear      *Result     `json:"linear" yaml:"linear"`
	BinaryTrace trace.Trace `json:"-" yaml:"-"`
	LinearTrace trace.Trace `json:"-" yaml:"-"`
	Winner      Winner      `json:"winner" yaml:"winner"`
}

// Books returns the sorted shelf 1..n.
func Books(n int) ([]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadShelfSize, n)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out, nil
}
