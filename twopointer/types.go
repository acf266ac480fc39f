package twopointer

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// Sentinel errors returned by the two-pointer engines.
var (
	// ErrNotSorted indicates PairSum input that is not ascending while AutoSort is off.
	ErrNotSorted = fmt.Errorf("%w: twopointer: array must be sorted ascending", trace.ErrPreconditionViolation)

	// ErrTooShort indicates PairSum input with fewer than two elements.
	ErrTooShort = fmt.Errorf("%w: twopointer: array needs at least 2 elements", trace.ErrInvalidInput)
)

// Step kinds.
const (
	KindCompare    trace.Kind = "compare"
	KindMatch      trace.Kind = "match"
	KindMismatch   trace.Kind = "mismatch"
	KindPalindrome trace.Kind = "palindrome"
	KindPresort    trace.Kind = "presort"
	KindMoveLeft   trace.Kind = "move-left"
	KindMoveRight  trace.Kind = "move-right"
	KindDone       trace.Kind = "done"
)

// PalindromeOptions controls preprocessing, which is applied before any
// pointer moves and is not traced.
type PalindromeOptions struct {
	IgnoreCase     bool // Unicode case folding
	IgnoreNonAlnum bool // drop everything that is not a letter or digit
}

// DefaultPalindromeOptions matches the usual "A man, a plan..." reading.
func DefaultPalindromeOptions() PalindromeOptions {
	return PalindromeOptions{IgnoreCase: true, IgnoreNonAlnum: true}
}

// CharPair is the payload of palindrome steps.
type CharPair struct {
	Left  int    `json:"left" yaml:"left"`
	Right int    `json:"right" yaml:"right"`
	A     string `json:"a" yaml:"a"`
	B     string `json:"b" yaml:"b"`
}

// PalindromeResult is the terminal outcome of Palindrome.
type PalindromeResult struct {
	Normalized  string `json:"normalized" yaml:"normalized"`
	Palindrome  bool   `json:"palindrome" yaml:"palindrome"`
	Comparisons int    `json:"comparisons" yaml:"comparisons"`
}

// PairSumOptions controls the sortedness precondition of PairSum.
type PairSumOptions struct {
	// AutoSort sorts a copy of unsorted input instead of failing with
	// ErrNotSorted. Indices in the result then refer to the sorted copy.
	AutoSort bool
}

// Pointers is the payload of pair-sum steps.
type Pointers struct {
	Left  int `json:"left" yaml:"left"`
	Right int `json:"right" yaml:"right"`
	A     int `json:"a" yaml:"a"`
	B     int `json:"b" yaml:"b"`
	Sum   int `json:"sum" yaml:"sum"`
}

// Pair is one match found by PairSum: indices and values.
type Pair struct {
	Left  int `json:"left" yaml:"left"`
	Right int `json:"right" yaml:"right"`
	A     int `json:"a" yaml:"a"`
	B     int `json:"b" yaml:"b"`
	Sum   int `json:"sum" yaml:"sum"`
}

// PairResult is the terminal outcome of PairSum.
type PairResult struct {
	Array       []int  `json:"array" yaml:"array"`
	Target      int    `json:"target" yaml:"target"`
	Pairs       []Pair `json:"pairs" yaml:"pairs"`
	Presorted   bool   `json:"presorted" yaml:"presorted"`
	Comparisons int    `json:"comparisons" yaml:"comparisons"`
}
