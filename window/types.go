package window

import (
	"fmt"

	"github.com/katalvlaran/algotrace/trace"
)

// Sentinel errors returned by the window engines.
var (
	// ErrTooShort indicates a series shorter than the engine needs.
	ErrTooShort = fmt.Errorf("%w: window: series too short", trace.ErrInvalidInput)

	// ErrBadWindowSize indicates k outside [1, len(a)].
	ErrBadWindowSize = fmt.Errorf("%w: window: window size out of range", trace.ErrInvalidInput)
)

// Step kinds.
const (
	KindWindow  trace.Kind = "window"
	KindStart   trace.Kind = "start"
	KindExtend  trace.Kind = "extend"
	KindReset   trace.Kind = "reset"
	KindRestart trace.Kind = "restart"
	KindBest    trace.Kind = "best"
)

// Frame is the payload of window steps.
type Frame struct {
	Start     int `json:"start" yaml:"start"`
	End       int `json:"end" yaml:"end"`
	Sum       int `json:"sum" yaml:"sum"`
	BestStart int `json:"bestStart" yaml:"bestStart"`
	BestSum   int `json:"bestSum" yaml:"bestSum"`
}

// WindowResult is the best fixed-size window.
type WindowResult struct {
	Start   int     `json:"start" yaml:"start"`
	End     int     `json:"end" yaml:"end"` // inclusive
	Sum     int     `json:"sum" yaml:"sum"`
	Size    int     `json:"size" yaml:"size"`
	Windows int     `json:"windows" yaml:"windows"` // positions examined
	Average float64 `json:"average" yaml:"average"`
}

// RunState is the payload of increasing-run steps.
type RunState struct {
	Index     int `json:"index" yaml:"index"`
	RunStart  int `json:"runStart" yaml:"runStart"`
	RunLength int `json:"runLength" yaml:"runLength"` // increases in the current run
	BestStart int `json:"bestStart" yaml:"bestStart"`
	BestEnd   int `json:"bestEnd" yaml:"bestEnd"`
}

// RunResult is the longest strictly increasing run. Gains counts increases,
// Length counts elements (Gains+1), Gain is a[End]-a[Start].
type RunResult struct {
	Start  int `json:"start" yaml:"start"`
	End    int `json:"end" yaml:"end"`
	Gains  int `json:"gains" yaml:"gains"`
	Length int `json:"length" yaml:"length"`
	Gain   int `json:"gain" yaml:"gain"`
}

// KadaneState is the payload of max-subarray steps.
type KadaneState struct {
	Index      int `json:"index" yaml:"index"`
	CurrentSum int `json:"currentSum" yaml:"currentSum"`
	CurStart   int `json:"curStart" yaml:"curStart"`
	BestSum    int `json:"bestSum" yaml:"bestSum"`
	BestStart  int `json:"bestStart" yaml:"bestStart"`
	BestEnd    int `json:"bestEnd" yaml:"bestEnd"`
}

// SubarrayResult is the maximum-sum contiguous subarray.
type SubarrayResult struct {
	Start  int `json:"start" yaml:"start"`
	End    int `json:"end" yaml:"end"`
	Sum    int `json:"sum" yaml:"sum"`
	Length int `json:"length" yaml:"length"`
}
