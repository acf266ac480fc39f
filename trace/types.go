package trace

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors shared by all engines. Engine packages wrap these with %w so
// callers can test either the precise package error or its category.
var (
	// ErrInvalidInput indicates malformed or out-of-range engine arguments.
	ErrInvalidInput = errors.New("trace: invalid input")

	// ErrPreconditionViolation indicates input that breaks a documented
	// precondition, such as a sortedness requirement.
	ErrPreconditionViolation = errors.New("trace: precondition violated")

	// ErrStepLimit is returned when a run emits more steps than allowed by WithMaxSteps.
	ErrStepLimit = errors.New("trace: step limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("trace: invalid option supplied")
)

// Kind discriminates Steps. Each engine package declares its own closed set.
type Kind string

// Step is one observable unit of algorithm progress.
//
// Payload holds an engine-specific value. Slices and maps inside a payload are
// snapshots taken at emission time and are never shared with engine state.
type Step struct {
	Seq         int    `json:"seq" yaml:"seq"`
	Kind        Kind   `json:"kind" yaml:"kind"`
	Payload     any    `json:"payload,omitempty" yaml:"payload,omitempty"`
	Description string `json:"description" yaml:"description"`
}

// String renders the step as "#seq kind: description".
func (s Step) String() string {
	return fmt.Sprintf("#%d %s: %s", s.Seq, s.Kind, s.Description)
}

// Trace is the ordered sequence of Steps produced by one engine invocation.
type Trace []Step

// Len returns the number of recorded steps.
func (t Trace) Len() int { return len(t) }

// Last returns the final step, which for a completed run is its terminal step.
func (t Trace) Last() (Step, bool) {
	if len(t) == 0 {
		return Step{}, false
	}
	return t[len(t)-1], true
}

// Count returns how many steps have the given kind.
func (t Trace) Count(kind Kind) int {
	n := 0
	for i := range t {
		if t[i].Kind == kind {
			n++
		}
	}
	return n
}

// Kinds returns the kind of every step, in order.
func (t Trace) Kinds() []Kind {
	out := make([]Kind, len(t))
	for i := range t {
		out[i] = t[i].Kind
	}
	return out
}

// Filter returns the steps whose kind is one of kinds, preserving order.
func (t Trace) Filter(kinds ...Kind) Trace {
	want := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		want[k] = struct{}{}
	}
	var out Trace
	for i := range t {
		if _, ok := want[t[i].Kind]; ok {
			out = append(out, t[i])
		}
	}
	return out
}

// Option configures a single engine run.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// run starts, before any step is emitted.
type Option func(*Options)

// Options holds the emission parameters of a run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked before every step.
	Ctx context.Context

	// OnStep is called once per step, after it is recorded.
	// A non-nil error aborts the run and is returned by the engine.
	OnStep func(Step) error

	// MaxSteps, if > 0, bounds the number of steps a run may emit.
	MaxSteps int

	// Discard disables recording; steps still reach OnStep and are counted.
	Discard bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no sink,
// no step limit, and recording enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnStep:   nil,
		MaxSteps: 0,
		Discard:  false,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a per-step sink. Multiple sinks are chained in
// registration order.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnStep
		if prev == nil {
			o.OnStep = fn
			return
		}
		o.OnStep = func(s Step) error {
			if err := prev(s); err != nil {
				return err
			}
			return fn(s)
		}
	}
}

// WithMaxSteps bounds the number of emitted steps.
//
//	n > 0: at most n steps
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithDiscard turns off step recording. Engines then return an empty Trace,
// which keeps memory flat for runs such as naive Fibonacci.
func WithDiscard() Option {
	return func(o *Options) { o.Discard = true }
}
