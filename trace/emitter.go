package trace

import (
	"fmt"
)

// Emitter records the steps of a single engine run.
//
// An Emitter is created fresh per invocation and is not safe for concurrent
// use; engines emit strictly sequentially. Once an emission fails (cancelled
// context, step limit, sink error) the error is sticky: every later Emit
// returns it without recording anything.
type Emitter struct {
	opts  Options
	steps Trace
	n     int   // steps emitted, including discarded ones
	err   error // sticky failure
}

// NewEmitter applies opts and returns a ready Emitter.
// Returns ErrOptionViolation if any option was invalid.
func NewEmitter(opts ...Option) (*Emitter, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Emitter{opts: o}, nil
}

// Emit appends one step and forwards it to the sink.
//
// Steps:
//  1. Return the sticky error, if any.
//  2. Check cancellation (between steps, never mid-step).
//  3. Enforce MaxSteps.
//  4. Record (unless Discard) and call OnStep.
func (e *Emitter) Emit(kind Kind, payload any, format string, args ...any) error {
	if e.err != nil {
		return e.err
	}

	select {
	case <-e.opts.Ctx.Done():
		e.err = e.opts.Ctx.Err()
		return e.err
	default:
	}

	if e.opts.MaxSteps > 0 && e.n >= e.opts.MaxSteps {
		e.err = fmt.Errorf("%w: limit %d reached before %q", ErrStepLimit, e.opts.MaxSteps, kind)
		return e.err
	}

	s := Step{
		Seq:         e.n,
		Kind:        kind,
		Payload:     payload,
		Description: fmt.Sprintf(format, args...),
	}
	e.n++
	if !e.opts.Discard {
		e.steps = append(e.steps, s)
	}

	if e.opts.OnStep != nil {
		if err := e.opts.OnStep(s); err != nil {
			e.err = err
			return err
		}
	}

	return nil
}

// Err returns the sticky emission error, or nil.
func (e *Emitter) Err() error { return e.err }

// Count returns the number of steps emitted so far, recorded or not.
func (e *Emitter) Count() int { return e.n }

// Trace returns the recorded steps. The Emitter must not be used afterwards.
func (e *Emitter) Trace() Trace { return e.steps }
