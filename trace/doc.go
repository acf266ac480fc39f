// Package trace defines the step-emission contract shared by every engine in
// algotrace.
//
// An engine runs a textbook algorithm and narrates it as an ordered sequence of
// Steps: comparisons, pointer moves, table updates, found/not-found outcomes.
// A presentation layer (terminal renderer, websocket client, test) consumes the
// sequence; the engine itself never sleeps, draws, or waits.
//
// ✨ Three ways to consume a run:
//
//   - Eager: every engine returns the full Trace together with its result.
//   - Callback: WithOnStep registers a sink invoked once per step, in order.
//     Returning an error from the sink aborts the run before the next step.
//   - Lazy: Seq wraps an engine call into an iter.Seq2[Step, error]; breaking out of
//     the range loop stops the engine. Ranging again re-runs it from scratch.
//
// Cancellation (WithContext) is observed between steps, never inside one, so a
// consumer never sees a half-applied state change.
//
// Errors:
//
//	ErrInvalidInput          - malformed or out-of-range engine arguments.
//	ErrPreconditionViolation - input breaks a documented precondition (e.g. unsorted).
//	ErrStepLimit             - the run exceeded WithMaxSteps.
//	ErrOptionViolation       - an Option received an invalid value.
//
// "Not found" outcomes are never errors: they are terminal steps. A run that
// fails at any step, the terminal one included, returns a nil result and the
// steps recorded so far.
package trace
