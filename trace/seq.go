package trace

import (
	"context"
	"errors"
	"iter"
	"time"
)

// errStopped aborts a run when the consumer of a Seq stops ranging.
var errStopped = errors.New("trace: consumer stopped")

// Runner adapts an engine call to the Seq contract: it must forward opts to
// the engine and return the engine's error.
type Runner func(opts ...Option) error

// Seq turns an engine call into a lazy, finite step sequence.
//
// The engine runs inline with the range loop: each step is yielded as soon as
// it is produced and nothing is buffered. Breaking out of the loop aborts the
// engine before its next step. Ranging again re-runs the engine from scratch.
//
// If the engine fails, the final pair carries the error and a zero Step.
func Seq(run Runner, opts ...Option) iter.Seq2[Step, error] {
	return func(yield func(Step, error) bool) {
		stopped := false
		sink := WithOnStep(func(s Step) error {
			if !yield(s, nil) {
				stopped = true
				return errStopped
			}
			return nil
		})
		all := append(append([]Option{}, opts...), WithDiscard(), sink)
		err := run(all...)
		if err != nil && !stopped {
			yield(Step{}, err)
		}
	}
}

// Collect drains a sequence into a Trace, returning the first error.
func Collect(seq iter.Seq2[Step, error]) (Trace, error) {
	var out Trace
	for s, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Pace returns an Option that waits delay after every step. Waiting is
// interrupted by ctx, whose error then aborts the run.
func Pace(ctx context.Context, delay time.Duration) Option {
	return WithOnStep(func(Step) error {
		if delay <= 0 {
			return nil
		}
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			return nil
		}
	})
}
