package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algotrace/internal/scenario"
	"github.com/katalvlaran/algotrace/trace"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Run aborted (step limit, cancellation, engine failure)
	ExitCommandError = 2 // Command error (bad flags, invalid engine input, unreadable files)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// runError classifies an engine error: bad input is the caller's fault,
// anything else aborted a valid run.
func runError(name string, err error) *ExitError {
	code := ExitFailure
	if errors.Is(err, trace.ErrInvalidInput) ||
		errors.Is(err, trace.ErrPreconditionViolation) ||
		errors.Is(err, trace.ErrOptionViolation) {
		code = ExitCommandError
	}
	return WrapExitError(code, name+" failed", err)
}

// Renderer writes run envelopes in one of the ValidFormats.
//
// In text mode steps are printed live through Sink and Render prints only a
// summary. json and yaml print the whole envelope; several envelopes become
// concatenated JSON values or a multi-document YAML stream.
type Renderer struct {
	Format string
	Writer io.Writer

	mu   sync.Mutex
	yenc *yaml.Encoder
}

// NewRenderer returns a Renderer for format writing to w.
func NewRenderer(format string, w io.Writer) *Renderer {
	return &Renderer{Format: format, Writer: w}
}

// Sink returns the live step printer for text mode, or nil. It is safe for
// concurrent engines.
func (r *Renderer) Sink() func(trace.Step) error {
	if r.Format != "text" {
		return nil
	}
	return func(s trace.Step) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		_, err := fmt.Fprintln(r.Writer, s.String())
		return err
	}
}

// Render outputs env in the configured format.
func (r *Renderer) Render(env *scenario.Envelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.Format {
	case "json":
		enc := json.NewEncoder(r.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(env)
	case "yaml":
		if r.yenc == nil {
			r.yenc = yaml.NewEncoder(r.Writer)
			r.yenc.SetIndent(2)
		}
		return r.yenc.Encode(env)
	}

	label := env.Engine
	if env.Name != "" {
		label = env.Name + " (" + env.Engine + ")"
	}
	if _, err := fmt.Fprintf(r.Writer, "-- %s run %s: %d steps\n", label, env.RunID, env.StepCount); err != nil {
		return err
	}
	enc := yaml.NewEncoder(r.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(env.Result); err != nil {
		return err
	}
	return enc.Close()
}

// Close flushes a pending YAML stream.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.yenc == nil {
		return nil
	}
	return r.yenc.Close()
}
