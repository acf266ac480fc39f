package cli

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/trace"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "text" | "json" | "yaml"
	MaxSteps int
	Delay    time.Duration
	NoSteps  bool

	// Logger is built from Verbose before any subcommand runs.
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the root command for the algotrace CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "algotrace",
		Short: "algotrace - step-by-step algorithm traces",
		Long: `Run classic algorithms and watch every step they take.

Each engine records an ordered trace of steps (compare, swap, visit, ...)
ending in exactly one terminal step. Text output prints steps as they happen;
json and yaml output print the whole run envelope.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.MaxSteps < 0 {
				return NewExitError(ExitCommandError, "--max-steps cannot be negative")
			}

			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().IntVar(&opts.MaxSteps, "max-steps", 0, "abort runs that emit more steps (0 = unlimited)")
	cmd.PersistentFlags().DurationVar(&opts.Delay, "delay", 0, "pause after every step, e.g. 200ms")
	cmd.PersistentFlags().BoolVar(&opts.NoSteps, "no-steps", false, "omit recorded steps from json/yaml output")

	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewRaceCommand(opts))
	cmd.AddCommand(NewPalindromeCommand(opts))
	cmd.AddCommand(NewPairSumCommand(opts))
	cmd.AddCommand(NewWindowCommand(opts))
	cmd.AddCommand(NewSortCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))
	cmd.AddCommand(NewDijkstraCommand(opts))
	cmd.AddCommand(NewCoinsCommand(opts))
	cmd.AddCommand(NewKnapsackCommand(opts))
	cmd.AddCommand(NewFibCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewServeCommand(opts))

	return cmd
}

// traceOptions converts the global flags into engine options.
func (o *RootOptions) traceOptions(cmd *cobra.Command) []trace.Option {
	out := []trace.Option{trace.WithMaxSteps(o.MaxSteps)}
	if o.NoSteps {
		out = append(out, trace.WithDiscard())
	}
	if o.Delay > 0 {
		out = append(out, trace.Pace(cmd.Context(), o.Delay))
	}
	return out
}

func (o *RootOptions) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
