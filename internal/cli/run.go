package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/internal/scenario"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	File string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the scenarios of a YAML or JSON file",
		Long: `Run every scenario in a file. A file holds one or more YAML documents
separated by "---"; each names an engine and its inputs. Use "-" to read
standard input.

Example:
  algotrace run -f testdata/tour.yaml
  algotrace run -f tour.yaml --format yaml --no-steps`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "scenario file (required)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runScenarios(opts *RunOptions, cmd *cobra.Command) error {
	var (
		list []scenario.Scenario
		err  error
	)
	if opts.File == "-" {
		list, err = scenario.Load(cmd.InOrStdin())
	} else {
		if _, statErr := os.Stat(opts.File); statErr != nil {
			return WrapExitError(ExitCommandError, "cannot read scenario file", statErr)
		}
		list, err = scenario.LoadFile(opts.File)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid scenario file", err)
	}
	opts.logger().Debug("scenarios loaded", "file", opts.File, "count", len(list))

	r := NewRenderer(opts.Format, cmd.OutOrStdout())
	for i := range list {
		if err := runOne(cmd, opts.RootOptions, r, &list[i]); err != nil {
			return err
		}
	}
	return r.Close()
}
