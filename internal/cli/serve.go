package cli

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/internal/stream"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	Addr string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Stream traces to websocket clients",
		Long: `Start the trace streaming server. Clients open /ws/{engine}, send one JSON
scenario and receive every step as it happens, paced by the global --delay.
/engines lists what can be run and /metrics exposes Prometheus counters.

Example:
  algotrace serve --addr :8080 --delay 250ms`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", ":8080", "listen address")

	return cmd
}

func serve(ctx context.Context, opts *ServeOptions) error {
	log := opts.logger()
	srv := &http.Server{
		Addr: opts.Addr,
		Handler: stream.NewServer(stream.Config{
			Delay:    opts.Delay,
			MaxSteps: opts.MaxSteps,
			Logger:   log,
		}),
		ReadHeaderTimeout: 5 * time.Second,
		// Runs on hijacked websocket connections outlive Shutdown, so they
		// inherit ctx to stop with the process.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", opts.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return WrapExitError(ExitCommandError, "server failed", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return WrapExitError(ExitFailure, "shutdown failed", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return WrapExitError(ExitFailure, "server failed", err)
	}
	log.Info("server stopped")
	return nil
}
