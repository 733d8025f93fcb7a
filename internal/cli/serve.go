package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mockview/internal/schema"
	"mockview/internal/web"
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
		Use:   "serve <mockup.yaml>",
		Short: "Serve a mockup as an interactive page",
		Long: `Validate and load a mockup document, then serve it over HTTP.

Grids are interactive: sorting, filtering, paging, selection, group
collapse, and column resizing all round-trip through the server. Tables
with a source stanza page their rows out of SQLite.

Example:
  mockview serve ./mockups/team.yaml
  mockview serve --addr :9090 ./mockups/team.yaml --verbose`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "localhost:8080", "listen address")
	return cmd
}

func runServe(opts *ServeOptions, path string) error {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	logger.Info("loading mockup", "path", path)
	doc, err := schema.Load(path)
	if err != nil {
		return WrapExitError(ExitFailure, "loading mockup", err)
	}
	logger.Info("mockup loaded", "title", doc.Title, "widgets", len(doc.Widgets))

	srv, err := web.NewServer(doc, logger)
	if err != nil {
		return WrapExitError(ExitCommandError, "starting server", err)
	}
	defer srv.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.ListenAndServe(ctx, opts.Addr); err != nil {
		return WrapExitError(ExitCommandError, "server error", err)
	}
	logger.Info("server stopped")
	return nil
}
