package cli

import (
	"os"

	"github.com/spf13/cobra"

	"mockview/internal/grid"
	"mockview/internal/schema"
	"mockview/internal/view"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	*RootOptions
	Output string
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "render <mockup.yaml>",
		Short: "Render a mockup to static HTML",
		Long: `Render a mockup document to a static HTML page on stdout or a file.

Grids render their initial state: inline rows, default sort, page 0.
Useful for snapshotting mockups in CI without a server.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "write HTML to file instead of stdout")
	return cmd
}

func runRender(opts *RenderOptions, path string, cmd *cobra.Command) error {
	doc, err := schema.Load(path)
	if err != nil {
		return WrapExitError(ExitFailure, "loading mockup", err)
	}

	states := make(map[string]grid.State)
	for _, w := range doc.Widgets {
		if w.Kind == schema.KindTable && w.Table != nil && w.ID != "" {
			states[w.ID] = grid.NewState(w.Table.GridConfig(), w.Table.GridRows())
		}
	}

	out := cmd.OutOrStdout()
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return WrapExitError(ExitCommandError, "creating output file", err)
		}
		defer f.Close()
		out = f
	}

	if err := view.RenderPage(out, view.NewPage(doc, states)); err != nil {
		return WrapExitError(ExitCommandError, "rendering mockup", err)
	}
	return nil
}
