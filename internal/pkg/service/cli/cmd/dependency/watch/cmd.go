package watch

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
	watchOp "github.com/atomic-component-engine/ace/pkg/lib/operation/dependency/watch"
)

const WindowOpt = "window"

func Command(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch components and report undeclared dependencies.",
		Long: dedent.Dedent(`
			Command "dependency watch"

			Watch the "src" directory. When a markup, script, stylesheet or "ace.json" file
			of a component is changed, dependencies found in source files, but not declared
			in the "ace.json" file, are reported.

			Press Ctrl+C to stop.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			d, err := p.ProjectScope(ctx)
			if err != nil {
				return err
			}

			return watchOp.Run(ctx, watchOp.Options{Window: d.Options().GetDuration(WindowOpt)}, d)
		},
	}

	cmd.Flags().Duration(WindowOpt, 0, "debounce window, for example 500ms")
	return cmd
}
