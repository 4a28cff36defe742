package remove

import (
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dialog"
	cliutil "github.com/atomic-component-engine/ace/internal/pkg/service/cli/util"
	removeOp "github.com/atomic-component-engine/ace/pkg/lib/operation/dependency/remove"
)

func Command(p dependencies.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "remove [component] [kind] [dependency...]",
		Short: "Remove declared dependencies from the ace.json of a component.",
		Long: dedent.Dedent(`
			Command "dependency remove"

			Remove dependencies from the "ace.json" file of the component.
			Kind is one of: component, js, sass.
			Dependencies must be written the same way as in the "ace.json" file.
		`),
		Example: "  ace dependency remove molecules/button component atoms/icon\n  ace dependency remove molecules/button js menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := p.ProjectScope(ctx)
			if err != nil {
				return err
			}

			dialogs := dialog.New(d.Prompt())
			all, err := d.Index().ListAll(ctx)
			if err != nil {
				return err
			}
			key, err := dialogs.SelectComponent(cliutil.Arg(args, 0), all)
			if err != nil {
				return err
			}
			kind, err := dialogs.AskDependencyKind(cliutil.Arg(args, 1))
			if err != nil {
				return err
			}

			var refs []string
			if len(args) > 2 {
				refs = args[2:]
			}

			_, err = removeOp.Run(ctx, removeOp.Options{Component: key, Kind: kind, Refs: refs}, d)
			return err
		},
	}
}
