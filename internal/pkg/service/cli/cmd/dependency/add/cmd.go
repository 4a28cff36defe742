package add

import (
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dialog"
	cliutil "github.com/atomic-component-engine/ace/internal/pkg/service/cli/util"
	addOp "github.com/atomic-component-engine/ace/pkg/lib/operation/dependency/add"
)

func Command(p dependencies.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "add [component] [kind] [dependency...]",
		Short: "Declare dependencies in the ace.json of a component.",
		Long: dedent.Dedent(`
			Command "dependency add"

			Add dependencies to the "ace.json" file of the component.
			Kind is one of: component, js, sass.

			Component dependencies are references in the "<type>s/<name>" form.
			Script and style dependencies are paths relative to "src/global-js" and "src/global-scss",
			the extension is optional, a directory is exported whole.
		`),
		Example: "  ace dependency add molecules/button component atoms/icon\n  ace dependency add molecules/button js menu",
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

			_, err = addOp.Run(ctx, addOp.Options{Component: key, Kind: kind, Refs: refs}, d)
			return err
		},
	}
}
