package suggest

import (
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dialog"
	cliutil "github.com/atomic-component-engine/ace/internal/pkg/service/cli/util"
	suggestOp "github.com/atomic-component-engine/ace/pkg/lib/operation/dependency/suggest"
)

const AllOpt = "all"

func Command(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest [component]",
		Short: "Declare dependencies found in source files.",
		Long: dedent.Dedent(`
			Command "dependency suggest"

			Print dependencies found in the markup, script and stylesheet of the component,
			which are not declared in the "ace.json" file.

			Selected dependencies are declared. Use the "--all" flag to declare all of them
			without a dialog.
		`),
		Example: "  ace dependency suggest molecules/button --all",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := p.ProjectScope(ctx)
			if err != nil {
				return err
			}

			all, err := d.Index().ListAll(ctx)
			if err != nil {
				return err
			}
			key, err := dialog.New(d.Prompt()).SelectComponent(cliutil.Arg(args, 0), all)
			if err != nil {
				return err
			}

			_, err = suggestOp.Run(ctx, suggestOp.Options{Component: key, All: d.Options().GetBool(AllOpt)}, d)
			return err
		},
	}

	cmd.Flags().BoolP(AllOpt, "a", false, "declare all found dependencies")
	return cmd
}
