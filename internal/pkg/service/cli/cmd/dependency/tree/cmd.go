package tree

import (
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dialog"
	cliutil "github.com/atomic-component-engine/ace/internal/pkg/service/cli/util"
	treeOp "github.com/atomic-component-engine/ace/pkg/lib/operation/dependency/tree"
)

func Command(p dependencies.Provider) *cobra.Command {
	return &cobra.Command{
		Use:     "tree [component]",
		Short:   "Print the tree of declared dependencies.",
		Example: "  ace dependency tree organisms/header",
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

			return treeOp.Run(ctx, treeOp.Options{Component: key}, d)
		},
	}
}
