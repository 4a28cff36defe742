package list

import (
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
	cliutil "github.com/atomic-component-engine/ace/internal/pkg/service/cli/util"
	listOp "github.com/atomic-component-engine/ace/pkg/lib/operation/component/list"
)

func Command(p dependencies.Provider) *cobra.Command {
	return &cobra.Command{
		Use:     "list [type]",
		Short:   "List components, optionally of one type.",
		Example: "  ace component list\n  ace component list atoms",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			d, err := p.ProjectScope(cmd.Context())
			if err != nil {
				return err
			}

			o := listOp.Options{}
			if arg := cliutil.Arg(args, 0); arg != "" {
				if o.Type, err = model.ParseComponentType(arg); err != nil {
					return err
				}
			}

			_, err = listOp.Run(cmd.Context(), o, d)
			return err
		},
	}
}
