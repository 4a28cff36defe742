package list

import (
	"strings"

	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dialog"
	cliutil "github.com/atomic-component-engine/ace/internal/pkg/service/cli/util"
	listOp "github.com/atomic-component-engine/ace/pkg/lib/operation/dependency/list"
)

const ModeOpt = "mode"

func Command(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [component]",
		Short: "List dependencies of a component.",
		Long: dedent.Dedent(`
			Command "dependency list"

			List dependencies of the component, grouped by kind.

			Modes:
			  explicit   dependencies declared in the "ace.json" file
			  implied    dependencies found in the markup, script and stylesheet
			  recursive  declared dependencies and their declared dependencies, as exported
		`),
		Example: "  ace dependency list molecules/button --mode recursive",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := p.ProjectScope(ctx)
			if err != nil {
				return err
			}

			mode, err := listOp.ParseMode(d.Options().GetString(ModeOpt))
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

			_, err = listOp.Run(ctx, listOp.Options{Component: key, Mode: mode}, d)
			return err
		},
	}

	cmd.Flags().StringP(ModeOpt, "m", string(listOp.ModeExplicit), "one of: "+strings.Join(listOp.AllModes(), ", "))
	return cmd
}
