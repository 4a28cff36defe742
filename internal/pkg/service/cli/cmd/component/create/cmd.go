package create

import (
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dialog"
	cliutil "github.com/atomic-component-engine/ace/internal/pkg/service/cli/util"
	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
	createOp "github.com/atomic-component-engine/ace/pkg/lib/operation/component/create"
)

func Command(p dependencies.Provider) *cobra.Command {
	return &cobra.Command{
		Use:   "create [type] [name]",
		Short: "Create a component from stubs.",
		Long: dedent.Dedent(`
			Command "component create"

			Create an atom, molecule, organism or template in "src/<type>s/<name>".
			The name is converted to lower case, other characters than [a-z0-9] are replaced by "_".

			Use the "page create" command to create a page.
		`),
		Example: "  ace component create molecule button",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := p.ProjectScope(cmd.Context())
			if err != nil {
				return err
			}

			dialogs := dialog.New(d.Prompt())
			types := []model.ComponentType{model.TypeAtom, model.TypeMolecule, model.TypeOrganism, model.TypeTemplate}
			t, err := dialogs.AskComponentType(cliutil.Arg(args, 0), types)
			if err != nil {
				return err
			}
			if t == model.TypePage {
				return errors.New(`a page extends a template, please use the "page create" command`)
			}

			name, err := dialogs.AskComponentName(cliutil.Arg(args, 1), t)
			if err != nil {
				return err
			}

			_, err = createOp.Run(cmd.Context(), createOp.Options{Type: t, Name: name}, d)
			return err
		},
	}
}
