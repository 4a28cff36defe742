package create

import (
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/model"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dialog"
	cliutil "github.com/atomic-component-engine/ace/internal/pkg/service/cli/util"
	createOp "github.com/atomic-component-engine/ace/pkg/lib/operation/component/create"
)

const TemplateOpt = "template"

func Command(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a page extending a template.",
		Long: dedent.Dedent(`
			Command "page create"

			Create a page in "src/pages/<name>".
			The page markup extends the template selected by the "--template" flag or in the dialog.
		`),
		Example: "  ace page create home --template default",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			d, err := p.ProjectScope(ctx)
			if err != nil {
				return err
			}

			dialogs := dialog.New(d.Prompt())
			name, err := dialogs.AskComponentName(cliutil.Arg(args, 0), model.TypePage)
			if err != nil {
				return err
			}

			templates, err := d.Index().ListByType(ctx, model.TypeTemplate)
			if err != nil {
				return err
			}
			template, err := dialogs.SelectTemplate(d.Options().GetString(TemplateOpt), templates)
			if err != nil {
				return err
			}

			_, err = createOp.Run(ctx, createOp.Options{Type: model.TypePage, Name: name, Template: template}, d)
			return err
		},
	}

	cmd.Flags().StringP(TemplateOpt, "t", "", "name of the template")
	return cmd
}
