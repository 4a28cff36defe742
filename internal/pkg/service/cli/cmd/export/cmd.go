package export

import (
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dialog"
	cliutil "github.com/atomic-component-engine/ace/internal/pkg/service/cli/util"
	exportOp "github.com/atomic-component-engine/ace/pkg/lib/operation/component/export"
)

const (
	IncludeGlobalFoldersOpt = "include-global-folders"
	ListFilesOpt            = "list-files"
)

func Command(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [component]",
		Short: "Export a component with its dependencies to a zip archive.",
		Long: dedent.Dedent(`
			Command "export"

			Export the component to "export/<name>.zip".

			The archive contains the component and all dependencies declared in "ace.json" files,
			recursively. Dependencies found only in source files are not exported,
			use the "dependency suggest" command to declare them.

			Paths in the archive are relative to the "src" directory.
		`),
		Example: "  ace export molecules/button\n  ace export molecules/button --include-global-folders",
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

			_, err = exportOp.Run(ctx, exportOp.Options{
				Component:            key,
				IncludeGlobalFolders: d.Options().GetBool(IncludeGlobalFoldersOpt),
				ListFiles:            d.Options().GetBool(ListFilesOpt),
			}, d)
			return err
		},
	}

	cmd.Flags().Bool(IncludeGlobalFoldersOpt, false, "include whole global-js and global-scss directories")
	cmd.Flags().Bool(ListFilesOpt, false, "print archived files")
	return cmd
}
