package init

import (
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/filesystem"
	"github.com/atomic-component-engine/ace/internal/pkg/git"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dialog"
	initOp "github.com/atomic-component-engine/ace/pkg/lib/operation/project/init"
)

const (
	NameOpt         = "name"
	EmailOpt        = "email"
	PkgNameOpt      = "pkg-name"
	MixinsDirOpt    = "mixins-dir"
	GitOpt          = "git"
	NameInHeaderOpt = "name-in-header"
)

func Command(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new project in the working directory.",
		Long: dedent.Dedent(`
			Command "init"

			Initialize a new ACE project in the working directory.

			The "ace_config.json" file, the "src" directory with global scripts and styles
			and directories for all component types are created. Existing files are kept.
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d := p.BaseScope()
			ctx := cmd.Context()
			o := d.Options()

			author := git.AuthorFromConfig(ctx, d.Logger(), d.RootFs(), d.HomeDir())
			f := dialog.InitFlags{
				Name:         o.StringValue(NameOpt),
				Email:        o.StringValue(EmailOpt),
				PkgName:      o.StringValue(PkgNameOpt),
				MixinsDir:    o.StringValue(MixinsDirOpt),
				Git:          o.BoolValue(GitOpt),
				NameInHeader: o.BoolValue(NameInHeaderOpt),
			}
			opts := dialog.New(d.Prompt()).AskInitOptions(f, author, filesystem.Base(o.WorkingDir()))

			return initOp.Run(ctx, opts, d)
		},
	}

	cmd.Flags().String(NameOpt, "", "author name, default from the git config")
	cmd.Flags().String(EmailOpt, "", "author email, default from the git config")
	cmd.Flags().String(PkgNameOpt, "", "package name, default is the directory name")
	cmd.Flags().String(MixinsDirOpt, "", `directory with SASS mixins, relative to "src/global-scss"`)
	cmd.Flags().Bool(GitOpt, true, "create .gitignore file")
	cmd.Flags().Bool(NameInHeaderOpt, true, "include the author in headers of created files")
	return cmd
}
