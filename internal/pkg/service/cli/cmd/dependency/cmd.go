package dependency

import (
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/dependency/add"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/dependency/list"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/dependency/remove"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/dependency/suggest"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/dependency/tree"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/dependency/watch"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
)

func Commands(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dependency",
		Short: "Manage dependencies of components.",
	}
	cmd.AddCommand(
		add.Command(p),
		remove.Command(p),
		list.Command(p),
		tree.Command(p),
		suggest.Command(p),
		watch.Command(p),
	)
	return cmd
}
