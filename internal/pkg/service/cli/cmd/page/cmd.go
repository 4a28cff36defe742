package page

import (
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/page/create"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
)

func Commands(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Manage pages.",
	}
	cmd.AddCommand(create.Command(p))
	return cmd
}
