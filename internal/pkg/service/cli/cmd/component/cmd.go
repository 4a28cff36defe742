package component

import (
	"github.com/spf13/cobra"

	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/component/create"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/cmd/component/list"
	"github.com/atomic-component-engine/ace/internal/pkg/service/cli/dependencies"
)

func Commands(p dependencies.Provider) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "component",
		Short: "Manage components.",
	}
	cmd.AddCommand(
		create.Command(p),
		list.Command(p),
	)
	return cmd
}
