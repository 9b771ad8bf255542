// Package meta provides the command that prints the build summary.
package meta

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/kuniv/internal/cmd/output"
	"github.com/agentstation/kuniv/pkg/query"
)

// AppContext defines the interface that the meta command needs from the app.
type AppContext interface {
	Index() (*query.Index, error)
	OutputFormat() string
}

// NewCommand creates the meta command.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "meta",
		GroupID: "core",
		Aliases: []string{"metadata", "stats"},
		Short:   "Show when the catalog was built and what it contains",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			idx, err := app.Index()
			if err != nil {
				return err
			}
			return output.Metadata(cmd.OutOrStdout(), idx.Metadata(), output.Format(app.OutputFormat()))
		},
	}
}
