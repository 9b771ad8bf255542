// Package show provides the command that displays one institution.
package show

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/agentstation/kuniv/internal/cmd/output"
	"github.com/agentstation/kuniv/pkg/errors"
	"github.com/agentstation/kuniv/pkg/query"
)

// AppContext defines the interface that the show command needs from the app.
type AppContext interface {
	Index() (*query.Index, error)
	OutputFormat() string
}

// NewCommand creates the show command.
func NewCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:     "show <id>",
		GroupID: "core",
		Aliases: []string{"get"},
		Short:   "Show one institution by id",
		Example: `  kuniv show 8          # Directory id
  kuniv show 90000 -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.NewValidationError("id", args[0], "must be an integer")
			}

			idx, err := app.Index()
			if err != nil {
				return err
			}

			u, err := idx.Find(id)
			if err != nil {
				cmd.SilenceUsage = true
				return err
			}
			return output.University(cmd.OutOrStdout(), u, output.Format(app.OutputFormat()))
		},
	}
}
