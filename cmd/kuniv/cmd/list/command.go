// Package list provides the command that lists institutions from the catalog.
package list

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/kuniv/internal/cmd/globals"
	"github.com/agentstation/kuniv/internal/cmd/output"
	"github.com/agentstation/kuniv/pkg/query"
)

// AppContext defines the interface that the list command needs from the app.
// This allows for better testability and decoupling from the full app.
type AppContext interface {
	Index() (*query.Index, error)
	Logger() *zerolog.Logger
	OutputFormat() string
}

// NewCommand creates the list command with app dependencies.
func NewCommand(app AppContext) *cobra.Command {
	var flags *globals.FilterFlags

	cmd := &cobra.Command{
		Use:     "list",
		GroupID: "core",
		Aliases: []string{"ls"},
		Short:   "List institutions from the catalog",
		Long: `List displays institutions from the catalog in Korean collation order.

Filters combine; an institution must satisfy every filter given.`,
		Example: `  kuniv list                              # List every institution
  kuniv list -r 서울특별시                 # Institutions in Seoul
  kuniv list --level 전문대학 --accredited # Accredited colleges
  kuniv list --excellent -o json          # Excellent-certified, as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	flags = globals.AddFilterFlags(cmd)

	return cmd
}

func run(cmd *cobra.Command, app AppContext, flags *globals.FilterFlags) error {
	logger := app.Logger()

	if unknown := flags.Unknown(); len(unknown) > 0 {
		logger.Warn().
			Str("filters", strings.Join(unknown, ",")).
			Msg("Filter values outside the known vocabularies match nothing")
	}

	idx, err := app.Index()
	if err != nil {
		return err
	}

	records := flags.Apply(idx.Filter(flags.Options()))
	logger.Debug().Int("count", len(records)).Msg("Listed universities")

	return output.Universities(cmd.OutOrStdout(), records, output.Format(app.OutputFormat()))
}
